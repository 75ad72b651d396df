package prompt

import "time"

// GreetingReply returns one of the canned greeting replies. pick receives
// the number of replies and returns an index in [0, n).
func GreetingReply(pick func(n int) int) string {
	i := pick(len(greetingReplies))
	if i < 0 || i >= len(greetingReplies) {
		i = 0
	}
	return FormatReply(greetingReplies[i])
}

// GreetingReplies returns a copy of the canned greeting replies as they are
// sent to the widget.
func GreetingReplies() []string {
	out := make([]string, len(greetingReplies))
	for i, r := range greetingReplies {
		out[i] = FormatReply(r)
	}
	return out
}

// DateReply answers a date question for the given instant.
func DateReply(now time.Time) string {
	return FormatReply("Today's date is " + now.Format("Monday, January 2, 2006") + ".")
}
