package prompt

import (
	"regexp"
	"strings"
)

const echoedPreamble = "Here is the response:"

var (
	trailingEllipsis = regexp.MustCompile(`(?:\s*(?:\.{2,}|…))+\s*$`)
	symbolStripper   = strings.NewReplacer("!", "", "@", "", "#", "", "*", "")
)

// Sanitize cleans raw provider output for display. original is the prompt
// as the user typed it, before augmentation.
//
// The cleanup runs until the text stops changing, so sanitizing an already
// sanitized reply returns it unchanged.
func Sanitize(raw, original string) string {
	out := sanitizeOnce(raw, original)
	for {
		next := sanitizeOnce(out, original)
		if next == out {
			return out
		}
		out = next
	}
}

func sanitizeOnce(text, original string) string {
	text = trimPrefixFold(text, original)
	text = strings.TrimLeft(text, "!?. \t\r\n")
	text = strings.ReplaceAll(text, echoedPreamble, "")
	text = symbolStripper.Replace(text)
	text = trailingEllipsis.ReplaceAllString(text, "")
	return FormatReply(text)
}

// FormatReply trims s and prefixes the single leading space the widget's
// renderer expects on every bot message.
func FormatReply(s string) string {
	return " " + strings.TrimSpace(s)
}

func trimPrefixFold(s, prefix string) string {
	if prefix == "" || len(s) < len(prefix) {
		return s
	}
	if strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):]
	}
	return s
}
