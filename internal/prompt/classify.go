package prompt

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/phrazzld/chatrelay/internal/domain"
)

var (
	marksPattern  = regexp.MustCompile(`(\d+)\s*marks?\b`)
	wordsPattern  = regexp.MustCompile(`(\d+)\s*words?\b`)
	pointsPattern = regexp.MustCompile(`(\d+)\s*(?:points?|steps?)\b`)
)

// Classify inspects a raw prompt. Greetings win over date questions, and
// anything else is a content question.
func Classify(prompt string) domain.Classification {
	if IsGreeting(prompt) {
		return domain.Classification{Kind: domain.KindGreeting}
	}
	if IsDateQuery(prompt) {
		return domain.Classification{Kind: domain.KindDateQuery}
	}
	return domain.Classification{
		Kind:    domain.KindContent,
		Length:  ExtractLengthSpec(prompt),
		Diagram: MentionsDiagram(prompt),
	}
}

// IsGreeting reports whether the trimmed, lower-cased prompt is one of the
// known greeting phrases.
func IsGreeting(prompt string) bool {
	_, ok := greetings[strings.ToLower(strings.TrimSpace(prompt))]
	return ok
}

// IsDateQuery reports whether the prompt asks for the current date.
func IsDateQuery(prompt string) bool {
	lower := strings.ToLower(prompt)
	for _, phrase := range datePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// MentionsDiagram reports whether the prompt asks for a diagram.
func MentionsDiagram(prompt string) bool {
	return strings.Contains(strings.ToLower(prompt), "diagram")
}

// ExtractLengthSpec applies the marks, words and points rules in that
// order and returns the first that yields a length, or nil.
//
// A marks value missing from the marks table does not count as a match.
func ExtractLengthSpec(prompt string) *domain.LengthSpec {
	lower := strings.ToLower(prompt)

	if n, ok := firstNumber(marksPattern, lower); ok {
		if entry, known := marksTable[n]; known {
			return &domain.LengthSpec{
				WordCount: entry.words,
				Subtopics: append([]string(nil), entry.subtopics...),
				Marks:     n,
			}
		}
	}

	if n, ok := firstNumber(wordsPattern, lower); ok {
		return &domain.LengthSpec{WordCount: n}
	}

	if n, ok := firstNumber(pointsPattern, lower); ok {
		return &domain.LengthSpec{
			WordCount: pointsWordCount(n),
			Points:    n,
		}
	}

	return nil
}

// pointsWordCount returns (n+3)*10 words, saturating at MaxTokenBudget
// words so huge counts cannot overflow. Any count past the cap already
// yields the maximum token budget.
func pointsWordCount(n int) int {
	if n > MaxTokenBudget/10-3 {
		return MaxTokenBudget
	}
	return (n + 3) * 10
}

func firstNumber(re *regexp.Regexp, s string) (int, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
