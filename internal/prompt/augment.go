package prompt

import (
	"fmt"
	"math"
	"strings"

	"github.com/phrazzld/chatrelay/internal/domain"
)

// Token budget bounds.
const (
	DefaultWordCount = 100
	MaxTokenBudget   = 2000
	tokensPerWord    = 1.5
)

const (
	accurateSuffix = " Provide an accurate response."
	diagramSuffix  = " Include a title name with the diagram name in text."
)

// Augment appends the length and diagram instructions to prompt. The
// original text is never altered.
func Augment(prompt string, c domain.Classification) string {
	var b strings.Builder
	b.WriteString(prompt)

	switch {
	case c.Length != nil && len(c.Length.Subtopics) > 0:
		fmt.Fprintf(&b, " Please cover the following subtopics: %s.", strings.Join(c.Length.Subtopics, ", "))
	case c.WordCount() > 0:
		fmt.Fprintf(&b, " Please provide the correct response in %d words.", c.WordCount())
	default:
		b.WriteString(accurateSuffix)
	}

	if c.Diagram {
		b.WriteString(diagramSuffix)
	}

	return b.String()
}

// TokenBudget returns floor(min(words*1.5, 2000)), with words defaulting
// to DefaultWordCount when the prompt requested no length.
func TokenBudget(c domain.Classification) int {
	words := c.WordCount()
	if words <= 0 {
		words = DefaultWordCount
	}
	return int(math.Floor(math.Min(float64(words)*tokensPerWord, MaxTokenBudget)))
}
