package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/phrazzld/chatrelay/internal/domain"
	"github.com/phrazzld/chatrelay/internal/prompt"
)

// writeAugmentReport prints what the chat pipeline would do with p.
func writeAugmentReport(out io.Writer, p string) error {
	c := prompt.Classify(p)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "kind:\t%s\n", c.Kind)

	switch c.Kind {
	case domain.KindGreeting:
		fmt.Fprintf(tw, "reply:\tone of %d canned greetings\n", len(prompt.GreetingReplies()))
	case domain.KindDateQuery:
		fmt.Fprintf(tw, "reply:\t%s\n", strings.TrimSpace(prompt.DateReply(time.Now())))
	default:
		fmt.Fprintf(tw, "word_count:\t%d\n", c.WordCount())
		if c.Length != nil && len(c.Length.Subtopics) > 0 {
			fmt.Fprintf(tw, "subtopics:\t%s\n", strings.Join(c.Length.Subtopics, ", "))
		}
		fmt.Fprintf(tw, "diagram:\t%t\n", c.Diagram)
		fmt.Fprintf(tw, "max_new_tokens:\t%d\n", prompt.TokenBudget(c))
		fmt.Fprintf(tw, "prompt:\t%s\n", prompt.Augment(p, c))
	}

	return tw.Flush()
}
