package domain

// Kind identifies how a prompt is answered.
type Kind int

// Prompt kinds. Greetings and date queries are answered locally; content
// queries go to the inference provider.
const (
	KindContent Kind = iota
	KindGreeting
	KindDateQuery
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case KindGreeting:
		return "greeting"
	case KindDateQuery:
		return "date_query"
	default:
		return "content"
	}
}

// LengthSpec is the length or structure requested by a content prompt.
// At most one is attached per prompt.
type LengthSpec struct {
	// WordCount is the target response length in words.
	WordCount int

	// Subtopics is set only when the length came from a known marks value.
	Subtopics []string

	// Marks is the requested mark value, when the marks rule matched.
	Marks int

	// Points is the requested point/step count, when the points rule matched.
	Points int
}

// Classification is the result of inspecting a prompt.
type Classification struct {
	Kind Kind

	// Length is nil when the prompt asks for no particular length.
	// It is only set for KindContent.
	Length *LengthSpec

	// Diagram is set when the prompt mentions a diagram. It is independent
	// of Length.
	Diagram bool
}

// WordCount returns the requested word count or 0 when none was requested.
func (c Classification) WordCount() int {
	if c.Length == nil {
		return 0
	}
	return c.Length.WordCount
}
