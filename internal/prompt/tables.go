package prompt

// greetings is matched against the trimmed, lower-cased prompt. Exact
// membership only.
var greetings = map[string]struct{}{
	"hi":             {},
	"hii":            {},
	"hello":          {},
	"hey":            {},
	"hi there":       {},
	"hello there":    {},
	"hey there":      {},
	"greetings":      {},
	"howdy":          {},
	"good morning":   {},
	"good afternoon": {},
	"good evening":   {},
	"what's up":      {},
	"whats up":       {},
	"sup":            {},
	"yo":             {},
	"namaste":        {},
}

// greetingReplies are returned verbatim for greeting prompts.
var greetingReplies = []string{
	"Hello! How can I help you today?",
	"Hi there! What would you like to know?",
	"Hey! Ask me anything and I'll do my best to answer.",
	"Greetings! What can I do for you?",
}

// datePhrases are lower-case substrings that mark a date question.
var datePhrases = []string{
	"today's date",
	"todays date",
	"today date",
	"date today",
	"current date",
	"what is the date",
	"what's the date",
	"whats the date",
	"what date is it",
	"what day is it",
	"what day is today",
	"which day is today",
}

// marksEntry is the structure expected from an answer worth a number of marks.
type marksEntry struct {
	words     int
	subtopics []string
}

// marksTable maps exam mark values to a target length and outline.
var marksTable = map[int]marksEntry{
	2: {
		words:     60,
		subtopics: []string{"definition", "one example"},
	},
	3: {
		words:     100,
		subtopics: []string{"definition", "key features", "one example"},
	},
	5: {
		words:     200,
		subtopics: []string{"introduction", "explanation", "key points", "example", "conclusion"},
	},
	8: {
		words:     350,
		subtopics: []string{"introduction", "background", "detailed explanation", "advantages and disadvantages", "examples", "conclusion"},
	},
	10: {
		words:     500,
		subtopics: []string{"introduction", "background", "detailed explanation", "types or classification", "advantages and disadvantages", "applications", "examples", "conclusion"},
	},
	15: {
		words:     750,
		subtopics: []string{"introduction", "historical background", "core concepts", "detailed explanation", "types or classification", "working or process", "advantages and disadvantages", "applications", "case study or examples", "conclusion"},
	},
}
