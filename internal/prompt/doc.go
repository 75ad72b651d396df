// Package prompt turns a raw chat prompt into what the inference provider
// receives, and turns the provider's text into what the widget shows.
//
// Classify decides whether a prompt is a greeting, a date question or a
// content question and extracts any requested length. Augment appends the
// instructional suffixes and TokenBudget derives the generation budget.
// Sanitize cleans the provider's raw output. Everything here is pure and
// deterministic.
package prompt
