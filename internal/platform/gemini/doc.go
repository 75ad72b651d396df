// Package gemini provides an implementation of generation.Generator using
// Google's Gemini API through the google.golang.org/genai client.
package gemini
