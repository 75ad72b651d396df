// Package huggingface implements generation.Generator against a Hugging Face
// style text-generation inference endpoint.
package huggingface
