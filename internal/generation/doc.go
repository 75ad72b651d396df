// Package generation defines the boundary between the relay and external
// LLM text-completion services. Generator is the interface every provider
// backend implements (Hugging Face inference endpoints, Gemini), so the
// chat pipeline never depends on a specific vendor.
package generation
