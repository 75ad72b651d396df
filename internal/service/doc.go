// Package service contains the relay's use case: turning a chat prompt into
// a bot reply. ChatService walks every request through the cache check,
// classification, local answers for greetings and date questions,
// augmentation, the provider call, sanitization and the cache write.
//
// Services receive their collaborators (cache, generator, clock) through
// constructor injection and never depend on HTTP or on a specific provider.
package service
