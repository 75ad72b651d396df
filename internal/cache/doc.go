// Package cache provides the in-memory response cache used by the relay and
// the background clearer that wipes it on a fixed interval.
//
// Keys are prompts exactly as received: no trimming or case folding. Entries
// never expire individually; the whole cache is dropped on every tick.
package cache
