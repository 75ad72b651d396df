// Package domain contains the core value types of the relay: how a prompt
// is classified, the length/structure requested from it, and the errors
// shared across layers. It is independent of HTTP and of any provider.
package domain
