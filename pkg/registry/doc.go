// Package registry provides a generic, thread-safe registry keyed by name.
// The dispatcher uses it to map deep link actions onto navigation handlers.
package registry
