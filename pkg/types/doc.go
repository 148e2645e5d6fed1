// Package types defines the value types and interfaces shared across
// gcroots: absolute paths, GC root paths, the named output container and
// the filesystem abstraction the root manager writes through.
package types
