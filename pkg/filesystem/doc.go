// Package filesystem provides filesystem implementations for gcroots.
//
// This package contains the OS implementation of the types.FS interface
// that the root manager uses by default.
package filesystem
