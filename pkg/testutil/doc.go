// Package testutil provides utilities for testing gcroots components.
//
// Key components:
//   - FaultFS: a types.FS wrapper that fails chosen operations on chosen paths
//   - Layout: a temporary store, cache and state directory tree
//
// Tests use the real filesystem inside t.TempDir(); FaultFS covers the
// failures a temp directory cannot produce reliably (for example when the
// tests run as root and permission bits are ignored).
package testutil
