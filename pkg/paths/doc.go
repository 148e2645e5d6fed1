// Package paths provides centralized path handling for gcroots.
//
// gcroots follows the XDG Base Directory specification for its own files:
//
//   - Cache: $XDG_CACHE_HOME/gcroots (per-project GC root directories)
//   - Config: $XDG_CONFIG_HOME/gcroots/config.toml
//   - State: $XDG_STATE_HOME/gcroots/gcroots.log
//
// The store's own gcroots directory is not handled here; see pkg/roots.
//
// # Usage
//
//	p := paths.New(cfg.Cache.Dir)
//	dir, err := p.ProjectGCRootDir("ab12cd34") // ~/.cache/gcroots/gc_roots/ab12cd34
package paths
