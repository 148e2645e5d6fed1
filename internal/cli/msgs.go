package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Register build outputs as garbage collector roots"
	MsgAddShort        = "Protect a store path from garbage collection"
	MsgStatusShort     = "Show the GC roots of a project"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgStorePathMissing = "store path does not exist yet; the root will dangle until it is built"
	MsgVersionFormat    = "gcroots version %s\n  commit: %s\n  built:  %s"

	// Error messages
	MsgErrLoadConfig   = "failed to load configuration"
	MsgErrInvalidPath  = "invalid %s %q"
	MsgErrNoCommand    = "no command specified"
	MsgErrUnknownShell = "unsupported shell %q"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default $XDG_CONFIG_HOME/gcroots/config.toml)"
	MsgFlagStateDir  = "Store state directory (overrides NIX_STATE_DIR)"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagProjectID = "Identifier of the project owning the root"
	MsgFlagCacheDir  = "Project cache directory (default <cache>/gc_roots/<id>); must exist"
	MsgFlagDefaults  = "Print the built-in defaults instead of the effective configuration"
)

// Long messages
const (
	MsgRootLong = `gcroots keeps the output a project was last built from alive across
garbage collections. It links the output from the project's cache
directory and registers that link in the store's per-user gcroots
directory, so the collector treats it as live until it is replaced.`

	MsgAddLong = `add points the project's shell_gc_root at STORE_PATH and registers it
with the garbage collector. A previous root for the same project is
replaced. Roots of other projects are left alone.`

	MsgAddExample = `  gcroots add /nix/store/abc123-shell --project-id 3f2a
  gcroots add ./result --project-id 3f2a --cache-dir ~/.cache/myproject/gc_root`

	MsgStatusLong = `status reports both links of a project's root without changing them.`
)
