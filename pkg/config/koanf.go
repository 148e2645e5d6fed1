package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/gcroots/pkg/errors"
	"github.com/arthur-debert/gcroots/pkg/paths"
	"github.com/arthur-debert/gcroots/pkg/roots"
	"github.com/arthur-debert/gcroots/pkg/types"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

// Environment variables read during bootstrap
const (
	// EnvPrefix prefixes gcroots' own settings
	EnvPrefix = "GCROOTS_"

	// EnvStateDir overrides the store state directory
	EnvStateDir = "NIX_STATE_DIR"

	// EnvUser names the calling user
	EnvUser = "USER"
)

// Config is the resolved gcroots configuration
type Config struct {
	User  string      `koanf:"user" toml:"user"`
	Store StoreConfig `koanf:"store" toml:"store"`
	Cache CacheConfig `koanf:"cache" toml:"cache"`
	Log   LogConfig   `koanf:"log" toml:"log"`
}

// StoreConfig locates the package store
type StoreConfig struct {
	StateDir string `koanf:"state_dir" toml:"state_dir"`
}

// CacheConfig locates gcroots' cache
type CacheConfig struct {
	Dir string `koanf:"dir" toml:"dir"`
}

// LogConfig controls the log file
type LogConfig struct {
	File string `koanf:"file" toml:"file"`
}

// Options controls where Load reads from
type Options struct {
	// ConfigFile is an explicit config file; it must exist when set.
	// When empty the XDG config file is used if present.
	ConfigFile string

	// LookupEnv reads the store environment; defaults to os.LookupEnv
	LookupEnv func(string) (string, bool)

	// Overrides are applied last, keyed like "cache.dir"
	Overrides map[string]interface{}
}

// Load resolves configuration from all sources
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load the user config file
	configFile := opts.ConfigFile
	if configFile == "" {
		if candidate := paths.ConfigFilePath(); fileExists(candidate) {
			configFile = candidate
		}
	} else if !fileExists(configFile) {
		return nil, errors.Newf(errors.ErrConfigLoad, "config file %s does not exist", configFile).
			WithDetail("path", configFile)
	}
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configFile)
		}
	}

	// 3. Load the store environment
	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	storeEnv := map[string]interface{}{}
	if v, ok := lookup(EnvStateDir); ok && v != "" {
		storeEnv["store.state_dir"] = v
	}
	if v, ok := lookup(EnvUser); ok && v != "" {
		storeEnv["user"] = v
	}
	if err := k.Load(confmap.Provider(storeEnv, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load store environment")
	}

	// 4. Load GCROOTS_ variables
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 5. Apply overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps GCROOTS_CACHE__DIR to cache.dir
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Validate checks that configured directories are absolute
func (c *Config) Validate() error {
	for key, dir := range map[string]string{
		"store.state_dir": c.Store.StateDir,
		"cache.dir":       c.Cache.Dir,
	} {
		if dir != "" && !filepath.IsAbs(dir) {
			return errors.Newf(errors.ErrInvalidInput, "%s must be an absolute path, got %q", key, dir).
				WithDetail("key", key)
		}
	}
	return nil
}

// RootsEnvironment returns the settings the root manager needs. c must
// have passed Validate. An unset user is passed through; the root manager
// reports it.
func (c *Config) RootsEnvironment() roots.Environment {
	renv := roots.Environment{User: c.User}
	if c.Store.StateDir != "" {
		renv.StateDirOverride = types.MustAbsPath(c.Store.StateDir)
	}
	return renv
}

// Paths returns the gcroots paths for this configuration
func (c *Config) Paths() paths.Paths {
	return paths.New(c.Cache.Dir)
}

// LogFile returns the log file path, or "" when file logging is disabled
func (c *Config) LogFile() string {
	switch c.Log.File {
	case "-":
		return ""
	case "":
		return paths.LogFilePath()
	default:
		return c.Log.File
	}
}

// TOML renders the configuration as a TOML document
func (c *Config) TOML() (string, error) {
	data, err := gotoml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return string(data), nil
}
