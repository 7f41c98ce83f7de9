package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/wippyai/gir/errors"
	"github.com/wippyai/gir/version"
)

// DefaultFileName is the configuration file looked up in the working directory
const DefaultFileName = "Gir.toml"

// Config is the validated generation configuration
type Config struct {
	AllowedDeprecatedVersion version.Range
	MinCfgVersion            version.Version
	Objects                  *Objects

	GirsDir        string
	Library        string
	LibraryVersion string
	TargetPath     string

	MakeBackup            bool
	GenerateSafetyAsserts bool

	// Dir is the directory containing the configuration file (set at load time).
	Dir string
}

// file mirrors the on-disk layout of Gir.toml
type file struct {
	Options options       `toml:"options"`
	Objects []objectEntry `toml:"object"`
}

type options struct {
	GirsDir                  string `toml:"girs_dir"`
	Library                  string `toml:"library"`
	Version                  string `toml:"version"`
	TargetPath               string `toml:"target_path"`
	AllowedDeprecatedVersion string `toml:"allowed_deprecated_version"`
	MinCfgVersion            string `toml:"min_cfg_version"`
	MakeBackup               bool   `toml:"make_backup"`
	GenerateSafetyAsserts    bool   `toml:"generate_safety_asserts"`
}

type objectEntry struct {
	Name    string        `toml:"name"`
	Status  string        `toml:"status"`
	Members []memberEntry `toml:"member"`
}

type memberEntry struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Alias   bool   `toml:"alias"`
}

// Overrides carries command line values; empty strings keep the file value.
type Overrides struct {
	GirsDir    string
	Library    string
	TargetPath string
}

// Load reads and validates a configuration file.
func Load(path string, ov Overrides) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindNotFound, err, "read "+path)
	}

	cfg, err := Parse(data, ov)
	if err != nil {
		return nil, err
	}

	cfg.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "resolve path "+path)
	}
	return cfg, nil
}

// Parse decodes and validates configuration text.
func Parse(data []byte, ov Overrides) (*Config, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "decode configuration")
	}

	opts := f.Options
	if ov.GirsDir != "" {
		opts.GirsDir = ov.GirsDir
	}
	if ov.Library != "" {
		opts.Library = ov.Library
	}
	if ov.TargetPath != "" {
		opts.TargetPath = ov.TargetPath
	}

	if opts.GirsDir == "" {
		return nil, errors.InvalidInput(errors.PhaseConfig, "no options.girs_dir in config")
	}
	if opts.Library == "" {
		return nil, errors.InvalidInput(errors.PhaseConfig, "no options.library in config")
	}
	if opts.TargetPath == "" {
		return nil, errors.InvalidInput(errors.PhaseConfig, "no options.target_path in config")
	}

	allowed, err := version.ParseRange(opts.AllowedDeprecatedVersion)
	if err != nil {
		return nil, err
	}

	var minCfg version.Version
	if opts.MinCfgVersion != "" {
		minCfg, err = version.Parse(opts.MinCfgVersion)
		if err != nil {
			return nil, errors.InvalidVersion(errors.PhaseConfig, opts.MinCfgVersion, err)
		}
	}

	objects, err := parseObjects(f.Objects)
	if err != nil {
		return nil, err
	}

	return &Config{
		AllowedDeprecatedVersion: allowed,
		MinCfgVersion:            minCfg,
		Objects:                  objects,
		GirsDir:                  opts.GirsDir,
		Library:                  opts.Library,
		LibraryVersion:           opts.Version,
		TargetPath:               opts.TargetPath,
		MakeBackup:               opts.MakeBackup,
		GenerateSafetyAsserts:    opts.GenerateSafetyAsserts,
	}, nil
}

// GirFileName returns the introspection file base name, e.g. "Gtk-3.0"
func (c *Config) GirFileName() string {
	if c.LibraryVersion == "" {
		return c.Library
	}
	return c.Library + "-" + c.LibraryVersion
}
