// Package config loads cfgcheck.toml: default diagnostic levels, output and
// run settings shared by every invocation in a tree.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"cfgcheck/internal/diag"
	"cfgcheck/internal/source"
)

type Config struct {
	// Path is the file the configuration was read from; empty for defaults.
	Path string `toml:"-"`

	Inputs      InputsConfig      `toml:"inputs"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Output      OutputConfig      `toml:"output"`
	Run         RunConfig         `toml:"run"`
	Trace       TraceConfig       `toml:"trace"`
}

// InputsConfig names default snapshot files, relative to the config file.
type InputsConfig struct {
	Legacy   string `toml:"legacy"`
	Computed string `toml:"computed"`
	Format   string `toml:"format"`
}

type DiagnosticsConfig struct {
	Hide    []int `toml:"hide"`
	Warning []int `toml:"warning"`
	Error   []int `toml:"error"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
	Width  int    `toml:"width"`
	Max    int    `toml:"max"`
}

type RunConfig struct {
	Jobs    int  `toml:"jobs"`
	Timings bool `toml:"timings"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
	Format string `toml:"format"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: "pretty", Color: "auto"},
		Trace:  TraceConfig{Level: "off", Output: "stderr", Format: "auto"},
	}
}

// LoadError is a problem with a configuration file. Error does not repeat
// the path.
type LoadError struct {
	Path string
	Line int
	Err  error
}

func (e *LoadError) Error() string { return e.Err.Error() }

func (e *LoadError) Unwrap() error { return e.Err }

// Pos returns the location of the problem in the configuration file.
func (e *LoadError) Pos() source.Pos { return source.At(e.Path, e.Line) }

// ErrorPos returns the configuration position of err, or source.Synthetic.
func ErrorPos(err error) source.Pos {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Pos()
	}
	return source.Synthetic
}

// Load reads path over the defaults. Unknown keys are rejected so typos in
// level overrides do not go unnoticed.
func Load(path string) (*Config, error) {
	content, _, err := source.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("failed to read configuration: %w", err)}
	}
	cfg := Default()
	meta, err := toml.Decode(string(content), cfg)
	if err != nil {
		le := &LoadError{Path: path, Err: fmt.Errorf("failed to parse TOML: %w", err)}
		var perr toml.ParseError
		if errors.As(err, &perr) {
			le.Line = perr.Position.Line
		}
		return nil, le
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, &LoadError{Path: path, Err: fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))}
	}
	cfg.Path = path
	if err := cfg.validate(); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return cfg, nil
}

// Discover finds cfgcheck.toml above startDir and loads it, or returns the
// defaults when there is none.
func Discover(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) validate() error {
	switch c.Output.Format {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("[output].format: invalid value %q (expected: pretty|json|short)", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[output].color: invalid value %q (expected: auto|on|off)", c.Output.Color)
	}
	if c.Output.Width < 0 || c.Output.Max < 0 {
		return fmt.Errorf("[output]: width and max must not be negative")
	}
	if c.Run.Jobs < 0 {
		return fmt.Errorf("[run].jobs must not be negative")
	}
	return nil
}

// Resolve returns p relative to the configuration file directory. Absolute
// paths and empty strings are returned unchanged.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.Path == "" {
		return p
	}
	return filepath.Join(filepath.Dir(c.Path), filepath.FromSlash(p))
}

// Apply installs the configured diagnostic levels. Problems are reported as
// diag.ConfigFile at the configuration file.
func (c *Config) Apply(reg *diag.Registry) {
	pos := source.At(c.Path, 0)
	apply := func(codes []int, sev diag.Severity) {
		for _, n := range codes {
			code := diag.Code(n)
			cat, ok := reg.Category(code)
			switch {
			case !ok:
				reg.EmitAt(diag.ConfigFile, pos, fmt.Sprintf("Unknown diagnostic code: %d", n))
			case !cat.LevelSettable():
				reg.EmitAt(diag.ConfigFile, pos, fmt.Sprintf("Can't set level for diagnostic %d", n))
			default:
				reg.SetSeverity(code, sev)
			}
		}
	}
	apply(c.Diagnostics.Hide, diag.SevHidden)
	apply(c.Diagnostics.Warning, diag.SevWarning)
	apply(c.Diagnostics.Error, diag.SevError)
}
