// Package config loads the engine settings from a YAML, TOML or JSON file.
//
// Every document is checked against an embedded JSON Schema before it is
// decoded, so a typo in a key is reported instead of silently ignored.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/opal-lang/bakery/core/command"
	"github.com/opal-lang/bakery/core/expand"
	"github.com/opal-lang/bakery/core/optimize"
	"github.com/opal-lang/bakery/core/pathsafe"
)

// DebugEnv forces debug logging when set to a non-empty value.
const DebugEnv = "BAKERY_DEBUG"

// CurrentVersion is the configuration version written by DefaultConfig.
const CurrentVersion = "v1.0.0"

//go:embed schema.json
var schemaJSON []byte

// Format is a configuration file format.
type Format int

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = iota
	FormatYAML
	FormatTOML
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// DetectFormat returns the format for a file name, or FormatAuto when the
// extension is not recognised.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatAuto
	}
}

// Config holds the engine settings.
type Config struct {
	Version  string       `json:"version"`
	Params   CompatParams `json:"params"`
	Paths    PathPolicy   `json:"paths"`
	Batching Batching     `json:"batching"`
	LogLevel string       `json:"log_level"`
}

// CompatParams tunes parameter expansion.
type CompatParams struct {
	// TopLevelFallback expands a missing parameter at depth 1 to ##N.
	TopLevelFallback bool `json:"top_level_fallback"`
}

// PathPolicy configures the write protection of file commands.
type PathPolicy struct {
	UseDefaults       bool     `json:"use_defaults"` // Protect the Windows and Program Files directories
	Protected         []string `json:"protected"`
	ExtraInvalidChars string   `json:"extra_invalid_chars"`
}

// Batching configures the command optimizer.
type Batching struct {
	Enabled  bool     `json:"enabled"`
	Disabled []string `json:"disabled"` // Command names left unbatched
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Version:  CurrentVersion,
		Params:   CompatParams{TopLevelFallback: true},
		Paths:    PathPolicy{UseDefaults: true},
		Batching: Batching{Enabled: true},
		LogLevel: "info",
	}
}

// VersionError reports an unusable configuration version.
type VersionError struct {
	Version string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("unsupported config version %q (want a v1 semantic version)", e.Version)
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	format := DetectFormat(path)
	if format == FormatAuto {
		return nil, fmt.Errorf("config %s: unknown file extension %q", path, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document. Keys it omits keep
// their DefaultConfig values.
func Parse(data []byte, format Format) (*Config, error) {
	doc, err := decodeDocument(data, format)
	if err != nil {
		return nil, err
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to compile config schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize config: %w", err)
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(normalized, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeDocument returns the document as JSON values: maps, slices,
// json.Number, strings and bools.
func decodeDocument(data []byte, format Format) (any, error) {
	var raw any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatTOML:
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
		raw = m
	case FormatJSON:
		raw = json.RawMessage(data)
	default:
		return nil, fmt.Errorf("unsupported config format %s", format)
	}

	// Round-trip through JSON so every format reaches the schema with the
	// same value types.
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s document: %w", format, err)
	}
	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", format, err)
	}
	if doc == nil {
		return nil, errors.New("config document is empty")
	}
	return doc, nil
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	const url = "schema://bakery-config.json"
	if err := compiler.AddResource(url, bytes.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(url)
})

// Validate checks the values the schema cannot express.
func (c *Config) Validate() error {
	v := c.Version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) || semver.Major(v) != "v1" {
		return &VersionError{Version: c.Version}
	}

	for _, name := range c.Batching.Disabled {
		k, err := command.ParseKind(name)
		if err != nil {
			return fmt.Errorf("batching.disabled: %w", err)
		}
		if !k.IsOptimizable() {
			return fmt.Errorf("batching.disabled: %s is never batched", k)
		}
	}
	return nil
}

// Level returns the configured log level, or debug when DebugEnv is set.
func (c *Config) Level() slog.Level {
	if os.Getenv(DebugEnv) != "" {
		return slog.LevelDebug
	}
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}

// PathChecker returns the checker for the configured deny-list.
func (c *Config) PathChecker() *pathsafe.Checker {
	var dirs []string
	if c.Paths.UseDefaults {
		dirs = append(dirs, pathsafe.DefaultProtected()...)
	}
	dirs = append(dirs, c.Paths.Protected...)
	return pathsafe.NewChecker(dirs...)
}

// ValidPath reports whether path is free of reserved and configured
// invalid characters.
func (c *Config) ValidPath(path string) bool {
	return pathsafe.IsPathValid(path, c.Paths.ExtraInvalidChars)
}

// ValidFileName is ValidPath for a single path element.
func (c *Config) ValidFileName(name string) bool {
	return pathsafe.IsFileNameValid(name, c.Paths.ExtraInvalidChars)
}

// ExpandOptions returns the expander options for the configured behavior.
func (c *Config) ExpandOptions(logger *slog.Logger) []expand.Option {
	return []expand.Option{
		expand.WithLogger(logger),
		expand.WithTopLevelFallback(c.Params.TopLevelFallback),
	}
}

// Optimizer returns the optimizer for the configured batching. With batching
// off every optimizable kind is left alone. c must have passed Validate.
func (c *Config) Optimizer(logger *slog.Logger) *optimize.Optimizer {
	var off []command.Kind
	if !c.Batching.Enabled {
		for _, k := range command.ScriptKinds() {
			if k.IsOptimizable() {
				off = append(off, k)
			}
		}
	}
	for _, name := range c.Batching.Disabled {
		if k, err := command.ParseKind(name); err == nil {
			off = append(off, k)
		}
	}
	return optimize.New(optimize.WithLogger(logger), optimize.WithDisabled(off...))
}
