// Package config loads scan settings from an optional .depscope.toml file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/depscope/depscope/pkg/deps"
	"github.com/depscope/depscope/pkg/errors"
	"github.com/depscope/depscope/pkg/extract"
	"github.com/depscope/depscope/pkg/scan"
)

// FileName is the config file looked up in the scan root.
const FileName = ".depscope.toml"

// Engine names accepted by Config.Engine.
const (
	EngineBuiltin = "builtin"
	EngineAstGrep = "ast-grep"
)

// Config mirrors the .depscope.toml schema. All fields are optional; the
// zero value of any field falls back to its default.
type Config struct {
	// Engine picks the pattern matcher: "builtin" or "ast-grep".
	Engine string `toml:"engine"`

	// AstGrepBin overrides the ast-grep binary name or path.
	AstGrepBin string `toml:"ast_grep_bin"`

	// ToolTimeoutSeconds caps each external tool invocation.
	ToolTimeoutSeconds int `toml:"tool_timeout_seconds"`

	// Denylist replaces the default skipped-directory names.
	Denylist []string `toml:"denylist"`

	// Languages limits scanning to the named languages. Empty means all.
	Languages []string `toml:"languages"`

	// Workers caps extraction concurrency.
	Workers int `toml:"workers"`

	// UseGitignore also honors the root's .gitignore.
	UseGitignore bool `toml:"use_gitignore"`

	// MaxFileSize skips files larger than this many bytes.
	MaxFileSize int64 `toml:"max_file_size"`

	// TopN limits the fan-out ranking in rendered output.
	TopN int `toml:"top_n"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Engine: EngineBuiltin,
		TopN:   10,
	}
}

// Load reads path and merges it over the defaults. An empty path looks for
// FileName under root; a missing file there is not an error, but an
// explicitly named file must exist.
func Load(path, root string) (*Config, error) {
	cfg := Default()

	if path == "" {
		candidate := filepath.Join(root, FileName)
		if _, err := os.Stat(candidate); err != nil {
			return cfg, nil
		}
		path = candidate
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "loading config from %s", path)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Engine {
	case "", EngineBuiltin, EngineAstGrep:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown engine %q", c.Engine)
	}
	if c.ToolTimeoutSeconds < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "tool_timeout_seconds must not be negative")
	}
	if c.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must not be negative")
	}
	if c.MaxFileSize < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_file_size must not be negative")
	}
	if c.TopN < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "top_n must not be negative")
	}
	for _, name := range c.Languages {
		if deps.ByName(deps.DefaultLanguages(), name) == nil {
			return errors.New(errors.ErrCodeInvalidLanguage, "unsupported language %q", name)
		}
	}
	return nil
}

// LanguageList resolves the configured language names, or nil for all.
func (c *Config) LanguageList() []*deps.Language {
	if len(c.Languages) == 0 {
		return nil
	}
	langs := make([]*deps.Language, 0, len(c.Languages))
	for _, name := range c.Languages {
		if l := deps.ByName(deps.DefaultLanguages(), name); l != nil {
			langs = append(langs, l)
		}
	}
	return langs
}

// ToolTimeout returns the configured external tool deadline.
func (c *Config) ToolTimeout() time.Duration {
	if c.ToolTimeoutSeconds <= 0 {
		return extract.DefaultToolTimeout
	}
	return time.Duration(c.ToolTimeoutSeconds) * time.Second
}

// BuildEngine constructs the configured extraction engine. The ast-grep
// engine verifies up front that the binary is on PATH.
func (c *Config) BuildEngine() (extract.Engine, error) {
	switch c.Engine {
	case "", EngineBuiltin:
		return &extract.Builtin{}, nil
	case EngineAstGrep:
		engine := extract.NewAstGrep(c.AstGrepBin, c.ToolTimeout())
		if err := engine.LookPath(); err != nil {
			return nil, err
		}
		return engine, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown engine %q", c.Engine)
	}
}

// ScanOptions translates the config into scan options for root.
func (c *Config) ScanOptions(root string, engine extract.Engine) scan.Options {
	return scan.Options{
		Root:         root,
		Denylist:     c.Denylist,
		Languages:    c.LanguageList(),
		Engine:       engine,
		Workers:      c.Workers,
		UseGitignore: c.UseGitignore,
		MaxFileSize:  c.MaxFileSize,
	}
}
