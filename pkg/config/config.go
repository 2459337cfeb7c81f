package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/offlinefirst/dragscroll/pkg/scroll"
)

const (
	DefaultFileName = "config.yaml"
	appDirName      = "dragscroll"

	// maxKeyCount bounds the keys list; longer lists are rejected whole.
	maxKeyCount = 5
)

// Config captures the resolved activation parameters and ambient settings.
type Config struct {
	Activation scroll.Config
	Logging    LoggingConfig

	// Source indicates where the configuration originated (defaults, a file
	// path, preferences or a combination).
	Source string
	// Path is the configuration file that was read, empty when none was.
	Path string
	// Warnings lists values that were rejected and replaced by defaults.
	Warnings []string
}

// LoggingConfig defines log verbosity and formatting.
type LoggingConfig struct {
	Level  string
	Format string
}

// Default returns the baseline configuration used when no overrides are supplied.
func Default() Config {
	return Config{
		Activation: scroll.DefaultConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "auto",
		},
		Source: "<defaults>",
	}
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName, DefaultFileName), nil
}

// Load reads the configuration file and the platform preference domain.
// When path is empty the per-user default location is tried and a missing
// file is tolerated. Malformed values never fail: each falls back to its
// default and is recorded in Warnings.
func Load(path string) (Config, error) {
	cfg := Default()

	candidate := strings.TrimSpace(path)
	explicit := candidate != ""
	if !explicit {
		if def, err := DefaultPath(); err == nil {
			candidate = def
		}
	}

	var layers []overrides
	if candidate != "" {
		data, err := os.ReadFile(candidate)
		switch {
		case err == nil:
			file, doc := decodeFile(data)
			layers = append(layers, file)
			cfg.applyLogging(doc.Logging)
			cfg.Path = candidate
			cfg.Source = candidate
		case errors.Is(err, os.ErrNotExist):
			if explicit {
				return cfg, fmt.Errorf("config file %q not found", candidate)
			}
		default:
			return cfg, fmt.Errorf("open config file %q: %w", candidate, err)
		}
	}

	if prefs, ok := readPreferences(); ok {
		layers = append(layers, prefs)
		if cfg.Path == "" {
			cfg.Source = "<preferences>"
		} else {
			cfg.Source += " + <preferences>"
		}
	}

	for _, layer := range layers {
		layer.apply(&cfg.Activation)
		cfg.Warnings = append(cfg.Warnings, layer.warnings...)
	}
	return cfg, nil
}

type document struct {
	Button  yaml.Node `yaml:"button"`
	Keys    yaml.Node `yaml:"keys"`
	Speed   yaml.Node `yaml:"speed"`
	Legacy  yaml.Node `yaml:"legacy_button_hold_behaviour"`
	Logging loggingDoc `yaml:"logging"`
}

type loggingDoc struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func decodeFile(data []byte) (overrides, document) {
	var doc document
	var out overrides
	if len(bytes.TrimSpace(data)) == 0 {
		return out, doc
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		out.warn("config file ignored: %v", err)
		return out, document{}
	}

	if present(doc.Button) {
		var b int
		if err := doc.Button.Decode(&b); err != nil {
			out.invalidButton(doc.Button.Value)
		} else {
			out.setButton(b)
		}
	}
	if present(doc.Keys) {
		var names []string
		if doc.Keys.Kind != yaml.SequenceNode || doc.Keys.Decode(&names) != nil {
			out.invalidKeys("keys must be a list of modifier names")
		} else {
			out.setKeys(names)
		}
	}
	if present(doc.Speed) {
		var s int
		if err := doc.Speed.Decode(&s); err != nil {
			out.invalidSpeed(doc.Speed.Value)
		} else {
			out.setSpeed(s)
		}
	}
	if present(doc.Legacy) {
		var l bool
		if err := doc.Legacy.Decode(&l); err != nil {
			out.invalidLegacy(doc.Legacy.Value)
		} else {
			out.setLegacy(l)
		}
	}
	return out, doc
}

func present(n yaml.Node) bool {
	return n.Kind != 0 && n.Tag != "!!null"
}

func (c *Config) applyLogging(raw loggingDoc) {
	if raw.Level != "" {
		if lvl, err := NormalizeLogLevel(raw.Level); err != nil {
			c.Warnings = append(c.Warnings, err.Error()+"; using "+c.Logging.Level)
		} else {
			c.Logging.Level = lvl
		}
	}
	if raw.Format != "" {
		if format, err := NormalizeFormat(raw.Format); err != nil {
			c.Warnings = append(c.Warnings, err.Error()+"; using "+c.Logging.Format)
		} else {
			c.Logging.Format = format
		}
	}
}

// NormalizeLogLevel validates and lowercases known logging levels.
func NormalizeLogLevel(level string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return "info", nil
	case "debug":
		return "debug", nil
	case "warn", "warning":
		return "warn", nil
	case "error":
		return "error", nil
	default:
		return "", fmt.Errorf("unsupported log level %q", level)
	}
}

// NormalizeFormat validates and canonicalizes logging format identifiers.
func NormalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "auto":
		return "auto", nil
	case "json":
		return "json", nil
	case "console", "text":
		return "console", nil
	default:
		return "", fmt.Errorf("unsupported log format %q", format)
	}
}
