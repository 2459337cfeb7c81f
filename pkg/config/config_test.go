package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/offlinefirst/dragscroll/pkg/scroll"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Path != "" {
		t.Fatalf("expected no config path, got %q", cfg.Path)
	}
	if cfg.Activation.Button != 3 || cfg.Activation.Speed != 2 {
		t.Fatalf("unexpected defaults: %+v", cfg.Activation)
	}
	if cfg.Activation.Keys != 0 || cfg.Activation.Legacy {
		t.Fatalf("expected no keys and hold mode, got %+v", cfg.Activation)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "auto" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestLoadFromFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "button: 5\nkeys: [shift, Control]\nspeed: -4\nlegacy_button_hold_behaviour: true\nlogging:\n  level: DEBUG\n  format: console\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := scroll.Config{Button: 5, Keys: scroll.FlagShift | scroll.FlagControl, Speed: -4, Legacy: true}
	if shadowed := readPreferencesAvailable(); !shadowed && cfg.Activation != want {
		t.Fatalf("expected %+v, got %+v", want, cfg.Activation)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
	if cfg.Path != path {
		t.Fatalf("expected path %q, got %q", path, cfg.Path)
	}
	if len(cfg.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", cfg.Warnings)
	}
}

func TestDecodeFileFallsBackPerKey(t *testing.T) {
	cases := map[string]struct {
		content string
		want    scroll.Config
	}{
		"button out of range": {"button: 99\n", scroll.Config{Button: 3, Speed: 2}},
		"reserved button":     {"button: 2\n", scroll.Config{Button: 3, Speed: 2}},
		"button disabled":     {"button: 0\n", scroll.Config{Button: 0, Speed: 2}},
		"button not a number": {"button: middle\n", scroll.Config{Button: 3, Speed: 2}},
		"unknown key name":    {"keys: [shift, hyper]\n", scroll.Config{Button: 3, Speed: 2}},
		"too many keys":       {"keys: [shift, control, option, command, capslock, shift]\n", scroll.Config{Button: 3, Speed: 2}},
		"keys not a list":     {"keys: shift\n", scroll.Config{Button: 3, Speed: 2}},
		"speed not a number":  {"speed: fast\n", scroll.Config{Button: 3, Speed: 2}},
		"speed zero":          {"speed: 0\n", scroll.Config{Button: 3, Speed: 0}},
		"legacy not a bool":   {"legacy_button_hold_behaviour: sometimes\n", scroll.Config{Button: 3, Speed: 2}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			layer, _ := decodeFile([]byte(tc.content))
			got := scroll.DefaultConfig()
			layer.apply(&got)
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestDecodeFileWarnsOnRejectedValues(t *testing.T) {
	layer, _ := decodeFile([]byte("button: 99\nkeys: [meta]\n"))
	if len(layer.warnings) != 2 {
		t.Fatalf("expected two warnings, got %v", layer.warnings)
	}
	if !strings.Contains(layer.warnings[0], "button 99") {
		t.Fatalf("unexpected button warning %q", layer.warnings[0])
	}
}

func TestDecodeFileSyntaxErrorUsesDefaults(t *testing.T) {
	layer, _ := decodeFile([]byte("button: [3\n"))
	got := scroll.DefaultConfig()
	layer.apply(&got)
	if got != scroll.DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", got)
	}
	if len(layer.warnings) != 1 {
		t.Fatalf("expected syntax warning, got %v", layer.warnings)
	}
}

func TestInvalidLoggingFallsBack(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: loud\n  format: xml\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "auto" {
		t.Fatalf("expected logging defaults, got %+v", cfg.Logging)
	}
	if len(cfg.Warnings) < 2 {
		t.Fatalf("expected logging warnings, got %v", cfg.Warnings)
	}
}

func TestNormalizeFormat(t *testing.T) {
	cases := map[string]string{"": "auto", "JSON": "json", "text": "console", "auto": "auto"}
	for in, want := range cases {
		got, err := NormalizeFormat(in)
		if err != nil {
			t.Fatalf("NormalizeFormat(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("NormalizeFormat(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := NormalizeFormat("xml"); err == nil {
		t.Fatalf("expected error for xml format")
	}
}

// readPreferencesAvailable reports whether the host preference domain
// contributed values that would shadow the file under test.
func readPreferencesAvailable() bool {
	_, ok := readPreferences()
	return ok
}
