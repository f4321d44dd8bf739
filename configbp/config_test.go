package configbp_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/probekit/customprobe/configbp"
	"github.com/probekit/customprobe/log"
)

type serviceConfig struct {
	Addr    string        `yaml:"addr" validate:"required"`
	Retries int           `yaml:"retries" validate:"min=0"`
	Tick    time.Duration `yaml:"tick"`
	Log     log.Config    `yaml:"log"`
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("SETUP: failed to write file: %s", err)
	}
	return path
}

func TestParseStrictFile(t *testing.T) {
	t.Setenv("PROBE_ADDR", "localhost:1234")

	for _, c := range []struct {
		label   string
		name    string
		content string
		want    serviceConfig
		err     string
	}{
		{
			label: "basic-env",
			name:  "cfg.yaml",
			content: `
addr: $PROBE_ADDR
tick: 250ms
log:
  level: debug
  format: json
`,
			want: serviceConfig{
				Addr: "localhost:1234",
				Tick: 250 * time.Millisecond,
				Log: log.Config{
					Level:  log.DebugLevel,
					Format: "json",
				},
			},
		},
		{
			label:   "yml-extension",
			name:    "cfg.yml",
			content: "addr: ${PROBE_ADDR}\n",
			want: serviceConfig{
				Addr: "localhost:1234",
			},
		},
		{
			label:   "unknown-field",
			name:    "cfg.yaml",
			content: "addr: x\nfancy: true\n",
			err:     "field fancy not found",
		},
		{
			label:   "missing-required",
			name:    "cfg.yaml",
			content: "retries: 1\n",
			err:     "Addr",
		},
		{
			label:   "invalid-level",
			name:    "cfg.yaml",
			content: "addr: x\nlog:\n  level: loud\n",
			err:     "Level",
		},
		{
			label:   "unsupported-extension",
			name:    "cfg.json",
			content: `{"addr": "x"}`,
			err:     `unsupported config extension ".json"`,
		},
	} {
		t.Run(c.label, func(t *testing.T) {
			path := writeConfig(t, c.name, c.content)
			var got serviceConfig
			err := configbp.ParseStrictFile(path, &got)
			if c.err != "" {
				if err == nil {
					t.Fatalf("Expected error containing %q, got none", c.err)
				}
				if !strings.Contains(err.Error(), c.err) {
					t.Errorf("Expected error containing %q, got %v", c.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStrictFile returned error: %v", err)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseStrictYAMLKeepsDefaults(t *testing.T) {
	cfg := serviceConfig{
		Addr: ":8080",
		Tick: time.Second,
	}
	if err := configbp.ParseStrictYAML(strings.NewReader(""), &cfg); err != nil {
		t.Fatalf("ParseStrictYAML returned error on empty input: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.Tick != time.Second {
		t.Errorf("Expected defaults to survive, got %+v", cfg)
	}

	if err := configbp.ParseStrictYAML(strings.NewReader("retries: 3\n"), &cfg); err != nil {
		t.Fatalf("ParseStrictYAML returned error: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.Retries != 3 {
		t.Errorf("Expected partial override, got %+v", cfg)
	}
}
