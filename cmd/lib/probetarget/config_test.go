package probetarget

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/probekit/customprobe/log"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("PROBETARGET_DSN", "https://key@sentry.example.com/1")

	for _, c := range []struct {
		label   string
		content string
		want    Config
		err     string
	}{
		{
			label: "defaults",
			want:  DefaultConfig(),
		},
		{
			label: "full",
			content: `
addr: "127.0.0.1:9090"
countdown: 5
tick: 100ms
log:
  level: debug
  format: json
  file:
    path: /var/log/probetarget.log
    max_backups: 3
sentry:
  dsn: $PROBETARGET_DSN
  environment: staging
stop_timeout: 2s
`,
			want: Config{
				Addr:      "127.0.0.1:9090",
				Countdown: 5,
				Tick:      100 * time.Millisecond,
				Log: log.Config{
					Level:  log.DebugLevel,
					Format: "json",
					File: &log.FileConfig{
						Path:       "/var/log/probetarget.log",
						MaxBackups: 3,
					},
				},
				Sentry: log.SentryConfig{
					DSN:         "https://key@sentry.example.com/1",
					Environment: "staging",
				},
				StopTimeout: 2 * time.Second,
			},
		},
		{
			label:   "partial",
			content: "countdown: 0\n",
			want: func() Config {
				cfg := DefaultConfig()
				cfg.Countdown = 0
				return cfg
			}(),
		},
		{
			label:   "negative-countdown",
			content: "countdown: -1\n",
			err:     "Countdown",
		},
		{
			label:   "empty-addr",
			content: "addr: \"\"\n",
			err:     "Addr",
		},
		{
			label:   "unknown-field",
			content: "port: 8080\n",
			err:     "field port not found",
		},
	} {
		t.Run(c.label, func(t *testing.T) {
			var path string
			if c.content != "" {
				path = filepath.Join(t.TempDir(), "probetarget.yaml")
				if err := os.WriteFile(path, []byte(c.content), 0600); err != nil {
					t.Fatalf("SETUP: failed to write file: %s", err)
				}
			}
			got, err := LoadConfig(path)
			if c.err != "" {
				if err == nil || !strings.Contains(err.Error(), c.err) {
					t.Fatalf("Expected error containing %q, got %v", c.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
