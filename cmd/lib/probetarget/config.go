package probetarget

import (
	"time"

	"github.com/probekit/customprobe/configbp"
	"github.com/probekit/customprobe/log"
)

// Config is the configuration of the probe target service.
//
// It is read from a YAML file, with environment variables substituted:
//
//	addr: ":8080"
//	countdown: 30
//	tick: 1s
//	log:
//	  level: info
//	  format: json
//	sentry:
//	  dsn: $SENTRY_DSN
//	stop_timeout: 5s
type Config struct {
	// Addr is the address to listen on.
	Addr string `yaml:"addr" validate:"required"`

	// Countdown is the number of ticks before the service is ready.
	Countdown int `yaml:"countdown" validate:"min=0"`

	// Tick is the countdown interval.
	Tick time.Duration `yaml:"tick" validate:"min=0"`

	Log    log.Config       `yaml:"log"`
	Sentry log.SentryConfig `yaml:"sentry"`

	// StopTimeout bounds graceful shutdown of in-flight requests.
	StopTimeout time.Duration `yaml:"stop_timeout" validate:"min=0"`
}

// Default values of Config.
const (
	DefaultAddr        = ":8080"
	DefaultCountdown   = 30
	DefaultTick        = time.Second
	DefaultStopTimeout = 5 * time.Second
)

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() Config {
	return Config{
		Addr:        DefaultAddr,
		Countdown:   DefaultCountdown,
		Tick:        DefaultTick,
		Log:         log.Config{Level: log.InfoLevel},
		StopTimeout: DefaultStopTimeout,
	}
}

// LoadConfig returns DefaultConfig overridden by the YAML file at path.
//
// An empty path returns DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if err := configbp.ParseStrictFile(path, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Tick <= 0 {
		cfg.Tick = DefaultTick
	}
	if cfg.StopTimeout <= 0 {
		cfg.StopTimeout = DefaultStopTimeout
	}
	return cfg, nil
}
