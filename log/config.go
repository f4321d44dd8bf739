package log

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config is the configuration struct for the log package.
//
// Can be deserialized from YAML.
type Config struct {
	// Level is the log level, defaults to info.
	Level Level `yaml:"level" validate:"omitempty,oneof=nop debug info warn error panic fatal"`

	// Format is either "console" (the default) or "json".
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`

	// File, when set with a non-empty Path, sends the logs to a rotating file
	// instead of stderr.
	File *FileConfig `yaml:"file"`
}

// FileConfig configures rotating file output.
type FileConfig struct {
	Path string `yaml:"path"`

	// MaxSizeMB is the size a file can grow to before being rotated.
	// Zero uses lumberjack's default of 100.
	MaxSizeMB int `yaml:"max_size_mb" validate:"min=0"`

	// MaxBackups is the number of rotated files kept, zero keeps all.
	MaxBackups int `yaml:"max_backups" validate:"min=0"`

	// MaxAgeDays is the age after which rotated files are removed,
	// zero never removes by age.
	MaxAgeDays int `yaml:"max_age_days" validate:"min=0"`
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// InitFromConfig replaces the global logger according to cfg.
//
// The returned io.Closer releases the log file when File is configured,
// and is a no-op otherwise.
func InitFromConfig(cfg Config) (io.Closer, error) {
	if cfg.Level == "" {
		cfg.Level = InfoLevel
	}
	json := strings.EqualFold(cfg.Format, "json")
	var zcfg zap.Config
	if json {
		zcfg = jsonConfig(cfg.Level)
	} else {
		zcfg = consoleConfig(cfg.Level)
	}

	if cfg.File == nil || cfg.File.Path == "" || cfg.Level == NopLevel {
		return nopCloser{}, InitLoggerWithConfig(cfg.Level, zcfg)
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.File.Path,
		MaxSize:    cfg.File.MaxSizeMB,
		MaxBackups: cfg.File.MaxBackups,
		MaxAge:     cfg.File.MaxAgeDays,
		LocalTime:  true,
	}
	var encoder zapcore.Encoder
	if json {
		encoder = zapcore.NewJSONEncoder(zcfg.EncoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(zcfg.EncoderConfig)
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(rotator), zcfg.Level)
	setGlobal(zap.New(core, zap.AddCaller()))
	return rotator, nil
}
