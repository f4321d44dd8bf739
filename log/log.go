package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// globalLogger backs the package level functions, one frame deeper
	// than their callers.
	globalLogger = zap.NewNop().Sugar()
	// contextLogger is the same logger without the extra caller skip,
	// returned by C for direct use.
	contextLogger = zap.NewNop().Sugar()
)

// setGlobal installs l, which must report its direct caller.
func setGlobal(l *zap.Logger) {
	contextLogger = l.Sugar()
	globalLogger = l.WithOptions(zap.AddCallerSkip(1)).Sugar()
}

// Level is the verbose representation of log level.
type Level string

// Enums for Level.
const (
	NopLevel   Level = "nop"
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
	PanicLevel Level = "panic"
	FatalLevel Level = "fatal"

	// ZapNopLevel is above every level zap logs at.
	ZapNopLevel zapcore.Level = zapcore.FatalLevel + 1
)

// ToZapLevel converts Level to the corresponding zap level.
//
// Unknown values map to ZapNopLevel.
func (l Level) ToZapLevel() zapcore.Level {
	switch l {
	default:
		return ZapNopLevel
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case PanicLevel:
		return zapcore.PanicLevel
	case FatalLevel:
		return zapcore.FatalLevel
	}
}

// InitLogger replaces the global logger with a console logger.
func InitLogger(logLevel Level) {
	if err := InitLoggerWithConfig(logLevel, consoleConfig(logLevel)); err != nil {
		// shouldn't happen with the config built above
		panic(err)
	}
}

// InitLoggerJSON replaces the global logger with a JSON logger.
func InitLoggerJSON(logLevel Level) {
	if err := InitLoggerWithConfig(logLevel, jsonConfig(logLevel)); err != nil {
		panic(err)
	}
}

// InitLoggerWithConfig replaces the global logger with one built from cfg.
func InitLoggerWithConfig(logLevel Level, cfg zap.Config) error {
	if logLevel == NopLevel {
		setGlobal(zap.NewNop())
		return nil
	}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	setGlobal(l)
	return nil
}

func consoleConfig(logLevel Level) zap.Config {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(logLevel.ToZapLevel())
	config.Encoding = "console"
	config.EncoderConfig.EncodeCaller = ShortCallerEncoder
	config.EncoderConfig.EncodeTime = TimeEncoder
	config.EncoderConfig.EncodeLevel = CapitalLevelEncoder
	return config
}

func jsonConfig(logLevel Level) zap.Config {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(logLevel.ToZapLevel())
	config.Encoding = "json"
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	config.EncoderConfig.EncodeTime = JSONTimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.TimeKey = "timestamp"
	return config
}

// Debugw logs a message with some additional context.
//
// The variadic key-value pairs are treated as they are in With.
func Debugw(msg string, keysAndValues ...interface{}) {
	globalLogger.Debugw(msg, keysAndValues...)
}

// Infow logs a message with some additional context.
func Infow(msg string, keysAndValues ...interface{}) {
	globalLogger.Infow(msg, keysAndValues...)
}

// Warnw logs a message with some additional context.
func Warnw(msg string, keysAndValues ...interface{}) {
	globalLogger.Warnw(msg, keysAndValues...)
}

// Errorw logs a message with some additional context.
func Errorw(msg string, keysAndValues ...interface{}) {
	globalLogger.Errorw(msg, keysAndValues...)
}

// Debugf uses fmt.Sprintf to log a templated message.
func Debugf(template string, args ...interface{}) {
	globalLogger.Debugf(template, args...)
}

// Infof uses fmt.Sprintf to log a templated message.
func Infof(template string, args ...interface{}) {
	globalLogger.Infof(template, args...)
}

// Sync flushes any buffered log entries.
func Sync() error {
	return globalLogger.Sync()
}

// With returns the global logger with args added, for direct use like C.
func With(args ...interface{}) *zap.SugaredLogger {
	return contextLogger.With(args...)
}
