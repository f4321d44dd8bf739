package log

import (
	"time"

	"go.uber.org/zap/zapcore"
)

// Console lines read as "ts=... level=... caller=... message", so each
// console encoder below writes its own key.
const (
	consoleTimeLayout = "2006-01-02T15:04:05.000000Z"

	consoleTimeKey   = "ts="
	consoleLevelKey  = "level="
	consoleCallerKey = "caller="
)

// ShortCallerEncoder writes "caller=dir/file.go:line".
func ShortCallerEncoder(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(consoleCallerKey + caller.TrimmedPath())
}

// TimeEncoder writes "ts=" and the UTC time with microseconds.
func TimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(consoleTimeKey + t.UTC().Format(consoleTimeLayout))
}

// CapitalLevelEncoder writes "level=INFO", "level=ERROR" and so on.
func CapitalLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(consoleLevelKey + l.CapitalString())
}

// JSONTimeEncoder writes the bare UTC time in time.RFC3339Nano, the JSON
// encoder supplying the key.
func JSONTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(time.RFC3339Nano))
}
