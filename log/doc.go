// Package log provides a global zap logger and context attached loggers.
//
// The global logger is a no-op until one of the Init functions is called,
// so libraries and short lived binaries can log unconditionally without
// producing any output unless the process opted in.
//
// When a context object is available, prefer the logger attached to it:
//
//	log.C(ctx).Errorw("Something went wrong!", "err", err)
//
// Otherwise use the global one:
//
//	log.Errorw("Something went wrong!", "err", err)
package log
