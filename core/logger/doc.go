// Package logger provides attribute helpers for the standard log/slog package.
//
// The helpers follow the empty Attr pattern: passing a nil error to Error
// produces an attribute that slog drops silently, so call sites never need
// nil checks:
//
//	log.Warn("certificate parse failed",
//		logger.Component("certindex"),
//		logger.Error(err),
//	)
package logger
