package certindex

import (
	"log/slog"
	"time"
)

// Option configures a Resolver during initialization.
type Option func(*Resolver)

// WithParser sets a custom certificate parser. Primarily useful for testing;
// by default certificates are decoded natively via X509Parser.
func WithParser(parser Parser) Option {
	return func(r *Resolver) {
		if parser != nil {
			r.parser = parser
		}
	}
}

// WithLogger sets the logger for rebuild and degradation events. By default
// logs are discarded.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// WithParseTimeout bounds the per-file extraction during a rebuild. A file
// whose parse exceeds the timeout is skipped, so a hostile or corrupted
// certificate cannot stall resolution indefinitely.
func WithParseTimeout(timeout time.Duration) Option {
	return func(r *Resolver) {
		if timeout > 0 {
			r.parseTimeout = timeout
		}
	}
}

// WithConcurrency caps how many certificate files are parsed in parallel
// during a rebuild. Defaults to the number of CPUs.
func WithConcurrency(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithCertFileNames overrides the candidate file names probed inside each
// bundle directory, in preference order. Defaults to the certstore
// conventions (fullchain.pem, then cert.pem).
func WithCertFileNames(names ...string) Option {
	return func(r *Resolver) {
		if len(names) > 0 {
			r.certNames = names
		}
	}
}
