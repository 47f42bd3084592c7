package certindex

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/certresolve/core/certstore"
	"github.com/dmitrymomot/certresolve/core/logger"
)

// Resolver answers "which bundle is the authoritative certificate for this
// domain". It owns the one piece of shared mutable state, the (index, snapshot)
// pair, and rebuilds it lazily whenever the on-disk certificate set changes.
type Resolver struct {
	certDir      string
	parser       Parser
	log          *slog.Logger
	parseTimeout time.Duration
	concurrency  int
	certNames    []string

	mu  sync.RWMutex
	idx *index
}

// Config holds configuration for the resolver.
type Config struct {
	// CertDir is the base directory holding one subdirectory per issuance.
	CertDir string
}

const defaultParseTimeout = 5 * time.Second

// New creates a resolver over the given certificate directory. The directory
// does not have to exist; an absent store simply resolves no domains.
func New(cfg Config, opts ...Option) (*Resolver, error) {
	if cfg.CertDir == "" {
		return nil, ErrCertDirRequired
	}

	r := &Resolver{
		certDir:      cfg.CertDir,
		parser:       X509Parser{},
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		parseTimeout: defaultParseTimeout,
		concurrency:  runtime.NumCPU(),
		certNames:    certstore.CandidateCertFiles(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Resolve returns the bundle id of the most current certificate covering
// domain, which must be a normalized (lowercase, trimmed) FQDN.
//
// Exact SAN matches strictly dominate wildcard matches regardless of issuance
// recency. Within a match class the greatest notBefore wins, falling back to
// file mtime when notBefore is unknown. Returns ErrNoCertificate when nothing
// covers the domain; callers must treat that as deployment-blocking.
func (r *Resolver) Resolve(ctx context.Context, domain string) (string, error) {
	if domain == "" || strings.ContainsAny(domain, "* /") {
		return "", fmt.Errorf("%w: %q", ErrInvalidDomain, domain)
	}

	idx, err := r.current(ctx)
	if err != nil {
		return "", err
	}

	candidates := idx.exact[domain]
	if len(candidates) == 0 {
		// A wildcard covers exactly one extra label, so the only pattern that
		// can match is "*." + everything after the domain's first label.
		if i := strings.Index(domain, "."); i > 0 && i < len(domain)-1 {
			candidates = idx.wildcard[domain[i+1:]]
		}
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoCertificate, domain)
	}

	return pickBest(candidates).BundleID, nil
}

// Refresh discards the cached index and rebuilds it from disk unconditionally.
func (r *Resolver) Refresh(ctx context.Context) error {
	files, err := scanCertFiles(r.certDir, r.certNames)
	if err != nil {
		return err
	}
	r.swap(r.buildIndex(ctx, files, takeSnapshot(files)))
	return nil
}

// current returns a fresh index, rebuilding it first if the snapshot of the
// on-disk state diverged from the one backing the cached index.
func (r *Resolver) current(ctx context.Context) (*index, error) {
	files, err := scanCertFiles(r.certDir, r.certNames)
	if err != nil {
		return nil, err
	}
	snap := takeSnapshot(files)

	r.mu.RLock()
	idx := r.idx
	r.mu.RUnlock()
	if idx != nil && idx.snapshot.Equal(snap) {
		return idx, nil
	}

	start := time.Now()
	idx = r.buildIndex(ctx, files, snap)
	r.swap(idx)

	r.log.Debug("certificate index rebuilt",
		logger.Component("certindex"),
		slog.Int("files", len(files)),
		slog.Int("exact_patterns", len(idx.exact)),
		slog.Int("wildcard_patterns", len(idx.wildcard)),
		logger.Duration(time.Since(start)),
	)
	return idx, nil
}

// swap publishes a fully built index. Concurrent readers see either the old
// or the new index, never a partial one.
func (r *Resolver) swap(idx *index) {
	r.mu.Lock()
	r.idx = idx
	r.mu.Unlock()
}
