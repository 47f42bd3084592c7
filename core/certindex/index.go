package certindex

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/certresolve/core/logger"
	"github.com/dmitrymomot/certresolve/pkg/async"
)

// index maps domain patterns to candidate records. It is built locally and
// published atomically together with the snapshot it was built from; readers
// never observe a partially populated index.
type index struct {
	exact    map[string][]Record
	wildcard map[string][]Record // keyed by the suffix after "*."
	snapshot Snapshot
}

func newIndex(snap Snapshot) *index {
	return &index{
		exact:    make(map[string][]Record),
		wildcard: make(map[string][]Record),
		snapshot: snap,
	}
}

// parseResult carries one file's extraction output back to the builder.
type parseResult struct {
	file      certFile
	patterns  []Pattern
	notBefore time.Time
}

// buildIndex parses every scanned file and assembles a fresh index. Extraction
// runs in parallel futures, each bounded by the parse timeout, since files are
// independent and read-only. A file that fails or times out is skipped; it
// degrades that record only, never the rebuild.
func (r *Resolver) buildIndex(ctx context.Context, files []certFile, snap Snapshot) *index {
	idx := newIndex(snap)
	if len(files) == 0 {
		return idx
	}

	sem := make(chan struct{}, r.concurrency)
	futures := make([]*async.Future[parseResult], len(files))
	for i, file := range files {
		futures[i] = async.Async(ctx, file, func(ctx context.Context, f certFile) (parseResult, error) {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return parseResult{}, ctx.Err()
			}

			data, err := os.ReadFile(f.path)
			if err != nil {
				return parseResult{}, fmt.Errorf("failed to read certificate file: %w", err)
			}

			res := parseResult{file: f, patterns: r.parser.ExtractSANs(data)}
			if notBefore, ok := r.parser.ExtractNotBefore(data); ok {
				res.notBefore = notBefore
			}
			return res, nil
		})
	}

	for i, future := range futures {
		res, err := future.AwaitWithTimeout(r.parseTimeout)
		if err != nil {
			r.log.Warn("skipping certificate file",
				logger.Component("certindex"),
				slog.String("path", files[i].path),
				logger.Error(err),
			)
			continue
		}
		if len(res.patterns) == 0 {
			r.log.Warn("certificate yields no domain names",
				logger.Component("certindex"),
				slog.String("path", res.file.path),
			)
			continue
		}

		rec := Record{
			BundleID:  res.file.bundleID,
			NotBefore: res.notBefore,
			MTime:     res.file.mtime,
		}
		for _, pattern := range res.patterns {
			if pattern.IsWildcard() {
				suffix := pattern.Suffix()
				idx.wildcard[suffix] = append(idx.wildcard[suffix], rec)
			} else {
				idx.exact[string(pattern)] = append(idx.exact[string(pattern)], rec)
			}
		}
	}

	return idx
}

// pickBest returns the most current record of a non-empty candidate set.
func pickBest(records []Record) Record {
	best := records[0]
	for _, rec := range records[1:] {
		if rec.moreRecent(best) {
			best = rec
		}
	}
	return best
}
