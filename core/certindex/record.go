package certindex

import "time"

// Record is one certificate bundle's candidacy for a domain pattern.
// Records are immutable once built and replaced wholesale on re-scan.
type Record struct {
	// BundleID names the bundle subdirectory the certificate came from.
	BundleID string

	// NotBefore is the certificate's validity start. Zero means the value
	// could not be read from the certificate.
	NotBefore time.Time

	// MTime is the certificate file's modification time, used as a recency
	// fallback when NotBefore is unknown.
	MTime time.Time
}

// moreRecent reports whether r should be preferred over other within the same
// match class. NotBefore dominates when known for either side (a known start
// beats an unknown one); otherwise the file mtime decides. Full ties fall back
// to the lexicographically greatest bundle id, which keeps resolution
// deterministic and favors later-sorting issuance directories.
func (r Record) moreRecent(other Record) bool {
	if !r.NotBefore.Equal(other.NotBefore) {
		return r.NotBefore.After(other.NotBefore)
	}
	if !r.MTime.Equal(other.MTime) {
		return r.MTime.After(other.MTime)
	}
	return r.BundleID > other.BundleID
}
