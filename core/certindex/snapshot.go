package certindex

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is a fingerprint of the certificate store's on-disk state, derived
// from the sorted (path, mtime, size) tuples of the scanned files. Certificate
// contents are not read; the issuance workflow creates a new directory per
// issuance, so metadata changes are sufficient to detect staleness.
type Snapshot uint64

// takeSnapshot fingerprints a sorted scan result.
func takeSnapshot(files []certFile) Snapshot {
	digest := xxhash.New()
	var buf [8]byte

	for _, f := range files {
		_, _ = digest.WriteString(f.path)
		binary.LittleEndian.PutUint64(buf[:], uint64(f.mtime.UnixNano()))
		_, _ = digest.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], uint64(f.size))
		_, _ = digest.Write(buf[:])
	}

	return Snapshot(digest.Sum64())
}

// Equal reports whether two snapshots describe the same on-disk state.
func (s Snapshot) Equal(other Snapshot) bool {
	return s == other
}
