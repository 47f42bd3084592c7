package certindex

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// certFile is one bundle's certificate file as found on disk.
type certFile struct {
	bundleID string
	path     string
	mtime    time.Time
	size     int64
}

// scanCertFiles enumerates one certificate file per immediate subdirectory of
// basePath, trying the candidate names in preference order. A missing or
// unreadable base path yields an empty store, not an error; only unexpected
// filesystem failures surface.
func scanCertFiles(basePath string, names []string) ([]certFile, error) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan certificate directory %s: %w", basePath, err)
	}

	var files []certFile
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		for _, name := range names {
			path := filepath.Join(basePath, entry.Name(), name)
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			files = append(files, certFile{
				bundleID: entry.Name(),
				path:     path,
				mtime:    info.ModTime(),
				size:     info.Size(),
			})
			break
		}
	}

	// Stable order makes the snapshot fingerprint order-independent of ReadDir.
	sort.Slice(files, func(i, j int) bool { return files[i].path < files[j].path })
	return files, nil
}
