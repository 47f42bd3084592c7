package certstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Conventional file names inside a bundle directory. The resolver picks the
// certificate to index from these; callers wiring proxy configuration use the
// full set.
const (
	// CertFileName holds the leaf certificate.
	CertFileName = "cert.pem"
	// KeyFileName holds the private key.
	KeyFileName = "key.pem"
	// ChainFileName holds the leaf certificate concatenated with its issuer chain.
	ChainFileName = "fullchain.pem"
)

// CandidateCertFiles returns the file names, in preference order, that may hold
// a bundle's certificate. The chain file is preferred because its leaf is
// identical to the bare certificate and it is what proxies are pointed at.
func CandidateCertFiles() []string {
	return []string{ChainFileName, CertFileName}
}

// BundlePaths maps a bundle id to the conventional file locations inside it.
type BundlePaths struct {
	Cert  string
	Key   string
	Chain string
}

// Bundle holds the raw contents of one issuance.
type Bundle struct {
	Cert  []byte
	Key   []byte
	Chain []byte
}

// Store provides access to certificate bundles laid out as one subdirectory
// per issuance under a base directory.
type Store struct {
	dir string
}

// New creates a bundle store rooted at dir, creating it if necessary.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, ErrStoreDirRequired
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create bundle directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's base directory.
func (s *Store) Dir() string {
	return s.dir
}

// Paths returns the conventional file locations for a bundle id.
func (s *Store) Paths(bundleID string) BundlePaths {
	base := filepath.Join(s.dir, bundleID)
	return BundlePaths{
		Cert:  filepath.Join(base, CertFileName),
		Key:   filepath.Join(base, KeyFileName),
		Chain: filepath.Join(base, ChainFileName),
	}
}

// List returns all bundle ids (subdirectory names) in the store.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list bundles: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			ids = append(ids, entry.Name())
		}
	}
	return ids, nil
}

// Exists checks if a bundle directory exists for the id.
func (s *Store) Exists(bundleID string) bool {
	if err := validateBundleID(bundleID); err != nil {
		return false
	}
	info, err := os.Stat(filepath.Join(s.dir, bundleID))
	return err == nil && info.IsDir()
}

// ReadCert reads the bundle's certificate, trying the candidate file names in
// preference order. Returns ErrBundleNotFound if no candidate exists.
func (s *Store) ReadCert(bundleID string) ([]byte, error) {
	if err := validateBundleID(bundleID); err != nil {
		return nil, err
	}

	for _, name := range CandidateCertFiles() {
		data, err := os.ReadFile(filepath.Join(s.dir, bundleID, name))
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read certificate for bundle %s: %w", bundleID, err)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrBundleNotFound, bundleID)
}

// Write stores a bundle under the given id. Each file is written to a temporary
// path and renamed into place, so readers never observe a partially written file.
// Empty fields are skipped.
func (s *Store) Write(bundleID string, b Bundle) error {
	if err := validateBundleID(bundleID); err != nil {
		return err
	}

	base := filepath.Join(s.dir, bundleID)
	if err := os.MkdirAll(base, 0700); err != nil {
		return fmt.Errorf("failed to create bundle %s: %w", bundleID, err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{CertFileName, b.Cert},
		{KeyFileName, b.Key},
		{ChainFileName, b.Chain},
	}

	for _, f := range files {
		if len(f.data) == 0 {
			continue
		}
		if err := writeFileAtomic(filepath.Join(base, f.name), f.data); err != nil {
			return fmt.Errorf("failed to write %s for bundle %s: %w", f.name, bundleID, err)
		}
	}
	return nil
}

// Delete removes the bundle directory for an id.
func (s *Store) Delete(bundleID string) error {
	if err := validateBundleID(bundleID); err != nil {
		return err
	}
	if err := os.RemoveAll(filepath.Join(s.dir, bundleID)); err != nil {
		return fmt.Errorf("failed to delete bundle %s: %w", bundleID, err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath) // Best effort cleanup
		return err
	}
	return nil
}

func validateBundleID(bundleID string) error {
	if bundleID == "" || bundleID != filepath.Base(bundleID) || strings.HasPrefix(bundleID, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidBundleID, bundleID)
	}
	return nil
}
