package certstore

import "errors"

var (
	// ErrStoreDirRequired is returned when the store directory is not provided.
	ErrStoreDirRequired = errors.New("bundle directory is required")

	// ErrBundleNotFound is returned when no certificate file exists for a bundle id.
	ErrBundleNotFound = errors.New("bundle not found")

	// ErrInvalidBundleID is returned for ids that do not name a direct
	// subdirectory of the store.
	ErrInvalidBundleID = errors.New("invalid bundle id")
)
