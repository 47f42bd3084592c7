package certindex

import "errors"

var (
	// ErrNoCertificate is returned when no bundle covers the requested domain.
	// Callers deploying proxy configuration must treat this as a hard failure:
	// silently serving without (or with the wrong) certificate is a security
	// regression.
	ErrNoCertificate = errors.New("no certificate found for domain")

	// ErrCertDirRequired is returned when the certificate directory is not
	// provided in config.
	ErrCertDirRequired = errors.New("certificate directory is required")

	// ErrInvalidDomain is returned when the requested domain is empty or not
	// a plain FQDN.
	ErrInvalidDomain = errors.New("invalid domain name")
)
