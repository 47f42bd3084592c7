package certindex

import (
	"crypto/x509"
	"time"

	"github.com/go-acme/lego/v4/certcrypto"
)

// Parser extracts the two certificate fields the resolver cares about from raw
// file bytes. Implementations must treat malformed input as absence: an empty
// pattern set or an unknown validity start, never an error. A failed file
// degrades that one record, it does not poison the index.
type Parser interface {
	// ExtractSANs returns the domain patterns the certificate covers.
	ExtractSANs(data []byte) []Pattern

	// ExtractNotBefore returns the certificate's validity start and whether
	// it could be read.
	ExtractNotBefore(data []byte) (time.Time, bool)
}

// X509Parser decodes certificates natively. PEM bundles are parsed with
// lego's certcrypto (leaf first), with a raw DER fallback for bare
// certificate files.
type X509Parser struct{}

// ExtractSANs implements Parser.
func (p X509Parser) ExtractSANs(data []byte) []Pattern {
	leaf := p.leaf(data)
	if leaf == nil {
		return nil
	}

	seen := make(map[Pattern]struct{}, len(leaf.DNSNames))
	patterns := make([]Pattern, 0, len(leaf.DNSNames))
	for _, name := range leaf.DNSNames {
		pattern, ok := ParsePattern(name)
		if !ok {
			continue
		}
		if _, dup := seen[pattern]; dup {
			continue
		}
		seen[pattern] = struct{}{}
		patterns = append(patterns, pattern)
	}
	return patterns
}

// ExtractNotBefore implements Parser.
func (p X509Parser) ExtractNotBefore(data []byte) (time.Time, bool) {
	leaf := p.leaf(data)
	if leaf == nil {
		return time.Time{}, false
	}
	return leaf.NotBefore, true
}

func (X509Parser) leaf(data []byte) *x509.Certificate {
	if certs, err := certcrypto.ParsePEMBundle(data); err == nil && len(certs) > 0 {
		return certs[0]
	}
	if cert, err := x509.ParseCertificate(data); err == nil {
		return cert
	}
	return nil
}
