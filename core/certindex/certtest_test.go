package certindex_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/certresolve/core/certindex"
)

// mintCertPEM creates a self-signed certificate covering the given SANs.
func mintCertPEM(t *testing.T, sans []string, notBefore time.Time) []byte {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(time.Now().UnixNano()),
		Subject:      pkix.Name{CommonName: sans[0]},
		NotBefore:    notBefore,
		NotAfter:     notBefore.Add(90 * 24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		DNSNames:     sans,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}

// writeBundle stores data as a bundle's fullchain.pem and pins its mtime.
func writeBundle(t *testing.T, baseDir, bundleID string, data []byte, mtime time.Time) {
	t.Helper()

	dir := filepath.Join(baseDir, bundleID)
	require.NoError(t, os.MkdirAll(dir, 0700))

	path := filepath.Join(dir, "fullchain.pem")
	require.NoError(t, os.WriteFile(path, data, 0600))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

// funcParser lets tests script extraction results per file content.
type funcParser struct {
	sansFn func(data []byte) []certindex.Pattern
	nbFn   func(data []byte) (time.Time, bool)
}

func (p funcParser) ExtractSANs(data []byte) []certindex.Pattern {
	if p.sansFn == nil {
		return nil
	}
	return p.sansFn(data)
}

func (p funcParser) ExtractNotBefore(data []byte) (time.Time, bool) {
	if p.nbFn == nil {
		return time.Time{}, false
	}
	return p.nbFn(data)
}

// countingParser wraps another parser and counts SAN extractions, so tests can
// observe whether a resolution triggered a rebuild.
type countingParser struct {
	inner certindex.Parser
	calls atomic.Int32
}

func (p *countingParser) ExtractSANs(data []byte) []certindex.Pattern {
	p.calls.Add(1)
	return p.inner.ExtractSANs(data)
}

func (p *countingParser) ExtractNotBefore(data []byte) (time.Time, bool) {
	return p.inner.ExtractNotBefore(data)
}
