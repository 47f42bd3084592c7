// Package certindex resolves a domain name to the authoritative certificate
// bundle in a directory of issuances. Bundles are laid out one subdirectory
// per issuance (see core/certstore); each certificate's Subject Alternative
// Names decide which domains it covers.
//
// # Matching
//
// Resolution applies two match classes with strict precedence:
//
//   - Exact: the domain appears verbatim among a certificate's SANs. Once any
//     exact candidate exists, wildcards are never considered, even if a
//     wildcard certificate was issued later.
//   - Wildcard: "*.<suffix>" covers exactly one extra label. It matches
//     "api.example.com" for suffix "example.com", but never the apex
//     "example.com" and never "deep.api.example.com".
//
// Within the winning class the candidate with the greatest notBefore wins;
// when notBefore cannot be read, the file's mtime decides, and a full tie goes
// to the lexicographically greatest bundle id.
//
// # Caching
//
// The resolver keeps one (index, snapshot) pair. The snapshot fingerprints the
// scanned files' (path, mtime, size) tuples without reading contents; any
// divergence triggers a full rebuild before the next resolution. The index is
// swapped in atomically, so concurrent Resolve calls see fully-old or
// fully-new state.
//
// # Failure Semantics
//
// Malformed certificates degrade to "no domains / unknown date" and are
// logged; they never abort a rebuild. A missing base directory is an empty
// store. The only actionable error for callers is ErrNoCertificate, which
// must block deployment rather than fall back silently.
//
// # Basic Usage
//
//	resolver, err := certindex.New(certindex.Config{CertDir: "/var/lib/certs"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	bundleID, err := resolver.Resolve(ctx, "api.example.com")
//	if errors.Is(err, certindex.ErrNoCertificate) {
//		// block the deployment
//	}
package certindex
