// Package certstore defines the on-disk layout of certificate bundles: one
// subdirectory per issuance under a base directory, with conventional file
// names for the certificate, private key, and full chain.
//
//	<dir>/<bundle-id>/cert.pem
//	<dir>/<bundle-id>/key.pem
//	<dir>/<bundle-id>/fullchain.pem
//
// The Store type provides listing, path mapping, and atomic writes over that
// layout. Resolution of a domain to a bundle id lives in core/certindex; this
// package only owns the file conventions.
//
// # Basic Usage
//
//	store, err := certstore.New("/var/lib/certs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	paths := store.Paths("example.com-20250812")
//	fmt.Println(paths.Chain) // /var/lib/certs/example.com-20250812/fullchain.pem
package certstore
