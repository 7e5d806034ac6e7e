// Package base62 encodes unsigned integers using the 62 alphanumeric ASCII
// characters (0-9A-Za-z), big-endian, without padding.
//
// The package exists to keep token timestamps compact: a unix timestamp fits
// in 6 base62 digits instead of 10 decimal ones. It is not a general binary
// codec; it operates on uint64 values only.
//
// # Usage
//
//	import "github.com/dmitrymomot/signedtoken/pkg/base62"
//
//	s := base62.Encode(1704067200) // "1rK5iq"
//	n, err := base62.Decode(s)
//	if err != nil {
//	    log.Fatal(err)
//	}
package base62
