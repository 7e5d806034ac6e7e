// Package cookie provides an HTTP cookie manager whose integrity layer is
// built on timestamped signed tokens.
//
// The Manager type is the entry point. It is initialised with one or more
// secret keys and default cookie Options. Secrets feed the signer's key
// derivation; each cookie name acts as a salt, so a signed value for one
// cookie never verifies as another.
//
// Once created you can:
//
//   - Set(), Get(), Delete() – plain cookies
//   - SetSigned(), GetSigned() – signed cookies (integrity + max age)
//   - SetFlash(), GetFlash() – single-use JSON-encoded flash messages
//
// # Architecture
//
// Signed cookies carry a signer.TimestampSigner token over the base64
// encoded value, which makes them both tamper-evident and age-bounded: a
// stolen cookie stops verifying once older than the manager's MaxAge
// (defaultSignedMaxAge when unset). Flash messages travel as compressed
// Dumps/Loads tokens and are deleted after the first read.
//
// Multiple secrets support key rotation. The first secret signs new
// cookies; verification tries every secret in order, so cookies issued
// before a rotation stay readable until they expire.
//
// # Usage
//
//	import "github.com/dmitrymomot/signedtoken/pkg/cookie"
//
//	m, err := cookie.New([]string{"this-is-a-very-long-secret-key-32-chars"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m.SetSigned(w, "session", "user-42")
//	v, err := m.GetSigned(r, "session") // "user-42", or ErrInvalidSignature
package cookie
