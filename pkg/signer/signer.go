package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"
)

const (
	// DefaultSalt namespaces signing keys when the caller does not supply a
	// salt of their own. Tokens signed under different salts never verify
	// against each other, even with the same secret.
	DefaultSalt = "signedtoken"

	// keyDerivationSuffix is appended to the salt before key derivation so a
	// signing key can never double as a derivation input elsewhere.
	keyDerivationSuffix = "signer"

	// separator joins the value, timestamp, and signature segments. Base64
	// URL-safe output never contains it, so splitting on the last separator
	// is unambiguous.
	separator = ":"
)

// encoding is the token alphabet: URL-safe base64, no padding, strict about
// trailing bits so every signature has exactly one valid text form.
var encoding = base64.RawURLEncoding.Strict()

// Signer signs and verifies arbitrary byte strings with HMAC-SHA256.
//
// The signing key is derived once per Signer as
// HMAC-SHA256(key=secret, msg=salt||"signer"), scoping it to the salt's
// purpose. The derived key never leaves the struct.
type Signer struct {
	key []byte
}

// New creates a Signer for the given secret and salt. An empty salt falls
// back to DefaultSalt. No I/O is performed and the secret is not retained.
func New(secret, salt []byte) *Signer {
	return &Signer{key: deriveKey(secret, salt)}
}

func deriveKey(secret, salt []byte) []byte {
	if len(salt) == 0 {
		salt = []byte(DefaultSalt)
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(salt)
	mac.Write([]byte(keyDerivationSuffix))
	return mac.Sum(nil)
}

func (s *Signer) signature(value []byte) []byte {
	mac := hmac.New(sha256.New, s.key)
	mac.Write(value)
	return mac.Sum(nil)
}

// Sign returns value followed by ":" and its base64url-encoded signature.
// The value must already be string-safe; binary payloads are expected to be
// base64-encoded by the caller (see Dumps).
func (s *Signer) Sign(value []byte) string {
	return string(value) + separator + encoding.EncodeToString(s.signature(value))
}

// Unsign splits signed on the last ":" and verifies the trailing signature
// over everything before it. Returns the verified value.
//
// All failure modes (missing separator, malformed signature, mismatch)
// report ErrInvalidSignature through the same code path, and the comparison
// is constant-time, so the error reveals nothing about why verification
// failed.
func (s *Signer) Unsign(signed string) ([]byte, error) {
	i := strings.LastIndex(signed, separator)
	if i < 0 {
		return nil, ErrInvalidSignature
	}
	value, sig := signed[:i], signed[i+1:]

	decoded, err := encoding.DecodeString(sig)
	expected := s.signature([]byte(value))
	if err != nil || subtle.ConstantTimeCompare(decoded, expected) != 1 {
		return nil, ErrInvalidSignature
	}
	return []byte(value), nil
}
