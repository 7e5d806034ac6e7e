// Package signer produces and verifies compact, URL-safe signed tokens that
// carry a JSON payload, a signing timestamp, and an HMAC-SHA256 signature.
//
// Tokens let a service hand a client an opaque string (password-reset link,
// email confirmation, session marker) and later confirm, with no server-side
// storage, that the payload was not altered and has not expired.
//
// Token format:
//
//	base64url(payload):base62(unix_timestamp):base64url(hmac_sha256)
//
// The payload is the JSON encoding of the value, optionally zlib-compressed
// when compression makes it smaller (a leading '.' byte marks the compressed
// form). Base64 uses the URL-safe alphabet without padding. The signature
// covers everything before the last ':'.
//
// The signing key is derived per purpose: HMAC-SHA256(secret, salt+"signer").
// Tokens signed under one salt never verify under another, so each feature
// (password reset, invites, unsubscribe links) should pick its own salt.
//
// # Usage
//
//	import "github.com/dmitrymomot/signedtoken/pkg/signer"
//
//	type Reset struct {
//	    UserID string `json:"uid"`
//	    Email  string `json:"email"`
//	}
//
//	secret := []byte("my-very-strong-secret")
//	salt := []byte("password-reset")
//
//	tok, err := signer.Dumps(Reset{"42", "a@b.co"}, secret, salt, true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r, err := signer.Loads[Reset](tok, secret, salt, time.Hour)
//	if err != nil {
//	    log.Fatal(err) // ErrInvalidSignature, ErrExpired, ...
//	}
//
// Signer and TimestampSigner expose the lower-level sign/unsign operations
// over raw string-safe byte values for callers that manage their own
// payload encoding.
//
// All operations are pure functions of their inputs and the clock; the
// package holds no shared mutable state and is safe for concurrent use.
// Verification uses a constant-time comparison, and every signature failure
// mode returns the same ErrInvalidSignature.
package signer
