package signer

import "time"

// Option configures a TimestampSigner.
type Option func(*TimestampSigner)

// WithNowFunc replaces the clock used for signing and expiry checks.
// Intended for tests; a nil fn is ignored.
func WithNowFunc(fn func() time.Time) Option {
	return func(s *TimestampSigner) {
		if fn != nil {
			s.now = fn
		}
	}
}
