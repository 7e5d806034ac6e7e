package signer

import (
	"bytes"
	"math"
	"time"

	"github.com/dmitrymomot/signedtoken/pkg/base62"
)

// TimestampSigner extends Signer with an embedded signing time, letting
// verification enforce a maximum token age without server-side state.
//
// Signed format: <value>:<base62(unix_seconds)>:<signature>. The signature
// covers both the value and the timestamp, so neither can be altered.
type TimestampSigner struct {
	signer *Signer
	now    func() time.Time
}

// NewTimestamp creates a TimestampSigner for the given secret and salt.
// An empty salt falls back to DefaultSalt.
func NewTimestamp(secret, salt []byte, opts ...Option) *TimestampSigner {
	s := &TimestampSigner{
		signer: New(secret, salt),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sign appends the current unix time in base62 to value and signs the pair.
// The value must be string-safe, as with Signer.Sign.
func (s *TimestampSigner) Sign(value []byte) string {
	timestamp := base62.Encode(uint64(s.now().Unix()))
	return s.signer.Sign([]byte(string(value) + separator + timestamp))
}

// Unsign verifies the signature, then the embedded timestamp against maxAge.
// Timestamp resolution is whole seconds; a maxAge of zero or less accepts a
// token only within the second it was signed.
//
// Returns ErrInvalidSignature on any signature failure, ErrInvalidTimestamp
// when the timestamp segment is missing or not base62, and ErrExpired when
// the token is older than maxAge.
func (s *TimestampSigner) Unsign(signed string, maxAge time.Duration) ([]byte, error) {
	inner, err := s.signer.Unsign(signed)
	if err != nil {
		return nil, err
	}

	i := bytes.LastIndex(inner, []byte(separator))
	if i < 0 {
		return nil, ErrInvalidTimestamp
	}
	value, timestamp := inner[:i], string(inner[i+1:])

	ts, err := base62.Decode(timestamp)
	if err != nil || ts > math.MaxInt64 {
		return nil, ErrInvalidTimestamp
	}

	// Whole-second arithmetic: sub-second fractions of maxAge do not count.
	limit := int64(maxAge / time.Second)
	if limit < 0 {
		limit = 0
	}
	elapsed := s.now().Unix() - int64(ts)
	if elapsed > limit {
		return nil, ErrExpired
	}
	return value, nil
}
