package signer

import (
	"encoding/json"
	"errors"
	"time"
)

// Dumps serializes value to JSON, optionally compresses it when that makes
// the payload smaller, base64url-encodes it, and signs the result with an
// embedded timestamp. The returned token is safe for URLs, headers, and
// cookies.
//
// JSON struct fields are emitted in declaration order, so the same value
// always produces the same payload bytes. A JSON payload never begins with
// the compression marker, which keeps the marked and unmarked forms
// distinguishable.
func Dumps[T any](value T, secret, salt []byte, compress bool, opts ...Option) (string, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	if compress {
		payload = deflate(payload)
	}

	encoded := encoding.EncodeToString(payload)
	return NewTimestamp(secret, salt, opts...).Sign([]byte(encoded)), nil
}

// Loads verifies token and decodes its payload into T, reversing Dumps
// stage by stage. Each stage surfaces its own error: ErrInvalidSignature,
// ErrInvalidTimestamp, or ErrExpired from verification, ErrInvalidEncoding
// from base64, ErrDecompressionFailed from an invalid zlib stream, and
// ErrDeserializationFailed from JSON.
func Loads[T any](token string, secret, salt []byte, maxAge time.Duration, opts ...Option) (T, error) {
	var value T

	encoded, err := NewTimestamp(secret, salt, opts...).Unsign(token, maxAge)
	if err != nil {
		return value, err
	}

	payload, err := encoding.DecodeString(string(encoded))
	if err != nil {
		return value, errors.Join(ErrInvalidEncoding, err)
	}

	raw, err := inflate(payload)
	if err != nil {
		return value, err
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		return value, errors.Join(ErrDeserializationFailed, err)
	}
	return value, nil
}
