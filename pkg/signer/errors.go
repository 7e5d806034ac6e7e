package signer

import "errors"

var (
	ErrNoSecret              = errors.New("signer.no_secret")
	ErrInvalidSignature      = errors.New("signer.invalid_signature")
	ErrInvalidTimestamp      = errors.New("signer.invalid_timestamp")
	ErrExpired               = errors.New("signer.signature_expired")
	ErrInvalidEncoding       = errors.New("signer.invalid_encoding")
	ErrDecompressionFailed   = errors.New("signer.decompression_failed")
	ErrDeserializationFailed = errors.New("signer.deserialization_failed")
)
