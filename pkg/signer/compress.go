package signer

import (
	"bytes"
	"compress/zlib"
	"errors"
	"io"
)

// compressionMarker prefixes a payload whose remainder is a zlib stream.
// It sits inside the base64-encoded payload, making the wire format
// self-describing: no marker, no decompression.
const compressionMarker byte = '.'

// deflate compresses data and keeps the result only if it is strictly
// smaller than the input, marker byte included. Returns the input unchanged
// otherwise, so callers always get the shorter of the two candidates.
func deflate(data []byte) []byte {
	var buf bytes.Buffer
	buf.WriteByte(compressionMarker)
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return data
	}
	if err := zw.Close(); err != nil {
		return data
	}
	if buf.Len() < len(data) {
		return buf.Bytes()
	}
	return data
}

// inflate reverses deflate: data without the leading marker passes through
// untouched; marked data is zlib-decompressed, failing with
// ErrDecompressionFailed on an invalid stream.
func inflate(data []byte) ([]byte, error) {
	if len(data) == 0 || data[0] != compressionMarker {
		return data, nil
	}

	zr, err := zlib.NewReader(bytes.NewReader(data[1:]))
	if err != nil {
		return nil, errors.Join(ErrDecompressionFailed, err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, errors.Join(ErrDecompressionFailed, err)
	}
	return raw, nil
}
