package base62

import "math"

// alphabet follows the conventional 0-9A-Za-z digit order, big-endian,
// so encoded values sort roughly chronologically when used for timestamps.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const base = uint64(len(alphabet))

// digits maps an ASCII byte to its base62 value, or -1 when the byte is
// outside the alphabet.
var digits = func() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		table[alphabet[i]] = int8(i)
	}
	return table
}()

// Encode returns the base62 representation of n without padding.
// Zero encodes as "0".
func Encode(n uint64) string {
	if n == 0 {
		return "0"
	}

	// 11 digits cover the full uint64 range
	var buf [11]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = alphabet[n%base]
		n /= base
	}
	return string(buf[i:])
}

// Decode parses a big-endian base62 string into a uint64.
// Returns ErrEmptyInput for an empty string, ErrInvalidCharacter for bytes
// outside the alphabet, and ErrOverflow when the value exceeds uint64.
func Decode(s string) (uint64, error) {
	if s == "" {
		return 0, ErrEmptyInput
	}

	var n uint64
	for i := 0; i < len(s); i++ {
		d := digits[s[i]]
		if d < 0 {
			return 0, ErrInvalidCharacter
		}
		if n > (math.MaxUint64-uint64(d))/base {
			return 0, ErrOverflow
		}
		n = n*base + uint64(d)
	}
	return n, nil
}
