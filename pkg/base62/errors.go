package base62

import "errors"

var (
	ErrEmptyInput       = errors.New("base62.empty_input")
	ErrInvalidCharacter = errors.New("base62.invalid_character")
	ErrOverflow         = errors.New("base62.overflow")
)
