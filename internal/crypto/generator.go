package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	specialChars   = "!@#$%^&*_-+=<>?"

	MinLength     = 8
	MaxLength     = 128
	DefaultLength = 16
)

var (
	ErrEmptyCharset  = errors.New("charset must not be empty")
	ErrInvalidLength = errors.New("password length must be at least 1")
)

// Category is a fixed class of characters that can make up a charset.
type Category int

const (
	Lowercase Category = iota
	Uppercase
	Digits
	Special
)

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{Lowercase, Uppercase, Digits, Special}
}

// Chars returns the characters belonging to the category.
func (c Category) Chars() string {
	switch c {
	case Lowercase:
		return lowercaseChars
	case Uppercase:
		return uppercaseChars
	case Digits:
		return digitChars
	case Special:
		return specialChars
	}
	return ""
}

func (c Category) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digits:
		return "digits"
	case Special:
		return "special"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Charset is the pool of ASCII characters a password is drawn from.
type Charset string

// Size returns the number of characters in the pool.
func (c Charset) Size() int {
	return len(c)
}

// Contains reports whether r is part of the pool.
func (c Charset) Contains(r rune) bool {
	return strings.ContainsRune(string(c), r)
}

// GeneratorOptions configures the password generator.
// Lowercase letters are always part of the charset.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Digits    bool
	Special   bool
}

// BuildCharset concatenates the enabled categories in a fixed order:
// lowercase, uppercase, special, digits.
func BuildCharset(opts GeneratorOptions) Charset {
	var sb strings.Builder
	sb.WriteString(lowercaseChars)
	if opts.Uppercase {
		sb.WriteString(uppercaseChars)
	}
	if opts.Special {
		sb.WriteString(specialChars)
	}
	if opts.Digits {
		sb.WriteString(digitChars)
	}
	return Charset(sb.String())
}

// ResolveLength returns requested if it lies within [MinLength, MaxLength].
// Any other value is replaced with DefaultLength rather than clamped to the
// nearest bound, and ok is false so the caller can warn about it.
func ResolveLength(requested int) (length int, ok bool) {
	if requested < MinLength || requested > MaxLength {
		return DefaultLength, false
	}
	return requested, true
}

// SamplePassword draws length characters from charset, each one independently
// and uniformly, reading randomness from rng. Pass crypto/rand.Reader outside
// of tests.
func SamplePassword(length int, charset Charset, rng io.Reader) (string, error) {
	if charset.Size() == 0 {
		return "", ErrEmptyCharset
	}
	if length < 1 {
		return "", ErrInvalidLength
	}

	result := make([]byte, length)
	for i := range result {
		ch, err := randChar(rng, charset)
		if err != nil {
			return "", fmt.Errorf("reading random source: %w", err)
		}
		result[i] = ch
	}

	return string(result), nil
}

// Generate builds the charset for opts and samples a password of opts.Length.
// opts.Length is used as given; resolve it first.
func Generate(opts GeneratorOptions, rng io.Reader) (string, error) {
	return SamplePassword(opts.Length, BuildCharset(opts), rng)
}

// randChar picks a random character from charset. rand.Int rejects
// out-of-range samples, so every index is equally likely.
func randChar(rng io.Reader, charset Charset) (byte, error) {
	n, err := rand.Int(rng, big.NewInt(int64(charset.Size())))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
