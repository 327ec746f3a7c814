package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Upper bounds accepted from a parsed hash. Memory is in KiB, so 4 GiB.
const (
	maxHashMemory    = 1 << 22
	maxHashKeyLength = 1024
)

var (
	ErrInvalidHashFormat   = errors.New("invalid encoded hash format")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)

// HashParams configures Argon2id.
type HashParams struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultHashParams returns the recommended Argon2id parameters.
func DefaultHashParams() HashParams {
	return HashParams{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// PHCHash is a decoded Argon2id hash string.
type PHCHash struct {
	Params HashParams
	Salt   []byte
	Key    []byte
}

// String encodes h as $argon2id$v=19$m=65536,t=3,p=2$<salt>$<key>.
func (h PHCHash) String() string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.Params.Memory,
		h.Params.Iterations,
		h.Params.Parallelism,
		base64.RawStdEncoding.EncodeToString(h.Salt),
		base64.RawStdEncoding.EncodeToString(h.Key),
	)
}

// HashPassword hashes a generated password with Argon2id so it can be handed
// to a system that stores PHC strings.
func HashPassword(password string) (string, error) {
	params := DefaultHashParams()

	salt := make([]byte, params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	h := PHCHash{
		Params: params,
		Salt:   salt,
		Key:    deriveKey(password, salt, params),
	}
	return h.String(), nil
}

// VerifyPassword reports whether password matches encodedHash.
// The comparison is constant-time.
func VerifyPassword(password, encodedHash string) (bool, error) {
	h, err := ParsePHC(encodedHash)
	if err != nil {
		return false, err
	}

	candidate := deriveKey(password, h.Salt, h.Params)
	return subtle.ConstantTimeCompare(h.Key, candidate) == 1, nil
}

// ParsePHC decodes an Argon2id PHC string. Parameters that argon2 would
// reject, or that would need more than 4 GiB of memory, are an
// ErrInvalidHashFormat.
func ParsePHC(encodedHash string) (PHCHash, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return PHCHash{}, ErrInvalidHashFormat
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return PHCHash{}, ErrInvalidHashFormat
	}
	if version != argon2.Version {
		return PHCHash{}, ErrIncompatibleVersion
	}

	var h PHCHash
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &h.Params.Memory, &h.Params.Iterations, &h.Params.Parallelism); err != nil {
		return PHCHash{}, ErrInvalidHashFormat
	}

	var err error
	if h.Salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return PHCHash{}, ErrInvalidHashFormat
	}
	if h.Key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil || len(h.Key) == 0 {
		return PHCHash{}, ErrInvalidHashFormat
	}
	h.Params.SaltLength = uint32(len(h.Salt))
	h.Params.KeyLength = uint32(len(h.Key))

	if err := h.Params.validate(); err != nil {
		return PHCHash{}, err
	}
	return h, nil
}

func (p HashParams) validate() error {
	switch {
	case p.Iterations < 1, p.Parallelism < 1:
		return ErrInvalidHashFormat
	case p.Memory < 8*uint32(p.Parallelism), p.Memory > maxHashMemory:
		return ErrInvalidHashFormat
	case p.KeyLength > maxHashKeyLength:
		return ErrInvalidHashFormat
	}
	return nil
}

func deriveKey(password string, salt []byte, p HashParams) []byte {
	return argon2.IDKey([]byte(password), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)
}
