package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/estimate"
	"github.com/vaultpass/passgen-go/internal/model"
)

var (
	ErrPasswordRequired = errors.New("password is required")
	ErrHashRequired     = errors.New("hash is required")
)

// GeneratorService handles password generation and estimation.
type GeneratorService struct {
	rng io.Reader
}

// NewGeneratorService creates a new GeneratorService that draws randomness
// from rng. A nil rng means crypto/rand.Reader.
func NewGeneratorService(rng io.Reader) *GeneratorService {
	if rng == nil {
		rng = rand.Reader
	}
	return &GeneratorService{rng: rng}
}

// Generate produces a password based on the given request.
// An out-of-range length is replaced by the default and reported in Warnings.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	var warnings []string

	length, ok := crypto.ResolveLength(req.Length)
	if !ok {
		msg := fmt.Sprintf("length %d is outside %d-%d, using default %d",
			req.Length, crypto.MinLength, crypto.MaxLength, crypto.DefaultLength)
		slog.Warn("password length out of range", "requested", req.Length, "using", length)
		warnings = append(warnings, msg)
	}

	opts := crypto.GeneratorOptions{
		Length:    length,
		Uppercase: req.Uppercase,
		Digits:    req.Digits,
		Special:   req.Special,
	}
	charsetSize := crypto.BuildCharset(opts).Size()

	password, err := crypto.Generate(opts, s.rng)
	if err != nil {
		return model.GenerateResponse{}, fmt.Errorf("generating password: %w", err)
	}

	resp := model.GenerateResponse{
		Password:    password,
		Length:      len(password),
		CharsetSize: charsetSize,
		Estimate:    toCrackEstimate(estimate.New(charsetSize, len(password))),
		Warnings:    warnings,
	}

	if req.Hash {
		resp.Hash, err = crypto.HashPassword(password)
		if err != nil {
			return model.GenerateResponse{}, fmt.Errorf("hashing password: %w", err)
		}
	}

	return resp, nil
}

func toCrackEstimate(e estimate.Estimate) model.CrackEstimate {
	return model.CrackEstimate{
		Keyspace:   e.Keyspace,
		AttackRate: estimate.AttackRate,
		Seconds:    e.Seconds,
		Human:      e.String(),
	}
}
