package service

import (
	"errors"
	"regexp"
	"testing"
	"testing/iotest"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/estimate"
	"github.com/vaultpass/passgen-go/internal/model"
)

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService(nil)
	resp, err := svc.Generate(model.GenerateRequest{Length: crypto.DefaultLength})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !regexp.MustCompile(`^[a-z]{16}$`).MatchString(resp.Password) {
		t.Errorf("password %q does not match ^[a-z]{16}$", resp.Password)
	}
	if resp.CharsetSize != 26 {
		t.Errorf("expected charset size 26, got %d", resp.CharsetSize)
	}
	if want := estimate.CrackSeconds(26, 16); resp.Estimate.Seconds.Cmp(want) != 0 {
		t.Errorf("expected %s seconds, got %s", want, resp.Estimate.Seconds)
	}
	if resp.Estimate.AttackRate != estimate.AttackRate {
		t.Errorf("expected attack rate %d, got %d", estimate.AttackRate, resp.Estimate.AttackRate)
	}
	if len(resp.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", resp.Warnings)
	}
	if resp.Hash != "" {
		t.Error("expected no hash unless requested")
	}
}

func TestGenerate_AllCategories(t *testing.T) {
	svc := NewGeneratorService(nil)
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    24,
		Uppercase: true,
		Digits:    true,
		Special:   true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !regexp.MustCompile(`^[A-Za-z0-9!@#$%^&*_\-+=<>?]{24}$`).MatchString(resp.Password) {
		t.Errorf("password %q does not match the full charset", resp.Password)
	}
	if resp.CharsetSize != 77 {
		t.Errorf("expected charset size 77, got %d", resp.CharsetSize)
	}

	baseline, err := svc.Generate(model.GenerateRequest{Length: 16})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Estimate.Seconds.Cmp(baseline.Estimate.Seconds) <= 0 {
		t.Errorf("expected %s to exceed lowercase-only %s", resp.Estimate.Seconds, baseline.Estimate.Seconds)
	}
}

func TestGenerate_OutOfRangeLength(t *testing.T) {
	svc := NewGeneratorService(nil)

	for _, length := range []int{0, 7, 129, -5, 1000} {
		resp, err := svc.Generate(model.GenerateRequest{Length: length})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Length != crypto.DefaultLength || len(resp.Password) != crypto.DefaultLength {
			t.Errorf("length %d: expected fallback to %d, got %d", length, crypto.DefaultLength, resp.Length)
		}
		if len(resp.Warnings) != 1 {
			t.Errorf("length %d: expected one warning, got %v", length, resp.Warnings)
		}
	}
}

func TestGenerate_Hash(t *testing.T) {
	svc := NewGeneratorService(nil)
	resp, err := svc.Generate(model.GenerateRequest{Length: 12, Hash: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	match, err := crypto.VerifyPassword(resp.Password, resp.Hash)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !match {
		t.Error("expected hash to verify against the generated password")
	}
}

func TestGenerate_RandomSourceFailure(t *testing.T) {
	sourceErr := errors.New("no entropy")
	svc := NewGeneratorService(iotest.ErrReader(sourceErr))

	_, err := svc.Generate(model.GenerateRequest{Length: 16})
	if !errors.Is(err, sourceErr) {
		t.Fatalf("expected wrapped %v, got %v", sourceErr, err)
	}
}
