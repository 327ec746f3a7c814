package service

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/estimate"
	"github.com/vaultpass/passgen-go/internal/model"
)

// MaxAnalyzeLength is the longest password, in characters, Analyze accepts.
const MaxAnalyzeLength = 1024

var ErrPasswordTooLong = errors.New("password is longer than 1024 characters")

// Analyze estimates the brute-force time of an existing password. The pool
// is every category the password draws from, plus one slot for each distinct
// character that belongs to no category.
func (s *GeneratorService) Analyze(req model.AnalyzeRequest) (model.AnalyzeResponse, error) {
	if req.Password == "" {
		return model.AnalyzeResponse{}, ErrPasswordRequired
	}
	length := utf8.RuneCountInString(req.Password)
	if length > MaxAnalyzeLength {
		return model.AnalyzeResponse{}, ErrPasswordTooLong
	}

	present := make(map[crypto.Category]bool)
	others := make(map[rune]struct{})
	for _, r := range req.Password {
		cat, ok := categoryOf(r)
		if !ok {
			others[r] = struct{}{}
			continue
		}
		present[cat] = true
	}

	resp := model.AnalyzeResponse{
		Length:     length,
		Categories: []string{},
		OtherChars: len(others),
	}
	for _, cat := range crypto.Categories() {
		if present[cat] {
			resp.Categories = append(resp.Categories, cat.String())
			resp.CharsetSize += len(cat.Chars())
		}
	}
	resp.CharsetSize += len(others)
	resp.Estimate = toCrackEstimate(estimate.New(resp.CharsetSize, resp.Length))

	return resp, nil
}

// Verify checks a password against an Argon2id PHC string.
func (s *GeneratorService) Verify(req model.VerifyRequest) (model.VerifyResponse, error) {
	if req.Password == "" {
		return model.VerifyResponse{}, ErrPasswordRequired
	}
	if req.Hash == "" {
		return model.VerifyResponse{}, ErrHashRequired
	}

	match, err := crypto.VerifyPassword(req.Password, req.Hash)
	if err != nil {
		return model.VerifyResponse{}, err
	}
	return model.VerifyResponse{Match: match}, nil
}

func categoryOf(r rune) (crypto.Category, bool) {
	for _, cat := range crypto.Categories() {
		if strings.ContainsRune(cat.Chars(), r) {
			return cat, true
		}
	}
	return 0, false
}
