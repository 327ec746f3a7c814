package model

import "math/big"

// GenerateRequest represents a password generation request.
// Length is validated by the service; zero or out-of-range values fall back
// to the default length.
type GenerateRequest struct {
	Length    int  `json:"length"`
	Uppercase bool `json:"uppercase"`
	Digits    bool `json:"digits"`
	Special   bool `json:"special"`
	Hash      bool `json:"hash"`
}

// GenerateResponse represents a generated password and its crack estimate.
type GenerateResponse struct {
	Password    string        `json:"password"`
	Length      int           `json:"length"`
	CharsetSize int           `json:"charset_size"`
	Estimate    CrackEstimate `json:"estimate"`
	Hash        string        `json:"hash,omitempty"`
	Warnings    []string      `json:"warnings,omitempty"`
}

// CrackEstimate is the brute-force time for a keyspace at a fixed attack rate.
type CrackEstimate struct {
	Keyspace   *big.Int `json:"keyspace"`
	AttackRate int      `json:"attack_rate"`
	Seconds    *big.Int `json:"seconds"`
	Human      string   `json:"human"`
}
