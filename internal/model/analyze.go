package model

// AnalyzeRequest represents a request to estimate an existing password.
type AnalyzeRequest struct {
	Password string `json:"password"`
}

// AnalyzeResponse describes the pool an attacker must assume for a password.
type AnalyzeResponse struct {
	Length      int           `json:"length"`
	Categories  []string      `json:"categories"`
	OtherChars  int           `json:"other_chars"`
	CharsetSize int           `json:"charset_size"`
	Estimate    CrackEstimate `json:"estimate"`
}

// VerifyRequest represents a check of a password against an Argon2id hash.
type VerifyRequest struct {
	Password string `json:"password"`
	Hash     string `json:"hash"`
}

// VerifyResponse reports whether the password matched.
type VerifyResponse struct {
	Match bool `json:"match"`
}
