package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// PKCE is a proof key for code exchange (RFC 7636) pair.
type PKCE struct {
	Verifier  string
	Challenge string
}

// ChallengeMethod is the only method the client uses.
const ChallengeMethod = "s256"

// NewPKCE returns a fresh verifier and its S256 challenge.
func NewPKCE() (PKCE, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return PKCE{}, fmt.Errorf("generate pkce verifier: %w", err)
	}

	verifier := base64.RawURLEncoding.EncodeToString(buf)
	return PKCE{Verifier: verifier, Challenge: PKCEChallenge(verifier)}, nil
}

// PKCEChallenge derives the S256 challenge of verifier.
func PKCEChallenge(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
