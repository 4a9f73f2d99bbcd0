package results

import (
	"crypto/rand"
	"fmt"
)

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// TokenLength is the fixed length of a public result id.
const TokenLength = 8

// NewToken returns an 8-character alphanumeric id from a
// cryptographically strong source. Tokens are the only access control
// for shared results, so they must not be guessable.
func NewToken() (string, error) {
	buf := make([]byte, TokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = tokenAlphabet[int(b)%len(tokenAlphabet)]
	}
	return string(buf), nil
}
