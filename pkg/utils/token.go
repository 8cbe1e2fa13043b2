package utils

import (
	"crypto/rand"
	"math/big"
)

const shareTokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
const shareTokenLength = 8

// NewShareToken generates a random token for anonymous gallery links.
func NewShareToken() (string, error) {
	b := make([]byte, shareTokenLength)
	max := big.NewInt(int64(len(shareTokenAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = shareTokenAlphabet[n.Int64()]
	}
	return string(b), nil
}
