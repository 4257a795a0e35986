package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Unambiguous uppercase alphabet: codes end up in emails and get typed back.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateCode returns a random code of n characters, used for public user
// IDs, confirmation codes, and property unique IDs.
func GenerateCode(n int) (string, error) {
	buf := make([]byte, n)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generating code: %w", err)
		}
		buf[i] = codeAlphabet[idx.Int64()]
	}
	return string(buf), nil
}
