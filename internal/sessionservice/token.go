package sessionservice

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
)

var tokenEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// tokenLength is the encoded length of 16 random bytes.
const tokenLength = 26

func newToken() (string, error) {
	randomBytes := make([]byte, 16)
	_, err := rand.Read(randomBytes)
	if err != nil {
		return "", err
	}

	return tokenEncoding.EncodeToString(randomBytes), nil
}

// Only the hash of a token is ever used as a storage key.
func hashToken(token string) []byte {
	hash := sha256.Sum256([]byte(token))
	return hash[:]
}

func validToken(token string) bool {
	if len(token) != tokenLength {
		return false
	}

	_, err := tokenEncoding.DecodeString(token)
	return err == nil
}
