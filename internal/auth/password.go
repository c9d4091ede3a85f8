package auth

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/mdobak/go-xerrors"
	"golang.org/x/crypto/sha3"
)

const saltLength = 16

// GenerateSalt returns a fresh random salt, hex encoded.
func GenerateSalt() (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", xerrors.New(err)
	}
	return hex.EncodeToString(salt), nil
}

// HashPassword derives the stored password digest: SHA3-512 over the
// password concatenated with the salt, hex encoded. Deterministic, so a
// login check recomputes it from the stored salt and compares.
func HashPassword(password, salt string) string {
	digest := sha3.Sum512([]byte(password + salt))
	return hex.EncodeToString(digest[:])
}
