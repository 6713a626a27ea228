package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
)

// GenerateSalt returns a fresh random hex string of the given length.
func GenerateSalt(length int) (string, error) {
	buf := make([]byte, (length+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf)[:length], nil
}

// HashPassword computes the HMAC-SHA512 digest of the password keyed by the
// salt. Deterministic: login recomputes it with the stored salt and compares.
func HashPassword(password, salt string) string {
	mac := hmac.New(sha512.New, []byte(salt))
	mac.Write([]byte(password))
	return hex.EncodeToString(mac.Sum(nil))
}
