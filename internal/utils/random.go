package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// RandomToken returns a URL-safe random string carrying byteLen bytes of
// entropy. The encoded form is longer than byteLen.
func RandomToken(byteLen int) string {
	b := make([]byte, byteLen)
	rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

// GeneratePassword returns a random password for provisioned accounts.
// 24 bytes encode to 32 characters. The password is never shown to the
// user; provisioned accounts authenticate through the social login.
func GeneratePassword() string {
	return RandomToken(24)
}
