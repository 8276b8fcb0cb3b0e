package utils

import (
	"math/rand"
)

const codeCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomToken produces the short codes used for email
// verification and password resets.
func GenerateRandomToken(length int) string {
	token := make([]byte, length)
	for i := range token {
		token[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	return string(token)
}
