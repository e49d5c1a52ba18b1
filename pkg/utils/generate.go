package utils

import (
	"crypto/rand"
	"math/big"
)

// GenerateOTP creates a numeric OTP of the specified length.
// Digits are drawn uniformly from crypto/rand; leading zeros are allowed.
func GenerateOTP(length int) string {
	if length <= 0 {
		length = 6
	}

	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			panic(err)
		}
		digits[i] = byte('0' + n.Int64())
	}

	return string(digits)
}
