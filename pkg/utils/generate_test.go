package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var sixDigits = regexp.MustCompile(`^[0-9]{6}$`)

func TestGenerateOTPShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateOTP(6)
		assert.Regexp(t, sixDigits, code)
	}
}

func TestGenerateOTPDefaultsLength(t *testing.T) {
	assert.Len(t, GenerateOTP(0), 6)
	assert.Len(t, GenerateOTP(-3), 6)
	assert.Len(t, GenerateOTP(8), 8)
}

func TestGenerateOTPVaries(t *testing.T) {
	// 50 uniform draws of 6 digits collide with probability ~1e-3;
	// all-equal would mean a broken generator
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[GenerateOTP(6)] = true
	}
	assert.Greater(t, len(seen), 1)
}
