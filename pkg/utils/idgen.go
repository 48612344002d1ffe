package utils

import (
	"crypto/rand"
)

// idAlphabet leaves out 0/O/1/l/I so ids survive being read aloud or retyped.
const idAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789abcdefghijkmnopqrstuvwxyz"

const DefaultIDLength = 12

// GenerateID returns a short random alphanumeric identifier used as the
// primary key for most rows.
func GenerateID(length int) string {
	if length <= 0 {
		length = DefaultIDLength
	}
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		// crypto/rand only fails if the OS entropy source is broken.
		panic(err)
	}
	id := make([]byte, length)
	for i, b := range bytes {
		id[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return string(id)
}

// otpAlphabet is uppercase-only so the code reads the same in any mail client.
const otpAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const OTPLength = 8

// GenerateOTP returns the one-time code mailed during a password reset.
func GenerateOTP() string {
	bytes := make([]byte, OTPLength)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	code := make([]byte, OTPLength)
	for i, b := range bytes {
		code[i] = otpAlphabet[int(b)%len(otpAlphabet)]
	}
	return string(code)
}
