package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	otpMin = 10000
	otpMax = 99999
)

// GenerateOtp returns a uniformly random 5-digit code in [10000, 99999].
// crypto/rand keeps codes unpredictable across restarts.
func GenerateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%05d", n.Int64()+otpMin), nil
}
