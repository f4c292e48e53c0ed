package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GeneratePIN produces a 6-digit numeric reset PIN. Each digit is drawn from
// crypto/rand, so leading zeros are possible and the result is always exactly
// six characters long.
func GeneratePIN() (string, error) {
	const digits = 6

	pin := make([]byte, 0, digits)
	for i := 0; i < digits; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("error generating reset PIN: %w", err)
		}
		pin = append(pin, byte('0'+n.Int64()))
	}

	return string(pin), nil
}
