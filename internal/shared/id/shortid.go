package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12

	orderSuffixLength = 6
)

// Generate creates a cryptographically random Base62 string of the given length.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// NewOrderNumber returns "<prefix>-YYYYMMDD-XXXXXX" with a Base62 suffix.
// The date part is taken from now in UTC.
func NewOrderNumber(prefix string, now time.Time) (string, error) {
	suffix, err := Generate(orderSuffixLength)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%s", prefix, now.UTC().Format("20060102"), suffix), nil
}

// NewTicketNumber returns "<prefix>-<unix millis><3 random digits>".
func NewTicketNumber(prefix string, now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}
	return fmt.Sprintf("%s-%d%03d", prefix, now.UnixMilli(), n.Int64()), nil
}
