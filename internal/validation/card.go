// Package validation holds input checks shared by the checkout flows.
package validation

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

var (
	ErrInvalidCardNumber = errors.New("invalid card number")
	ErrInvalidExpiry     = errors.New("invalid card expiry")
	ErrCardExpired       = errors.New("card expired")
	ErrInvalidCVV        = errors.New("invalid card cvv")
	ErrInvalidHolderName = errors.New("invalid card holder name")
)

// SanitizeCardNumber strips the separators customers usually type.
func SanitizeCardNumber(number string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' || r == '.' {
			return -1
		}
		return r
	}, strings.TrimSpace(number))
}

// IsValidCardNumber checks length and the Luhn checksum.
func IsValidCardNumber(number string) bool {
	if len(number) < 13 || len(number) > 19 {
		return false
	}

	sum := 0
	double := false

	for i := len(number) - 1; i >= 0; i-- {
		ch := rune(number[i])
		if !unicode.IsDigit(ch) {
			return false
		}
		digit := int(ch - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0
}

// ValidateCard checks a sanitized card number, the expiry (two or four digit
// year; the card is valid through the last day of the month) and the CVV.
func ValidateCard(holderName, number string, month, year int, cvv string, now time.Time) error {
	if strings.TrimSpace(holderName) == "" {
		return ErrInvalidHolderName
	}
	if !IsValidCardNumber(number) {
		return ErrInvalidCardNumber
	}
	if month < 1 || month > 12 || year <= 0 {
		return ErrInvalidExpiry
	}
	if year < 100 {
		year += 2000
	}
	expiresAt := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	if !now.UTC().Before(expiresAt) {
		return ErrCardExpired
	}
	if len(cvv) < 3 || len(cvv) > 4 {
		return ErrInvalidCVV
	}
	for _, r := range cvv {
		if !unicode.IsDigit(r) {
			return ErrInvalidCVV
		}
	}
	return nil
}

// Last4 returns the last four digits of a card number.
func Last4(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}
