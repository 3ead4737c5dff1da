package tickets

import (
	"errors"
	"strings"
)

// ErrInvalidPhoneNumber carries the fixed message reported for every
// malformed purchaser phone number.
var ErrInvalidPhoneNumber = errors.New("invalid phone number, expected format: 0671234567")

const phoneNumberLength = 10

// ValidatePhoneNumber checks that the purchaser phone number is exactly ten
// ASCII digits. Pure function, no side effects.
func ValidatePhoneNumber(phoneNumber string) error {
	if strings.TrimSpace(phoneNumber) == "" {
		return ErrInvalidPhoneNumber
	}
	if len(phoneNumber) != phoneNumberLength {
		return ErrInvalidPhoneNumber
	}
	for i := 0; i < len(phoneNumber); i++ {
		if phoneNumber[i] < '0' || phoneNumber[i] > '9' {
			return ErrInvalidPhoneNumber
		}
	}
	return nil
}
