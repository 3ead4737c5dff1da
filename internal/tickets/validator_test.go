package tickets_test

import (
	"testing"

	"stagepass/internal/tickets"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhoneNumber(t *testing.T) {
	cases := []struct {
		name  string
		phone string
		valid bool
	}{
		{"ten digits", "0671234567", true},
		{"leading zeros", "0000000000", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"too short", "123", false},
		{"too long", "06712345678", false},
		{"letters mixed in", "06712345ab", false},
		{"dashes", "067-123-45", false},
		{"internal space", "067 123456", false},
		{"plus prefix", "+380671234", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tickets.ValidatePhoneNumber(tc.phone)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tickets.ErrInvalidPhoneNumber)
			}
		})
	}
}
