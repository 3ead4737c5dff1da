package tickets

import "fmt"

// Status represents the ticket lifecycle state, persisted as text.
// Transitions: Available -> Sold (purchase) -> Returned (refund, terminal).
type Status string

const (
	StatusAvailable Status = "Available"
	StatusSold      Status = "Sold"
	StatusReturned  Status = "Returned"
)

// ErrInvalidStatus is returned for status values outside the recognized set.
var ErrInvalidStatus = fmt.Errorf("invalid ticket status: use %q, %q or %q",
	StatusAvailable, StatusSold, StatusReturned)

// ParseStatus converts a string into a Status
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAvailable, StatusSold, StatusReturned:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// IsValid reports whether the status is one of the recognized values
func (s Status) IsValid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}
