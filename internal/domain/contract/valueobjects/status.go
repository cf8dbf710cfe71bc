package valueobjects

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const MaxStatusLength = 32

var (
	ErrStatusRequired = errors.New("status is required")
	ErrStatusTooLong  = errors.New("status exceeds maximum length of 32 characters")
)

// ActiveStatuses are the stored status values that count as an active contract.
var ActiveStatuses = []string{"active", "активен", "активный", "действует"}

// knownStatuses are stored in lower case so that lookups by value need no
// case folding in SQL.
var knownStatuses = map[string]struct{}{
	"active":        {},
	"активен":       {},
	"активный":      {},
	"действует":     {},
	"draft":         {},
	"черновик":      {},
	"completed":     {},
	"завершен":      {},
	"завершён":      {},
	"suspended":     {},
	"приостановлен": {},
	"terminated":    {},
	"расторгнут":    {},
}

// Status is the free-text state of a contract.
type Status string

// NewStatus trims the value and lower-cases it when it is a known status.
func NewStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrStatusRequired
	}
	if utf8.RuneCountInString(s) > MaxStatusLength {
		return "", ErrStatusTooLong
	}

	lower := strings.ToLower(s)
	if _, ok := knownStatuses[lower]; ok {
		return Status(lower), nil
	}
	return Status(s), nil
}

func (s Status) String() string {
	return string(s)
}

// IsActive reports whether the status denotes an active contract.
func (s Status) IsActive() bool {
	lower := strings.ToLower(string(s))
	for _, active := range ActiveStatuses {
		if lower == active {
			return true
		}
	}
	return false
}
