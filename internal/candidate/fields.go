package candidate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const listSeparator = ","

var (
	// ErrInvalidField is reported when a raw form value had to be normalized.
	ErrInvalidField = errors.New("invalid field")
	// ErrUnknownField is returned for criteria updates naming a field that does not exist.
	ErrUnknownField = errors.New("unknown field")

	errNegative = errors.New("value must not be negative")
)

// FieldError describes a raw value that was coerced to its default.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() []error {
	return []error{ErrInvalidField, e.Err}
}

// SplitList splits a comma-separated form value. Entries are kept exactly as entered.
func SplitList(raw string) []string {
	if raw == "" {
		return []string{}
	}

	return strings.Split(raw, listSeparator)
}

// JoinList is the inverse of SplitList.
func JoinList(items []string) string {
	return strings.Join(items, listSeparator)
}

// ParseYears converts a raw numeric form value into a non-negative year count.
// Blank input means zero. Anything else that is not a non-negative integer is
// normalized to zero and reported with a *FieldError.
func ParseYears(field, raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}

	years, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &FieldError{Field: field, Value: raw, Err: err}
	}

	if years < 0 {
		return 0, &FieldError{Field: field, Value: raw, Err: errNegative}
	}

	return years, nil
}

// uniq collapses duplicates keeping the first occurrence order. Never returns nil.
func uniq(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	result := make([]string, 0, len(items))

	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}

	return result
}
