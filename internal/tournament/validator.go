package tournament

import "strconv"

// MinSize and MaxSize bound the accepted bracket sizes: powers of two
// from 2^3 to 2^7.
const (
	MinSize = 8
	MaxSize = 128
)

// ValidationError reports a tournament size the user supplied that the
// bracket cannot be built from. It is a user error, not a system fault.
type ValidationError struct {
	Input string
}

func (e *ValidationError) Error() string {
	return "invalid tournament size: " + e.Input
}

// ValidateSize parses input as a base-10 integer literal and accepts it
// only if it is a power of two in [MinSize, MaxSize], i.e. one of
// 8, 16, 32, 64 or 128.
func ValidateSize(input string) (int, error) {
	if input == "" {
		return 0, &ValidationError{Input: input}
	}
	// Digits only: a leading sign or a decimal point is rejected outright.
	for _, r := range input {
		if r < '0' || r > '9' {
			return 0, &ValidationError{Input: input}
		}
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, &ValidationError{Input: input}
	}
	if n < MinSize || n > MaxSize || n&(n-1) != 0 {
		return 0, &ValidationError{Input: input}
	}
	return n, nil
}
