package evaluate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/keypadchain/keypad"
)

// Code is a door code: keys of the numeric keypad ending with A.
type Code string

// ParseCode trims s and checks that it is a non-empty run of numeric-keypad
// keys ending with A. Returns ErrEmptyCode, ErrMissingActivate, or
// keypad.ErrUnknownKey.
func ParseCode(s string) (Code, error) {
	c := Code(strings.TrimSpace(s))
	if err := c.validate(); err != nil {
		return "", err
	}
	return c, nil
}

// validate checks that c is non-empty, uses only numeric-keypad keys, and
// ends with A.
func (c Code) validate() error {
	s := string(c)
	if s == "" {
		return ErrEmptyCode
	}
	for i, r := range s {
		if r != 'A' && (r < '0' || r > '9') {
			return fmt.Errorf("%w: %q at offset %d of %q", keypad.ErrUnknownKey, r, i, s)
		}
	}
	if !strings.HasSuffix(s, "A") {
		return fmt.Errorf("%w: %q", ErrMissingActivate, s)
	}
	return nil
}

// Value returns the code without its trailing A, read as a decimal number.
// "029A" is 29. Returns ErrEmptyCode or ErrMissingActivate for a code that
// does not end with A, and ErrBadValue when nothing numeric remains.
func (c Code) Value() (uint64, error) {
	if c == "" {
		return 0, ErrEmptyCode
	}
	if !strings.HasSuffix(string(c), "A") {
		return 0, fmt.Errorf("%w: %q", ErrMissingActivate, string(c))
	}
	digits := strings.TrimSuffix(string(c), "A")
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrBadValue, string(c), err)
	}
	return v, nil
}
