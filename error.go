package intersect

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument is returned for negative lengths and inverted ranges.
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// CombinedError collects several failures, e.g. every problem of one option struct.
type CombinedError struct {
	Message string
	Errors  []error
}

func (c *CombinedError) append(err error) {
	c.Errors = append(c.Errors, err)
}

func (c *CombinedError) appendIfError(err error) {
	if err != nil {
		c.append(err)
	}
}

func (c *CombinedError) errorOrNil() error {
	if len(c.Errors) == 0 {
		return nil
	}
	return c
}

// Is reports whether any collected error matches target.
func (c *CombinedError) Is(target error) bool {
	for _, err := range c.Errors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (c CombinedError) Error() string {
	var result []string
	for _, err := range c.Errors {
		result = append(result, err.Error())
	}
	return fmt.Sprintf("%s: %s", c.Message, strings.Join(result, ", "))
}

func invalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}
