package folderdrop

import (
	"errors"
	"fmt"
)

// Setup errors. Drops that break the ordering rules are not errors; they are
// reported as EventWrongContainer and EventWrongOrder.
var (
	ErrDuplicateItem      = errors.New("duplicate item id")
	ErrDuplicateContainer = errors.New("duplicate container id")
	ErrUnknownContainer   = errors.New("unknown container")
	ErrUnknownItem        = errors.New("unknown item")
	ErrForeignItem        = errors.New("item belongs to another container")
	ErrNoSteps            = errors.New("no steps")
)

// errorf wraps sentinel with a formatted prefix so callers can match it with
// errors.Is.
func errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
