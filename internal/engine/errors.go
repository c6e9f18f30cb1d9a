package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownKey is returned when a completion key names no mission in the catalog.
var ErrUnknownKey = errors.New("unknown mission key")

// LockedError indicates a raid cell is disabled by catalog metadata.
// This is returned by key validation and should be shown to the user.
type LockedError struct {
	Key string
}

func (e LockedError) Error() string {
	return fmt.Sprintf("'%s' is locked", e.Key)
}

type InvalidAnchorError struct {
	Input string
	// Weekday is set when the input parsed but is not a Monday.
	Weekday *time.Weekday
}

func (e InvalidAnchorError) Error() string {
	if e.Weekday == nil {
		return fmt.Sprintf("invalid bi-weekly anchor: %q", e.Input)
	}
	return fmt.Sprintf("bi-weekly anchor %q falls on %s, want Monday", e.Input, *e.Weekday)
}
