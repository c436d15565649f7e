package commands

import (
	"errors"
	"math"
	"time"

	"laundromart/internal/pkg/errs"
	"laundromart/internal/pkg/guard"
)

// DefaultRetentionWindow is how long completed and cancelled orders stay
// queryable before the sweep removes them, unless configured otherwise.
const DefaultRetentionWindow = 24 * time.Hour

var ErrPurgeTerminalOrdersCommandIsNotConstructed = errors.New(
	"PurgeTerminalOrdersCommand must be created via NewPurgeTerminalOrdersCommand constructor",
)

// PurgeTerminalOrdersCommand removes terminal orders whose retention window
// has passed. Images were already released when the orders went terminal,
// so the sweep only drops rows.
type PurgeTerminalOrdersCommand struct {
	now    time.Time
	window time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeTerminalOrdersCommand creates a sweep command anchored at the
// given reference time with the given retention window.
func NewPurgeTerminalOrdersCommand(now time.Time, window time.Duration) (PurgeTerminalOrdersCommand, error) {
	if now.IsZero() {
		return PurgeTerminalOrdersCommand{}, errs.NewValueIsRequiredError("now")
	}
	if window <= 0 {
		return PurgeTerminalOrdersCommand{}, errs.NewValueIsOutOfRangeError("window", window, time.Nanosecond, math.MaxInt64*time.Nanosecond)
	}
	return PurgeTerminalOrdersCommand{
		now:    now,
		window: window,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeTerminalOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeTerminalOrdersCommandIsNotConstructed)
}

// Cutoff returns the completion time before which terminal orders are
// swept.
func (c PurgeTerminalOrdersCommand) Cutoff() time.Time {
	return c.now.Add(-c.window)
}
