// Package errs provides standardized error types for the laundry-delivery
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when a referenced object cannot be found
//   - ValueIsInvalidError / ValueIsRequiredError / ValueIsOutOfRangeError:
//     For malformed or missing input
//   - ForbiddenError: For role or ownership violations
//   - InvalidTransitionError: For order status transitions outside the table
//   - CapacityExceededError: For priority orders routed to a full shop
//   - OrderAlreadyClaimedError: For the loser of the accept-order race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method resolving to the sentinel, so errors.Is classifies
//     any error from this package by kind
//
// The HTTP adapter relies on the sentinels to map failures to stable
// machine-readable response codes.
package errs
