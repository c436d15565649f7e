package kernel

import (
	"fmt"

	"laundromart/internal/pkg/errs"
)

// Role identifies the kind of actor driving an order transition.
// Every mutating operation asserts the caller's role server-side; the
// transition table in the domain services decides what each role may do.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer owns orders: creates, edits and deletes them while pending.
	RoleCustomer

	// RoleRider transports orders: claims pending work, hands over to shops,
	// returns finished laundry to the customer.
	RoleRider

	// RoleEmployee works at a shop: starts and finishes washing/drying for
	// orders handed over to that shop.
	RoleEmployee

	// RoleAdmin may drive any employee transition and cancel orders.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleRider:    "rider",
		RoleEmployee: "employee",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses a role from its wire representation.
// Returns an error for anything outside customer/rider/employee/admin.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is one of the defined roles.
func (r Role) Validate() error {
	if r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", int(r)))
	}
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", int(r)))
	}
	return nil
}

// String returns the wire representation of the role.
// Implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
