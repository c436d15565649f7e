package shop

import (
	"fmt"

	"laundromart/internal/pkg/errs"
)

// ApprovalStatus tracks a shop's admin review state. Only approved shops
// may receive laundry handovers; a freshly registered shop stays pending
// until an admin reviews it.
type ApprovalStatus int

const (
	// ApprovalStatusUnknown represents an invalid or undefined approval status.
	ApprovalStatusUnknown ApprovalStatus = iota

	// ApprovalPending means the shop awaits admin review.
	ApprovalPending

	// ApprovalApproved means the shop may serve orders.
	ApprovalApproved

	// ApprovalRejected means the shop was declined by an admin.
	ApprovalRejected
)

func getApprovalStatusStrings() map[ApprovalStatus]string {
	return map[ApprovalStatus]string{
		ApprovalStatusUnknown: "unknown",
		ApprovalPending:       "pending",
		ApprovalApproved:      "approved",
		ApprovalRejected:      "rejected",
	}
}

// ApprovalStatusFromString parses an approval status from its wire
// representation.
func ApprovalStatusFromString(s string) (ApprovalStatus, error) {
	switch s {
	case "pending":
		return ApprovalPending, nil
	case "approved":
		return ApprovalApproved, nil
	case "rejected":
		return ApprovalRejected, nil
	default:
		return ApprovalStatusUnknown, errs.NewValueIsInvalidErrorWithCause("approvalStatus",
			fmt.Errorf("%q is not a valid approval status", s))
	}
}

// Validate checks if the ApprovalStatus value is valid.
func (s ApprovalStatus) Validate() error {
	if s != ApprovalPending && s != ApprovalApproved && s != ApprovalRejected {
		return errs.NewValueIsInvalidErrorWithCause("approvalStatus",
			fmt.Errorf("%d is not a valid approval status", int(s)))
	}
	return nil
}

// String returns the wire representation of the approval status.
func (s ApprovalStatus) String() string {
	if str, ok := getApprovalStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
