package shop

import (
	"errors"
	"time"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/pkg/errs"
)

const (
	// DefaultName is used when a shop is registered without a name.
	DefaultName = "Laundry Shop"

	// DefaultTotalWashingMachines is the machine count assumed for shops
	// that never configured one.
	DefaultTotalWashingMachines = 10
)

// ErrShopIsNotConstructed is returned when a Shop instance was not created
// through NewShop or RestoreShop.
var ErrShopIsNotConstructed = errors.New("Shop must be created via NewShop or RestoreShop constructor")

// Profile carries the owner-editable attributes of a shop.
type Profile struct {
	Name        string
	Label       string
	PhoneNumber string
	PhotoImage  string
}

// Shop is a laundry shop participating in the marketplace. A shop owns a
// fixed pool of washing machines; orders in at_shop, washing or drying
// status each occupy one machine. Newly registered shops are pending until
// an admin approves them, and only approved shops accept handovers.
type Shop struct {
	id      kernel.UUID
	ownerID kernel.UUID

	profile  Profile
	location kernel.GeoPoint

	totalWashingMachines int
	approvalStatus       ApprovalStatus

	createdAt time.Time

	isConstructed bool
}

// NewShop registers a new shop with validation. Shops created by an admin
// may start approved; everyone else starts pending.
func NewShop(
	id kernel.UUID,
	ownerID kernel.UUID,
	profile Profile,
	location kernel.GeoPoint,
	totalWashingMachines int,
	approvalStatus ApprovalStatus,
	createdAt time.Time,
) (*Shop, error) {
	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
		location.Validate(),
		approvalStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if profile.Name == "" {
		profile.Name = DefaultName
	}

	return &Shop{
		id:                   id,
		ownerID:              ownerID,
		profile:              profile,
		location:             location,
		totalWashingMachines: normalizeMachines(totalWashingMachines),
		approvalStatus:       approvalStatus,
		createdAt:            createdAt,
		isConstructed:        true,
	}, nil
}

// RestoreShop reconstructs a Shop from persistence.
func RestoreShop(
	id kernel.UUID,
	ownerID kernel.UUID,
	profile Profile,
	location kernel.GeoPoint,
	totalWashingMachines int,
	approvalStatus ApprovalStatus,
	createdAt time.Time,
) (*Shop, error) {
	return NewShop(id, ownerID, profile, location, totalWashingMachines, approvalStatus, createdAt)
}

// Validate ensures the Shop instance was properly constructed.
func (s *Shop) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShopIsNotConstructed
	}
	return nil
}

// IsEqual compares two shops by their unique identifiers.
func (s *Shop) IsEqual(other *Shop) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shop's unique identifier.
func (s *Shop) ID() kernel.UUID {
	return s.id
}

// OwnerID returns the registering owner's identifier.
func (s *Shop) OwnerID() kernel.UUID {
	return s.ownerID
}

// Profile returns the owner-editable shop attributes.
func (s *Shop) Profile() Profile {
	return s.profile
}

// Location returns the shop coordinates.
func (s *Shop) Location() kernel.GeoPoint {
	return s.location
}

// TotalWashingMachines returns the configured machine pool size.
// Always at least one.
func (s *Shop) TotalWashingMachines() int {
	return s.totalWashingMachines
}

// ApprovalStatus returns the admin review state.
func (s *Shop) ApprovalStatus() ApprovalStatus {
	return s.approvalStatus
}

// CreatedAt returns the registration time.
func (s *Shop) CreatedAt() time.Time {
	return s.createdAt
}

// IsApproved reports whether the shop may accept laundry handovers.
func (s *Shop) IsApproved() bool {
	return s.approvalStatus == ApprovalApproved
}

// Approve marks the shop as admin-approved.
func (s *Shop) Approve() {
	s.approvalStatus = ApprovalApproved
}

// Reject marks the shop as declined by an admin.
func (s *Shop) Reject() {
	s.approvalStatus = ApprovalRejected
}

// UpdateProfile replaces the owner-editable attributes. An empty name
// falls back to the default.
func (s *Shop) UpdateProfile(profile Profile) {
	if profile.Name == "" {
		profile.Name = DefaultName
	}
	s.profile = profile
}

// SetTotalWashingMachines reconfigures the machine pool size. Values below
// one are rejected; shrinking the pool never evicts in-flight orders, it
// only affects future capacity checks.
func (s *Shop) SetTotalWashingMachines(total int) error {
	if total < 1 || total > maxMachines {
		return errs.NewValueIsOutOfRangeError("totalWashingMachines", total, 1, maxMachines)
	}
	s.totalWashingMachines = total
	return nil
}

// maxMachines bounds configuration mistakes, not physics.
const maxMachines = 1000

func normalizeMachines(total int) int {
	if total < 1 {
		return DefaultTotalWashingMachines
	}
	return total
}
