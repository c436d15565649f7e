// Package shoprepo persists shop aggregates with GORM.
package shoprepo

import (
	"time"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/shop"

	"github.com/google/uuid"
)

// ShopDTO is the database row shape of a shop aggregate.
type ShopDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;index"`

	Name        string `gorm:"not null"`
	Label       string ``
	PhoneNumber string ``
	PhotoImage  string ``

	Lat float64 `gorm:"column:lat"`
	Lng float64 `gorm:"column:lng"`

	TotalWashingMachines int    `gorm:"column:total_washing_machines;not null"`
	ApprovalStatus       string `gorm:"index;not null"`

	CreatedAt time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "shops".
func (ShopDTO) TableName() string {
	return "shops"
}

func fromDomain(aggregate *shop.Shop) ShopDTO {
	profile := aggregate.Profile()

	return ShopDTO{
		ID:                   aggregate.ID().Bytes(),
		OwnerID:              aggregate.OwnerID().Bytes(),
		Name:                 profile.Name,
		Label:                profile.Label,
		PhoneNumber:          profile.PhoneNumber,
		PhotoImage:           profile.PhotoImage,
		Lat:                  aggregate.Location().Latitude(),
		Lng:                  aggregate.Location().Longitude(),
		TotalWashingMachines: aggregate.TotalWashingMachines(),
		ApprovalStatus:       aggregate.ApprovalStatus().String(),
		CreatedAt:            aggregate.CreatedAt(),
	}
}

func toDomain(dto ShopDTO) (*shop.Shop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}

	approvalStatus, err := shop.ApprovalStatusFromString(dto.ApprovalStatus)
	if err != nil {
		return nil, err
	}

	profile := shop.Profile{
		Name:        dto.Name,
		Label:       dto.Label,
		PhoneNumber: dto.PhoneNumber,
		PhotoImage:  dto.PhotoImage,
	}

	return shop.RestoreShop(
		id, ownerID, profile, location,
		dto.TotalWashingMachines, approvalStatus, dto.CreatedAt,
	)
}
