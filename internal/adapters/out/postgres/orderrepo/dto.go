// Package orderrepo persists order aggregates with GORM. It maps the
// aggregate to a flat relational row and back, keeping the domain model
// free of storage concerns.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ImageRefs stores the order's image references as a jsonb array.
type ImageRefs []string

func (r *ImageRefs) Scan(value any) error {
	if value == nil {
		*r = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported image refs type %T", value)
	}

	return json.Unmarshal(raw, r)
}

func (r ImageRefs) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// GormDataType makes GORM migrate the column as jsonb.
func (ImageRefs) GormDataType() string {
	return "jsonb"
}

// OrderDTO is the database row shape of an order aggregate. The lifecycle
// status is stored as its wire string so the rows stay readable and the
// claim/count queries can match on status directly.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index"`
	RiderID    *uuid.UUID `gorm:"type:uuid;index"`
	ShopID     *uuid.UUID `gorm:"type:uuid;index"`
	EmployeeID *uuid.UUID `gorm:"type:uuid"`

	ProductName        string    `gorm:"not null"`
	Description        string    ``
	ContactPhone       string    ``
	Images             ImageRefs `gorm:"type:jsonb"`
	LaundryType        string    `gorm:"not null"`
	WeightCategory     string    `gorm:"not null"`
	ServiceTimeMinutes int       `gorm:"not null"`

	PickupType    string     `gorm:"not null"`
	PickupAt      *time.Time ``
	PickupAddress string     ``
	PickupLat     float64    `gorm:"column:pickup_lat"`
	PickupLng     float64    `gorm:"column:pickup_lng"`

	DeliveryAddress *string  ``
	DeliveryLat     *float64 `gorm:"column:delivery_lat"`
	DeliveryLng     *float64 `gorm:"column:delivery_lng"`

	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status     string          `gorm:"index;not null"`

	CreatedAt          time.Time  `gorm:"not null"`
	WashingStartedAt   *time.Time ``
	WashingCompletedAt *time.Time ``
	CompletedAt        *time.Time ``
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	details := aggregate.Details()
	pickup := details.Pickup

	dto := OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		CustomerID:         aggregate.CustomerID().Bytes(),
		RiderID:            optionalUUID(aggregate.RiderID()),
		ShopID:             optionalUUID(aggregate.ShopID()),
		EmployeeID:         optionalUUID(aggregate.EmployeeID()),
		ProductName:        details.ProductName,
		Description:        details.Description,
		ContactPhone:       details.ContactPhone,
		Images:             ImageRefs(details.Images),
		LaundryType:        details.LaundryType.String(),
		WeightCategory:     details.WeightCategory.String(),
		ServiceTimeMinutes: details.ServiceTimeMinutes,
		PickupType:         pickup.Type().String(),
		PickupAt:           pickup.At(),
		PickupAddress:      pickup.Address(),
		PickupLat:          pickup.Location().Latitude(),
		PickupLng:          pickup.Location().Longitude(),
		TotalPrice:         aggregate.TotalPrice(),
		Status:             aggregate.Status().String(),
		CreatedAt:          aggregate.CreatedAt(),
		WashingStartedAt:   aggregate.WashingStartedAt(),
		WashingCompletedAt: aggregate.WashingCompletedAt(),
		CompletedAt:        aggregate.CompletedAt(),
	}

	if delivery := details.Delivery; delivery != nil {
		address := delivery.Address()
		lat := delivery.Location().Latitude()
		lng := delivery.Location().Longitude()
		dto.DeliveryAddress = &address
		dto.DeliveryLat = &lat
		dto.DeliveryLng = &lng
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	riderID, err := optionalKernelUUID(dto.RiderID)
	if err != nil {
		return nil, err
	}
	shopID, err := optionalKernelUUID(dto.ShopID)
	if err != nil {
		return nil, err
	}
	employeeID, err := optionalKernelUUID(dto.EmployeeID)
	if err != nil {
		return nil, err
	}

	laundryType, err := order.LaundryTypeFromString(dto.LaundryType)
	if err != nil {
		return nil, err
	}
	weightCategory, err := order.WeightCategoryFromString(dto.WeightCategory)
	if err != nil {
		return nil, err
	}
	pickupType, err := order.PickupTypeFromString(dto.PickupType)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	pickupLocation, err := kernel.NewGeoPoint(dto.PickupLat, dto.PickupLng)
	if err != nil {
		return nil, err
	}
	pickup, err := order.NewPickup(pickupLocation, dto.PickupAddress, pickupType, dto.PickupAt)
	if err != nil {
		return nil, err
	}

	var delivery *order.Delivery
	if dto.DeliveryLat != nil && dto.DeliveryLng != nil {
		deliveryLocation, locErr := kernel.NewGeoPoint(*dto.DeliveryLat, *dto.DeliveryLng)
		if locErr != nil {
			return nil, locErr
		}
		address := ""
		if dto.DeliveryAddress != nil {
			address = *dto.DeliveryAddress
		}
		d, deliveryErr := order.NewDelivery(deliveryLocation, address)
		if deliveryErr != nil {
			return nil, deliveryErr
		}
		delivery = &d
	}

	details := order.Details{
		ProductName:        dto.ProductName,
		ContactPhone:       dto.ContactPhone,
		Description:        dto.Description,
		Images:             dto.Images,
		LaundryType:        laundryType,
		WeightCategory:     weightCategory,
		ServiceTimeMinutes: dto.ServiceTimeMinutes,
		Pickup:             pickup,
		Delivery:           delivery,
	}

	return order.RestoreOrder(
		id, customerID,
		riderID, shopID, employeeID,
		details,
		dto.TotalPrice,
		status,
		dto.CreatedAt,
		dto.WashingStartedAt, dto.WashingCompletedAt, dto.CompletedAt,
	)
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
