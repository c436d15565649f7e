package http

import (
	"time"

	"laundromart/internal/core/application/usecases/commands"
	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
)

type pickupRequest struct {
	Type      string     `json:"type"`
	At        *time.Time `json:"at"`
	Address   string     `json:"address"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
}

func (r pickupRequest) toDomain() (order.Pickup, error) {
	pickupType, err := order.PickupTypeFromString(r.Type)
	if err != nil {
		return order.Pickup{}, err
	}
	location, err := kernel.NewGeoPoint(r.Latitude, r.Longitude)
	if err != nil {
		return order.Pickup{}, err
	}
	return order.NewPickup(location, r.Address, pickupType, r.At)
}

type deliveryRequest struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r deliveryRequest) toDomain() (order.Delivery, error) {
	location, err := kernel.NewGeoPoint(r.Latitude, r.Longitude)
	if err != nil {
		return order.Delivery{}, err
	}
	return order.NewDelivery(location, r.Address)
}

type createOrderRequest struct {
	ProductName        string           `json:"productName"`
	Description        string           `json:"description"`
	ContactPhone       string           `json:"contactPhone"`
	Images             []string         `json:"images"`
	LaundryType        string           `json:"laundryType"`
	WeightCategory     string           `json:"weightCategory"`
	ServiceTimeMinutes int              `json:"serviceTimeMinutes"`
	Pickup             pickupRequest    `json:"pickup"`
	Delivery           *deliveryRequest `json:"delivery"`
}

func (r createOrderRequest) toDetails() (order.Details, error) {
	laundryType, err := order.LaundryTypeFromString(r.LaundryType)
	if err != nil {
		return order.Details{}, err
	}
	weightCategory, err := order.WeightCategoryFromString(r.WeightCategory)
	if err != nil {
		return order.Details{}, err
	}
	pickup, err := r.Pickup.toDomain()
	if err != nil {
		return order.Details{}, err
	}

	details := order.Details{
		ProductName:        r.ProductName,
		Description:        r.Description,
		ContactPhone:       r.ContactPhone,
		Images:             r.Images,
		LaundryType:        laundryType,
		WeightCategory:     weightCategory,
		ServiceTimeMinutes: r.ServiceTimeMinutes,
		Pickup:             pickup,
	}

	if r.Delivery != nil {
		delivery, deliveryErr := r.Delivery.toDomain()
		if deliveryErr != nil {
			return order.Details{}, deliveryErr
		}
		details.Delivery = &delivery
	}

	return details, nil
}

type editOrderRequest struct {
	ProductName        *string          `json:"productName"`
	Description        *string          `json:"description"`
	ContactPhone       *string          `json:"contactPhone"`
	Images             *[]string        `json:"images"`
	LaundryType        *string          `json:"laundryType"`
	WeightCategory     *string          `json:"weightCategory"`
	ServiceTimeMinutes *int             `json:"serviceTimeMinutes"`
	Pickup             *pickupRequest   `json:"pickup"`
	Delivery           *deliveryRequest `json:"delivery"`
}

func (r editOrderRequest) toPatch() (commands.DetailsPatch, error) {
	patch := commands.DetailsPatch{
		ProductName:        r.ProductName,
		Description:        r.Description,
		ContactPhone:       r.ContactPhone,
		Images:             r.Images,
		ServiceTimeMinutes: r.ServiceTimeMinutes,
	}

	if r.LaundryType != nil {
		laundryType, err := order.LaundryTypeFromString(*r.LaundryType)
		if err != nil {
			return commands.DetailsPatch{}, err
		}
		patch.LaundryType = &laundryType
	}
	if r.WeightCategory != nil {
		weightCategory, err := order.WeightCategoryFromString(*r.WeightCategory)
		if err != nil {
			return commands.DetailsPatch{}, err
		}
		patch.WeightCategory = &weightCategory
	}
	if r.Pickup != nil {
		pickup, err := r.Pickup.toDomain()
		if err != nil {
			return commands.DetailsPatch{}, err
		}
		patch.Pickup = &pickup
	}
	if r.Delivery != nil {
		delivery, err := r.Delivery.toDomain()
		if err != nil {
			return commands.DetailsPatch{}, err
		}
		patch.Delivery = &delivery
	}

	return patch, nil
}

type selectShopRequest struct {
	// ShopID selects the shop the rider intends to hand over to; null
	// clears a previous selection.
	ShopID *string `json:"shopId"`
}

type advanceOrderRequest struct {
	To     string  `json:"to"`
	ShopID *string `json:"shopId"`
}

func parseOptionalUUID(s *string) (*kernel.UUID, error) {
	if s == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
