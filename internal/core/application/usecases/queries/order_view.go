// Package queries contains read-only operations for the order lifecycle.
// Implements the query side of the CQRS architecture: handlers read
// directly from the database into response models, bypassing the domain
// aggregates and their invariant machinery.
package queries

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// imageList scans the jsonb image reference column.
type imageList []string

func (l *imageList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported image list type %T", value)
	}

	return json.Unmarshal(raw, l)
}

func (l imageList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// orderRow is the raw database shape of an order used by query handlers.
type orderRow struct {
	ID         uuid.UUID  `gorm:"column:id"`
	CustomerID uuid.UUID  `gorm:"column:customer_id"`
	RiderID    *uuid.UUID `gorm:"column:rider_id"`
	ShopID     *uuid.UUID `gorm:"column:shop_id"`
	EmployeeID *uuid.UUID `gorm:"column:employee_id"`

	ProductName        string    `gorm:"column:product_name"`
	Description        string    `gorm:"column:description"`
	ContactPhone       string    `gorm:"column:contact_phone"`
	Images             imageList `gorm:"column:images"`
	LaundryType        string    `gorm:"column:laundry_type"`
	WeightCategory     string    `gorm:"column:weight_category"`
	ServiceTimeMinutes int       `gorm:"column:service_time_minutes"`

	PickupType      string     `gorm:"column:pickup_type"`
	PickupAt        *time.Time `gorm:"column:pickup_at"`
	PickupAddress   string     `gorm:"column:pickup_address"`
	PickupLatitude  float64    `gorm:"column:pickup_lat"`
	PickupLongitude float64    `gorm:"column:pickup_lng"`
	DeliveryAddress   *string    `gorm:"column:delivery_address"`
	DeliveryLatitude  *float64   `gorm:"column:delivery_lat"`
	DeliveryLongitude *float64   `gorm:"column:delivery_lng"`

	TotalPrice decimal.Decimal `gorm:"column:total_price"`
	Status     string          `gorm:"column:status"`

	CreatedAt          time.Time  `gorm:"column:created_at"`
	WashingStartedAt   *time.Time `gorm:"column:washing_started_at"`
	WashingCompletedAt *time.Time `gorm:"column:washing_completed_at"`
	CompletedAt        *time.Time `gorm:"column:completed_at"`
}

// orderColumns is the select list shared by the order query handlers.
const orderColumns = `
	id, customer_id, rider_id, shop_id, employee_id,
	product_name, description, contact_phone, images,
	laundry_type, weight_category, service_time_minutes,
	pickup_type, pickup_at, pickup_address, pickup_lat, pickup_lng,
	delivery_address, delivery_lat, delivery_lng,
	total_price, status,
	created_at, washing_started_at, washing_completed_at, completed_at`

// OrderView is the read model returned by order queries.
type OrderView struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customerId"`
	RiderID    *string `json:"riderId"`
	ShopID     *string `json:"shopId"`
	EmployeeID *string `json:"employeeId"`

	ProductName        string   `json:"productName"`
	Description        string   `json:"description,omitempty"`
	ContactPhone       string   `json:"contactPhone"`
	Images             []string `json:"images"`
	LaundryType        string   `json:"laundryType"`
	WeightCategory     string   `json:"weightCategory"`
	ServiceTimeMinutes int      `json:"serviceTimeMinutes"`

	PickupType      string     `json:"pickupType"`
	PickupAt        *time.Time `json:"pickupAt"`
	PickupAddress   string     `json:"pickupAddress"`
	PickupLatitude  float64    `json:"pickupLatitude"`
	PickupLongitude float64    `json:"pickupLongitude"`
	DeliveryAddress   *string  `json:"deliveryAddress"`
	DeliveryLatitude  *float64 `json:"deliveryLatitude"`
	DeliveryLongitude *float64 `json:"deliveryLongitude"`

	TotalPrice decimal.Decimal `json:"totalPrice"`
	Status     string          `json:"status"`

	CreatedAt          time.Time  `json:"createdAt"`
	WashingStartedAt   *time.Time `json:"washingStartedAt"`
	WashingCompletedAt *time.Time `json:"washingCompletedAt"`
	CompletedAt        *time.Time `json:"completedAt"`
}

func (r orderRow) toView() OrderView {
	view := OrderView{
		ID:                 r.ID.String(),
		CustomerID:         r.CustomerID.String(),
		ProductName:        r.ProductName,
		Description:        r.Description,
		ContactPhone:       r.ContactPhone,
		Images:             r.Images,
		LaundryType:        r.LaundryType,
		WeightCategory:     r.WeightCategory,
		ServiceTimeMinutes: r.ServiceTimeMinutes,
		PickupType:         r.PickupType,
		PickupAt:           r.PickupAt,
		PickupAddress:      r.PickupAddress,
		PickupLatitude:     r.PickupLatitude,
		PickupLongitude:    r.PickupLongitude,
		DeliveryAddress:    r.DeliveryAddress,
		DeliveryLatitude:   r.DeliveryLatitude,
		DeliveryLongitude:  r.DeliveryLongitude,
		TotalPrice:         r.TotalPrice,
		Status:             r.Status,
		CreatedAt:          r.CreatedAt,
		WashingStartedAt:   r.WashingStartedAt,
		WashingCompletedAt: r.WashingCompletedAt,
		CompletedAt:        r.CompletedAt,
	}

	if r.RiderID != nil {
		s := r.RiderID.String()
		view.RiderID = &s
	}
	if r.ShopID != nil {
		s := r.ShopID.String()
		view.ShopID = &s
	}
	if r.EmployeeID != nil {
		s := r.EmployeeID.String()
		view.EmployeeID = &s
	}

	return view
}

func toViews(rows []orderRow) []OrderView {
	views := make([]OrderView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.toView())
	}
	return views
}
