package queries

import (
	"context"

	"gorm.io/gorm"

	"laundromart/internal/core/domain/services"
	"laundromart/internal/pkg/errs"
)

// CapacityView is the JSON read model for a shop's machine usage.
type CapacityView struct {
	ShopID    string `json:"shopId"`
	Total     int    `json:"total"`
	InUse     int    `json:"inUse"`
	Available int    `json:"available"`
}

// GetShopCapacityQueryHandler computes a shop's machine usage snapshot
// from its configured pool size and the orders currently occupying
// machines.
type GetShopCapacityQueryHandler struct {
	db *gorm.DB
}

// NewGetShopCapacityQueryHandler creates a handler for shop capacity
// queries.
func NewGetShopCapacityQueryHandler(db *gorm.DB) GetShopCapacityQueryHandler {
	return GetShopCapacityQueryHandler{db: db}
}

// Handle executes the query.
func (h GetShopCapacityQueryHandler) Handle(
	ctx context.Context,
	query GetShopCapacityQuery,
) (CapacityView, error) {
	if err := query.Validate(); err != nil {
		return CapacityView{}, err
	}

	var row struct {
		Found bool `gorm:"column:found"`
		Total int  `gorm:"column:total"`
		InUse int  `gorm:"column:in_use"`
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT TRUE AS found,
		       s.total_washing_machines AS total,
		       (
		           SELECT COUNT(*)
		           FROM orders o
		           WHERE o.shop_id = s.id
		             AND o.status IN ('at_shop', 'washing', 'drying')
		       ) AS in_use
		FROM shops s
		WHERE s.id = ?
	`, query.ShopID().Bytes()).Scan(&row).Error
	if err != nil {
		return CapacityView{}, err
	}
	if !row.Found {
		return CapacityView{}, errs.NewObjectNotFoundError("shopId", query.ShopID())
	}

	stats := services.NewMachineStats(row.Total, row.InUse)
	return CapacityView{
		ShopID:    query.ShopID().String(),
		Total:     stats.Total,
		InUse:     stats.InUse,
		Available: stats.Available,
	}, nil
}
