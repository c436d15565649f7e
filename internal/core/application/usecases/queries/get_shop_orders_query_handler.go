package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShopOrdersQueryHandler reads a shop's order queue from the
// database.
type GetShopOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetShopOrdersQueryHandler creates a handler for shop order queue
// queries.
func NewGetShopOrdersQueryHandler(db *gorm.DB) GetShopOrdersQueryHandler {
	return GetShopOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns the shop's non-terminal orders,
// oldest first so employees work the queue in arrival order.
func (h GetShopOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetShopOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE shop_id = ? AND status NOT IN ('completed', 'cancelled')
		ORDER BY created_at ASC
	`, query.ShopID().Bytes()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toViews(rows), nil
}
