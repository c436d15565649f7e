package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRiderOrdersQueryHandler reads a rider's active orders from the
// database.
type GetRiderOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderOrdersQueryHandler creates a handler for rider order
// queries.
func NewGetRiderOrdersQueryHandler(db *gorm.DB) GetRiderOrdersQueryHandler {
	return GetRiderOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns the rider's non-terminal orders,
// oldest first.
func (h GetRiderOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRiderOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE rider_id = ? AND status NOT IN ('completed', 'cancelled')
		ORDER BY created_at ASC
	`, query.RiderID().Bytes()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toViews(rows), nil
}
