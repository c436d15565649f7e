package queries_test

import (
	"testing"

	"laundromart/internal/core/application/usecases/queries"
	"laundromart/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShopOrdersQuery_Valid(t *testing.T) {
	shopID := kernel.NewUUID()

	query, err := queries.NewGetShopOrdersQuery(shopID)
	require.NoError(t, err)

	require.NoError(t, query.Validate())
	assert.True(t, query.ShopID().IsEqual(shopID))
}

func TestNewGetShopOrdersQuery_EmptyShopID(t *testing.T) {
	_, err := queries.NewGetShopOrdersQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetShopOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShopOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShopOrdersQueryIsNotConstructed)
}
