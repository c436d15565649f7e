package queries_test

import (
	"testing"

	"laundromart/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAvailableOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetAvailableOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetAvailableOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAvailableOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAvailableOrdersQueryIsNotConstructed)
}
