package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_Validate(t *testing.T) {
	require.NoError(t, queries.NewGetAllCouriersQuery().Validate())
	require.NoError(t, queries.NewGetUncompletedOrdersQuery().Validate())

	assert.ErrorIs(t, queries.GetAllCouriersQuery{}.Validate(), queries.ErrGetAllCouriersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetUncompletedOrdersQuery{}.Validate(), queries.ErrGetUncompletedOrdersQueryIsNotConstructed)
}
