package queries_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetAllOrdersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetAllOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllOrdersQueryIsNotConstructed)
}

func TestNewGetAllDriversQuery_Valid(t *testing.T) {
	query := queries.NewGetAllDriversQuery()
	require.NoError(t, query.Validate())
}

func TestNewGetAvailableDriverQuery_Valid(t *testing.T) {
	query := queries.NewGetAvailableDriverQuery()
	require.NoError(t, query.Validate())
}
