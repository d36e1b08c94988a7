package queries_test

import (
	"testing"

	"grocery/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExportOrdersQuery_Valid(t *testing.T) {
	query := queries.NewExportOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestExportOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ExportOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrExportOrdersQueryIsNotConstructed)
}
