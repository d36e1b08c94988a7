package commands_test

import (
	"testing"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetCartItemQuantityCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewSetCartItemQuantityCommand("cust-1", "prod-1", 5)
	require.NoError(t, err)
	assert.Equal(t, "cust-1", cmd.CustomerID())
	assert.Equal(t, "prod-1", cmd.ProductID())
	assert.Equal(t, 5, cmd.Quantity())
}

func TestNewSetCartItemQuantityCommand_ZeroQuantityIsLegal(t *testing.T) {
	cmd, err := commands.NewSetCartItemQuantityCommand("cust-1", "prod-1", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, cmd.Quantity())
}

func TestNewSetCartItemQuantityCommand_MissingIDs(t *testing.T) {
	_, err := commands.NewSetCartItemQuantityCommand("", "", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
