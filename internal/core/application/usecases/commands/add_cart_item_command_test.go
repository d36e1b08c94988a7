package commands_test

import (
	"testing"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddCartItemCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewAddCartItemCommand("cust-1", "prod-1", "Oat Milk", 3.49, "oat.png", 2)
	require.NoError(t, err)
	assert.Equal(t, "cust-1", cmd.CustomerID())
	assert.Equal(t, "prod-1", cmd.Item().ProductID())
	assert.Equal(t, 2, cmd.Item().Quantity())
}

func TestNewAddCartItemCommand_EmptyCustomerID(t *testing.T) {
	_, err := commands.NewAddCartItemCommand("", "prod-1", "Oat Milk", 3.49, "", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewAddCartItemCommand_InvalidItem(t *testing.T) {
	_, err := commands.NewAddCartItemCommand("cust-1", "prod-1", "Oat Milk", 3.49, "", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
