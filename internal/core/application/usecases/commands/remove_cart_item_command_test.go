package commands_test

import (
	"testing"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoveCartItemCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewRemoveCartItemCommand("cust-1", "prod-1")
	require.NoError(t, err)
	assert.Equal(t, "cust-1", cmd.CustomerID())
	assert.Equal(t, "prod-1", cmd.ProductID())
}

func TestNewRemoveCartItemCommand_MissingProductID(t *testing.T) {
	_, err := commands.NewRemoveCartItemCommand("cust-1", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
