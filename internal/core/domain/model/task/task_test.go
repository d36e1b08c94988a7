package task_test

import (
	"testing"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/task"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTask(t *testing.T) *task.Task {
	t.Helper()
	tk, err := task.NewTask(kernel.NewUUID(), kernel.NewUUID(), "agent-7")
	require.NoError(t, err)
	return tk
}

func TestNewTask(t *testing.T) {
	t.Run("starts_assigned", func(t *testing.T) {
		tk := newTask(t)

		require.NoError(t, tk.Validate())
		assert.Equal(t, order.StatusAssigned, tk.Status())
		assert.Equal(t, "agent-7", tk.AgentID())
	})

	t.Run("missing_agent_rejected", func(t *testing.T) {
		_, err := task.NewTask(kernel.NewUUID(), kernel.NewUUID(), "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_ids_rejected", func(t *testing.T) {
		var zero kernel.UUID
		_, err := task.NewTask(zero, kernel.NewUUID(), "agent-7")
		require.Error(t, err)

		_, err = task.NewTask(kernel.NewUUID(), zero, "agent-7")
		require.Error(t, err)
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var tk task.Task
		require.ErrorIs(t, tk.Validate(), task.ErrTaskIsNotConstructed)
	})
}

func TestTask_Advance(t *testing.T) {
	t.Run("walks_the_full_path", func(t *testing.T) {
		tk := newTask(t)

		for _, want := range []order.Status{
			order.StatusPickedUp,
			order.StatusOnTheWay,
			order.StatusDelivered,
		} {
			got, err := tk.Advance()
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, want, tk.Status())
		}
	})

	t.Run("advancing_a_delivered_task_fails", func(t *testing.T) {
		tk := newTask(t)
		for range 3 {
			_, err := tk.Advance()
			require.NoError(t, err)
		}

		_, err := tk.Advance()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusDelivered, tk.Status())
	})

	t.Run("advancing_a_cancelled_task_fails", func(t *testing.T) {
		tk := newTask(t)
		require.NoError(t, tk.Cancel())

		_, err := tk.Advance()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestTask_Cancel(t *testing.T) {
	t.Run("from_assigned", func(t *testing.T) {
		tk := newTask(t)

		require.NoError(t, tk.Cancel())
		assert.Equal(t, order.StatusCancelled, tk.Status())
	})

	t.Run("after_pickup_fails", func(t *testing.T) {
		tk := newTask(t)
		_, err := tk.Advance()
		require.NoError(t, err)

		require.ErrorIs(t, tk.Cancel(), errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusPickedUp, tk.Status())
	})
}

func TestRestoreTask(t *testing.T) {
	tk, err := task.RestoreTask(kernel.NewUUID(), kernel.NewUUID(), "agent-7", order.StatusOnTheWay)

	require.NoError(t, err)
	assert.Equal(t, order.StatusOnTheWay, tk.Status())

	_, err = task.RestoreTask(kernel.NewUUID(), kernel.NewUUID(), "agent-7", order.Status("lost"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
