package errs_test

import (
	"errors"
	"testing"

	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("taskId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("paymentMethod")

		assert.Equal(t, "paymentMethod", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: paymentMethod", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown method")
		err := errs.NewValueIsInvalidErrorWithCause("paymentMethod", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: paymentMethod (cause: unknown method)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 150, -90, 90)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, -90, err.Min)
		assert.Equal(t, 90, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("deliveryAddress")

		assert.Equal(t, "deliveryAddress", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: deliveryAddress", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("deliveryAddress", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: deliveryAddress (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("picked_up", "delivered")

		assert.Equal(t, "picked_up", err.From)
		assert.Equal(t, "delivered", err.To)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid status transition: picked_up -> delivered", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("empty_target_means_no_legal_transition", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("delivered", "")

		assert.Equal(t, "invalid status transition: no legal transition from delivered", err.Error())
	})

	t.Run("NewInvalidTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("terminal state")
		err := errs.NewInvalidTransitionErrorWithCause("delivered", "cancelled", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "invalid status transition: delivered -> cancelled (cause: terminal state)", err.Error())
	})
}

func TestRepositoryError(t *testing.T) {
	cause := errors.New("connection reset")
	err := errs.NewRepositoryError("create order", cause)

	assert.Equal(t, "create order", err.Op)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "repository failure: create order (cause: connection reset)", err.Error())
	assert.Equal(t, errs.ErrRepositoryFailure, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid status transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "repository failure", errs.ErrRepositoryFailure.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("paymentMethod"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("latitude", 150, -90, 90), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("deliveryAddress"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewInvalidTransitionError("pending", "delivered"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewRepositoryError("get order", errors.New("boom")), errs.ErrRepositoryFailure)
	})
}
