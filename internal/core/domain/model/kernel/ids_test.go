package kernel_test

import (
	"strings"
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	t.Run("should create order id from opaque string", func(t *testing.T) {
		id, err := kernel.NewOrderID("ORD-1")

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, "ORD-1", id.String())
	})

	t.Run("should fail with empty string", func(t *testing.T) {
		_, err := kernel.NewOrderID("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with whitespace only", func(t *testing.T) {
		_, err := kernel.NewOrderID("   ")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with surrounding whitespace", func(t *testing.T) {
		_, err := kernel.NewOrderID(" ORD-1 ")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.OrderID

		require.Error(t, id.Validate())
	})
}

func TestOrderID_IsEqual(t *testing.T) {
	a, _ := kernel.NewOrderID("ORD-1")
	b, _ := kernel.NewOrderID("ORD-1")
	c, _ := kernel.NewOrderID("ORD-2")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestNewDriverID(t *testing.T) {
	t.Run("generates prefixed upper-hex id", func(t *testing.T) {
		id := kernel.NewDriverID()

		require.NoError(t, id.Validate())
		assert.True(t, strings.HasPrefix(id.String(), "DRV"))
		assert.Len(t, id.String(), 11)
		assert.Equal(t, strings.ToUpper(id.String()), id.String())
	})

	t.Run("generates unique ids", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			id := kernel.NewDriverID()
			assert.False(t, seen[id.String()])
			seen[id.String()] = true
		}
	})
}

func TestDriverIDFromString(t *testing.T) {
	t.Run("should parse valid id", func(t *testing.T) {
		id, err := kernel.DriverIDFromString("DRV1A2B3C4D")

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, "DRV1A2B3C4D", id.String())
	})

	t.Run("should fail with empty string", func(t *testing.T) {
		_, err := kernel.DriverIDFromString("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.DriverID

		require.Error(t, id.Validate())
	})
}
