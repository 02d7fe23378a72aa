package delivery_test

import (
	"testing"

	"warehouse/internal/core/domain/model/delivery"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDelivery(t *testing.T) {
	orderID, err := kernel.NewOrderID("ORD-1")
	require.NoError(t, err)
	driverID := kernel.NewDriverID()

	t.Run("creates on-the-way record", func(t *testing.T) {
		d, err := delivery.NewDelivery(orderID, "221B Baker Street", driverID)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.StatusOnTheWay, d.Status())
		assert.True(t, d.OrderID().IsEqual(orderID))
		assert.True(t, d.DriverID().IsEqual(driverID))
		assert.Equal(t, "221B Baker Street", d.Address())
	})

	t.Run("requires address", func(t *testing.T) {
		d, err := delivery.NewDelivery(orderID, "", driverID)

		require.Error(t, err)
		assert.Nil(t, d)
	})

	t.Run("requires driver", func(t *testing.T) {
		var invalid kernel.DriverID
		d, err := delivery.NewDelivery(orderID, "221B Baker Street", invalid)

		require.Error(t, err)
		assert.Nil(t, d)
	})
}

func TestDelivery_MarkDelivered(t *testing.T) {
	orderID, err := kernel.NewOrderID("ORD-1")
	require.NoError(t, err)

	d, err := delivery.NewDelivery(orderID, "221B Baker Street", kernel.NewDriverID())
	require.NoError(t, err)

	d.MarkDelivered()
	assert.Equal(t, delivery.StatusDelivered, d.Status())

	d.MarkDelivered()
	assert.Equal(t, delivery.StatusDelivered, d.Status())
}

func TestRestoreDelivery(t *testing.T) {
	orderID, err := kernel.NewOrderID("ORD-1")
	require.NoError(t, err)
	driverID := kernel.NewDriverID()

	t.Run("restores delivered record", func(t *testing.T) {
		d, err := delivery.RestoreDelivery(orderID, delivery.StatusDelivered, "221B Baker Street", driverID)

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusDelivered, d.Status())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		d, err := delivery.RestoreDelivery(orderID, "lost", "221B Baker Street", driverID)

		require.Error(t, err)
		assert.Nil(t, d)
	})
}
