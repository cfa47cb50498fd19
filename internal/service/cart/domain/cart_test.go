// internal/service/cart/domain/cart_test.go
package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tee() LineItem {
	return LineItem{ProductID: 1, Name: "Heavyweight Tee", UnitPrice: 25.0, Size: "M", Color: "Black", Quantity: 1}
}

func TestAddMergesSameVariant(t *testing.T) {
	cart := NewCart("s1")
	cart.Add(tee())
	cart.Add(tee())

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestAddKeepsDistinctVariantsApart(t *testing.T) {
	cart := NewCart("s1")
	cart.Add(tee())

	other := tee()
	other.Size = "L"
	cart.Add(other)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, "M", cart.Items[0].Size)
	assert.Equal(t, "L", cart.Items[1].Size)
}

func TestAddNormalizesNonPositiveQuantity(t *testing.T) {
	for _, qty := range []int{0, -3} {
		cart := NewCart("s1")
		item := tee()
		item.Quantity = qty
		cart.Add(item)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 1, cart.Items[0].Quantity)
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	cart := NewCart("s1")
	for i := int64(1); i <= 3; i++ {
		item := tee()
		item.ProductID = i
		cart.Add(item)
	}
	// 合并到已有行不会改变其它行的顺序
	second := tee()
	second.ProductID = 2
	cart.Add(second)

	require.Len(t, cart.Items, 3)
	assert.Equal(t, int64(1), cart.Items[0].ProductID)
	assert.Equal(t, int64(2), cart.Items[1].ProductID)
	assert.Equal(t, int64(3), cart.Items[2].ProductID)
	assert.Equal(t, 2, cart.Items[1].Quantity)
}

func TestUpdateQuantityToZeroRemovesLine(t *testing.T) {
	cart := NewCart("s1")
	cart.Add(tee())

	cart.UpdateQuantity(tee().Key(), 0)
	assert.True(t, cart.IsEmpty())
}

func TestUpdateQuantityInPlace(t *testing.T) {
	cart := NewCart("s1")
	cart.Add(tee())
	cart.UpdateQuantity(tee().Key(), 5)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestRemoveMissingKeyIsNoop(t *testing.T) {
	cart := NewCart("s1")
	cart.Add(tee())

	cart.Remove(ItemKey{ProductID: 99})
	assert.Len(t, cart.Items, 1)
}

func TestTotalAndItemCount(t *testing.T) {
	cart := NewCart("s1")
	first := tee()
	first.Quantity = 2
	cart.Add(first)

	second := tee()
	second.ProductID = 2
	second.UnitPrice = 10.0
	second.Quantity = 3
	cart.Add(second)

	assert.InDelta(t, 80.0, cart.Total(), 1e-9)
	assert.Equal(t, 5, cart.ItemCount())
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	cart := NewCart("s1")
	cart.Add(tee())

	snapshot := cart.Snapshot()
	cart.UpdateQuantity(tee().Key(), 9)
	cart.Clear()

	require.Len(t, snapshot, 1)
	assert.Equal(t, 1, snapshot[0].Quantity)
}
