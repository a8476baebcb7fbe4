package orderbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelOrder(t *testing.T) {
	ob := NewOrderBook(nil)
	mustInsert(t, ob, BUY, GFD, 100, 10, "1")

	require.NoError(t, ob.Cancel("1"))

	_, ok := ob.orders.find("1")
	assert.False(t, ok, "order should be removed from the registry")
	assert.True(t, ob.buys.isEmpty(), "order should be removed from the side book")
}

func TestCancelIsIdempotent(t *testing.T) {
	ob := NewOrderBook(nil)
	mustInsert(t, ob, BUY, GFD, 100, 10, "1")
	mustInsert(t, ob, SELL, GFD, 105, 3, "2")
	require.NoError(t, ob.Cancel("1"))
	before := ob.Snapshot()

	assert.ErrorIs(t, ob.Cancel("1"), ErrOrderNotFound)
	assert.ErrorIs(t, ob.Cancel("unknown"), ErrOrderNotFound)
	assert.Equal(t, before, ob.Snapshot())
}

func TestCancelFilledOrder(t *testing.T) {
	ob := NewOrderBook(nil)
	mustInsert(t, ob, BUY, GFD, 100, 10, "b1")
	mustInsert(t, ob, SELL, GFD, 100, 10, "s1")

	assert.ErrorIs(t, ob.Cancel("b1"), ErrOrderNotFound)
	assert.True(t, ob.Snapshot().Empty())
}

func TestModifyOrder_DecreaseQty(t *testing.T) {
	ob := NewOrderBook(nil)
	mustInsert(t, ob, BUY, GFD, 10, 5, "b1")

	results, err := ob.Modify("b1", BUY, 10, 3)
	require.NoError(t, err)
	assert.Empty(t, results)

	results = mustInsert(t, ob, SELL, GFD, 10, 3, "s1")
	require.Len(t, results, 1)
	assert.Equal(t, int64(3), results[0].Qty)
	assert.True(t, ob.Snapshot().Empty())
}

func TestModifyOrder_IncreaseQty(t *testing.T) {
	ob := NewOrderBook(nil)
	mustInsert(t, ob, BUY, GFD, 100, 10, "1")

	_, err := ob.Modify("1", BUY, 100, 20)
	require.NoError(t, err)

	modified, ok := ob.orders.find("1")
	require.True(t, ok)
	assert.Equal(t, int64(20), modified.Qty)
	assert.Equal(t, int64(100), modified.Price)
	assert.Equal(t, GFD, modified.TimeInForce)
}

func TestModifyOrder_LosesTimePriority(t *testing.T) {
	ob := NewOrderBook(nil)
	mustInsert(t, ob, BUY, GFD, 10, 5, "b1")
	mustInsert(t, ob, BUY, GFD, 10, 5, "b2")

	_, err := ob.Modify("b1", BUY, 10, 5)
	require.NoError(t, err)

	results := mustInsert(t, ob, SELL, GFD, 10, 5, "s1")
	require.Len(t, results, 1)
	assert.Equal(t, "b2", results[0].OrderID)

	_, ok := ob.orders.find("b1")
	assert.True(t, ok)
}

func TestModifyOrder_FillKeepsTimePriority(t *testing.T) {
	ob := NewOrderBook(nil)
	mustInsert(t, ob, BUY, GFD, 10, 5, "b1")
	mustInsert(t, ob, BUY, GFD, 10, 5, "b2")

	mustInsert(t, ob, SELL, GFD, 10, 2, "s1")
	results := mustInsert(t, ob, SELL, GFD, 10, 4, "s2")

	require.Len(t, results, 2)
	assert.Equal(t, "b1", results[0].OrderID)
	assert.Equal(t, int64(3), results[0].Qty)
	assert.Equal(t, "b2", results[1].OrderID)
	assert.Equal(t, int64(1), results[1].Qty)
}

func TestModifyOrder_ChangePriceCrosses(t *testing.T) {
	ob := NewOrderBook(nil)
	mustInsert(t, ob, BUY, GFD, 9, 5, "b1")
	mustInsert(t, ob, SELL, GFD, 11, 5, "s1")

	results, err := ob.Modify("b1", BUY, 11, 5)
	require.NoError(t, err)

	// the modified order now has the later sequence and prints second
	require.Len(t, results, 1)
	assert.Equal(t, MatchResult{
		OrderID: "s1", Price: 11, CounterOrderID: "b1", CounterPrice: 11, Qty: 5, Side: SELL,
	}, results[0])
	assert.True(t, ob.Snapshot().Empty())
}

func TestModifyOrder_ChangeSide(t *testing.T) {
	ob := NewOrderBook(nil)
	mustInsert(t, ob, BUY, GFD, 10, 5, "x")
	mustInsert(t, ob, BUY, GFD, 8, 2, "b1")

	results, err := ob.Modify("x", SELL, 8, 3)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "b1", results[0].OrderID)
	assert.Equal(t, "x", results[0].CounterOrderID)
	assert.Equal(t, Snapshot{Sells: []PriceLevel{{Price: 8, Qty: 1}}}, ob.Snapshot())
	assert.Equal(t, 0, ob.buys.len())
}

func TestModifyOrder_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		side  Side
		price int64
		qty   int64
		err   error
	}{
		{"unknown id", "nope", BUY, 10, 5, ErrOrderNotFound},
		{"zero price", "b1", BUY, 0, 5, ErrInvalidOrderPrice},
		{"zero qty", "b1", BUY, 10, 0, ErrInvalidOrderQty},
		{"bad side", "b1", Side("buy"), 10, 5, ErrInvalidSide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ob := NewOrderBook(nil)
			mustInsert(t, ob, BUY, GFD, 10, 5, "b1")
			mustInsert(t, ob, SELL, GFD, 12, 5, "s1")
			before := ob.Snapshot()
			seq := ob.seq

			results, err := ob.Modify(tt.id, tt.side, tt.price, tt.qty)

			require.ErrorIs(t, err, tt.err)
			assert.Empty(t, results)
			assert.Equal(t, before, ob.Snapshot())
			assert.Equal(t, seq, ob.seq)
		})
	}
}
