package orderbook

type Side string

const (
	BUY  Side = "BUY"
	SELL Side = "SELL"
)

func (s Side) valid() bool {
	return s == BUY || s == SELL
}

type TimeInForce string

const (
	GFD TimeInForce = "GFD" // good for day, rests until filled or cancelled
	IOC TimeInForce = "IOC" // immediate or cancel, never rests
)

func (tif TimeInForce) valid() bool {
	return tif == GFD || tif == IOC
}

// Order is the registry's canonical copy of a live order. Side books only
// keep a key derived from Price, Seq and ID.
type Order struct {
	ID          string
	Side        Side
	TimeInForce TimeInForce
	Price       int64
	Qty         int64
	Seq         uint64 // time priority, refreshed on modify
}

func newOrder(id string, side Side, tif TimeInForce, price, qty int64, seq uint64) *Order {
	return &Order{
		ID:          id,
		Side:        side,
		TimeInForce: tif,
		Price:       price,
		Qty:         qty,
		Seq:         seq,
	}
}

// modify replaces everything but ID and TimeInForce. The caller must have
// removed the order from its side book first.
func (o *Order) modify(side Side, price, qty int64, seq uint64) {
	o.Side = side
	o.Price = price
	o.Qty = qty
	o.Seq = seq
}

// reduceQty takes a fill of qty and reports whether the order is exhausted.
// An exhausted order keeps its last positive quantity; the caller removes it.
func (o *Order) reduceQty(qty int64) bool {
	if qty >= o.Qty {
		return true
	}
	o.Qty -= qty
	return false
}

func (o *Order) key() bookKey {
	return bookKey{price: o.Price, seq: o.Seq, id: o.ID}
}
