package orderbook

// MatchResult is one crossing step. OrderID is the order that arrived first
// (smaller sequence) regardless of side; each order is reported at its own
// resting price.
type MatchResult struct {
	OrderID        string
	Price          int64
	CounterOrderID string
	CounterPrice   int64
	Qty            int64
	Side           Side // side of OrderID
}

func newMatchResult(buy, sell *Order, qty int64) MatchResult {
	first, second := buy, sell
	if sell.Seq < buy.Seq {
		first, second = sell, buy
	}

	return MatchResult{
		OrderID:        first.ID,
		Price:          first.Price,
		CounterOrderID: second.ID,
		CounterPrice:   second.Price,
		Qty:            qty,
		Side:           first.Side,
	}
}

func (r MatchResult) BuyOrderID() string {
	if r.Side == BUY {
		return r.OrderID
	}
	return r.CounterOrderID
}

func (r MatchResult) SellOrderID() string {
	if r.Side == SELL {
		return r.OrderID
	}
	return r.CounterOrderID
}
