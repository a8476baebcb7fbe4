package orderbook

// PriceLevel is the aggregated resting quantity at one price.
type PriceLevel struct {
	Price int64
	Qty   int64
}

// Snapshot lists sell levels ascending and buy levels descending by price.
type Snapshot struct {
	Sells []PriceLevel
	Buys  []PriceLevel
}

func (s Snapshot) Empty() bool {
	return len(s.Sells) == 0 && len(s.Buys) == 0
}

func (ob *OrderBook) Snapshot() Snapshot {
	return ob.Depth(0)
}

// Depth returns at most levels price levels per side; levels <= 0 means all.
func (ob *OrderBook) Depth(levels int) Snapshot {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	return Snapshot{
		Sells: ob.levels(ob.sells, levels),
		Buys:  ob.levels(ob.buys, levels),
	}
}

func (ob *OrderBook) BestBid() (PriceLevel, bool) {
	return ob.best(ob.buys)
}

func (ob *OrderBook) BestAsk() (PriceLevel, bool) {
	return ob.best(ob.sells)
}

func (ob *OrderBook) best(sb *sideBook) (PriceLevel, bool) {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	levels := ob.levels(sb, 1)
	if len(levels) == 0 {
		return PriceLevel{}, false
	}
	return levels[0], true
}

// levels walks a side in priority order, so equal prices are adjacent.
func (ob *OrderBook) levels(sb *sideBook, limit int) []PriceLevel {
	var out []PriceLevel
	sb.walk(func(k bookKey) bool {
		o := ob.resolve(k)
		if n := len(out); n > 0 && out[n-1].Price == k.price {
			out[n-1].Qty += o.Qty
			return true
		}
		if limit > 0 && len(out) == limit {
			return false
		}
		out = append(out, PriceLevel{Price: k.price, Qty: o.Qty})
		return true
	})
	return out
}
