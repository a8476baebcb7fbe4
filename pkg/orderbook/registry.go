package orderbook

// registry owns the mutable state of every live order.
type registry struct {
	orders map[string]*Order
}

func newRegistry() *registry {
	return &registry{orders: make(map[string]*Order)}
}

func (r *registry) upsert(o *Order) {
	r.orders[o.ID] = o
}

func (r *registry) find(id string) (*Order, bool) {
	o, ok := r.orders[id]
	return o, ok
}

func (r *registry) erase(id string) {
	delete(r.orders, id)
}

func (r *registry) len() int {
	return len(r.orders)
}
