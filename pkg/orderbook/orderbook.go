// file: pkg/orderbook/orderbook.go

package orderbook

import (
	"fmt"
	"math"
	"sync"

	"github.com/gammazero/deque"
	"go.uber.org/zap"
)

// Upper bounds for price and quantity. Per-level sums stay far below int64
// overflow at these limits.
const (
	MaxOrderPrice = math.MaxInt32
	MaxOrderQty   = math.MaxInt32
)

type Config struct {
	Symbol string
	Logger *zap.Logger // defaults to zap.L()
}

// OrderBook is a single-instrument limit order book with price-time priority.
// All exported methods are serialized by one mutex; trade callbacks run while
// it is held and must not call back into the book.
type OrderBook struct {
	symbol string

	orders *registry
	buys   *sideBook
	sells  *sideBook

	seq uint64

	// trades staged by cross in execution order; flush drains them as one
	// batch after crossing ends, so callers and callbacks see the same slice.
	// Reused across calls.
	outbox    deque.Deque[MatchResult]
	callbacks []func([]MatchResult)

	logger *zap.Logger

	mu sync.Mutex
}

func NewOrderBook(cfg *Config) *OrderBook {
	if cfg == nil {
		cfg = &Config{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.L()
	}

	return &OrderBook{
		symbol: cfg.Symbol,
		orders: newRegistry(),
		buys:   newSideBook(BUY),
		sells:  newSideBook(SELL),
		logger: logger.With(zap.String("symbol", cfg.Symbol)),
	}
}

func (ob *OrderBook) Symbol() string {
	return ob.symbol
}

func (ob *OrderBook) RegisterTradeCallback(fn func(results []MatchResult)) {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	ob.callbacks = append(ob.callbacks, fn)
}

// Insert adds a new order and matches it. A rejected insert leaves the book
// untouched and produces no trades.
func (ob *OrderBook) Insert(side Side, tif TimeInForce, price, qty int64, id string) ([]MatchResult, error) {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	if err := ob.validateInsert(side, tif, price, qty, id); err != nil {
		ob.logger.Debug("insert rejected", zap.String("order_id", id), zap.Error(err))
		return nil, fmt.Errorf("insert %q: %w", id, err)
	}

	order := newOrder(id, side, tif, price, qty, ob.nextSeq())
	ob.orders.upsert(order)
	book := ob.sideBook(side)
	book.insert(order)

	switch tif {
	case GFD:
		ob.cross()
	case IOC:
		// only the best order of a side can cross
		if best, ok := book.peekBest(); ok && best.id == id {
			ob.cross()
		}
		ob.expire(order)
	}

	return ob.flush(), nil
}

// Modify replaces side, price and quantity of a resting order. The order
// loses its time priority.
func (ob *OrderBook) Modify(id string, side Side, price, qty int64) ([]MatchResult, error) {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	order, ok := ob.orders.find(id)
	if !ok {
		ob.logger.Debug("modify rejected", zap.String("order_id", id), zap.Error(ErrOrderNotFound))
		return nil, fmt.Errorf("modify %q: %w", id, ErrOrderNotFound)
	}
	if err := validateFields(side, price, qty); err != nil {
		ob.logger.Debug("modify rejected", zap.String("order_id", id), zap.Error(err))
		return nil, fmt.Errorf("modify %q: %w", id, err)
	}

	if !ob.sideBook(order.Side).remove(order) {
		panic(fmt.Sprintf("orderbook: order %q is registered but not resting", id))
	}
	order.modify(side, price, qty, ob.nextSeq())
	ob.sideBook(side).insert(order)
	ob.cross()

	return ob.flush(), nil
}

// Cancel removes a resting order. Cancelling an unknown id changes nothing.
func (ob *OrderBook) Cancel(id string) error {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	order, ok := ob.orders.find(id)
	if !ok {
		ob.logger.Debug("cancel ignored", zap.String("order_id", id))
		return fmt.Errorf("cancel %q: %w", id, ErrOrderNotFound)
	}
	ob.remove(order)
	return nil
}

// Len returns the number of resting orders.
func (ob *OrderBook) Len() int {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	return ob.orders.len()
}

func (ob *OrderBook) validateInsert(side Side, tif TimeInForce, price, qty int64, id string) error {
	if id == "" {
		return ErrInvalidOrderID
	}
	if _, ok := ob.orders.find(id); ok {
		return ErrDuplicateOrderID
	}
	if !tif.valid() {
		return ErrInvalidTimeInForce
	}
	return validateFields(side, price, qty)
}

func validateFields(side Side, price, qty int64) error {
	if !side.valid() {
		return ErrInvalidSide
	}
	if price <= 0 || price > MaxOrderPrice {
		return ErrInvalidOrderPrice
	}
	if qty <= 0 || qty > MaxOrderQty {
		return ErrInvalidOrderQty
	}
	return nil
}

func (ob *OrderBook) nextSeq() uint64 {
	ob.seq++
	return ob.seq
}

func (ob *OrderBook) sideBook(side Side) *sideBook {
	if side == BUY {
		return ob.buys
	}
	return ob.sells
}

// cross matches best bid against best ask until the book no longer crosses.
func (ob *OrderBook) cross() {
	for {
		bk, ok := ob.buys.peekBest()
		if !ok {
			return
		}
		sk, ok := ob.sells.peekBest()
		if !ok || bk.price < sk.price {
			return
		}

		buy, sell := ob.resolve(bk), ob.resolve(sk)
		qty := min(buy.Qty, sell.Qty)
		ob.outbox.PushBack(newMatchResult(buy, sell, qty))

		if buy.reduceQty(qty) {
			ob.remove(buy)
		}
		if sell.reduceQty(qty) {
			ob.remove(sell)
		}
	}
}

// expire drops whatever is left of an IOC order after matching.
func (ob *OrderBook) expire(order *Order) {
	if cur, ok := ob.orders.find(order.ID); ok && cur == order {
		ob.remove(order)
	}
}

func (ob *OrderBook) remove(order *Order) {
	ob.sideBook(order.Side).remove(order)
	ob.orders.erase(order.ID)
}

// resolve maps a side book key back to the registry's order.
func (ob *OrderBook) resolve(k bookKey) *Order {
	o, ok := ob.orders.find(k.id)
	if !ok || o.Seq != k.seq || o.Price != k.price {
		panic(fmt.Sprintf("orderbook: side book key %+v does not match registry", k))
	}
	if o.Qty <= 0 {
		panic(fmt.Sprintf("orderbook: resting order %q has quantity %d", o.ID, o.Qty))
	}
	return o
}

func (ob *OrderBook) flush() []MatchResult {
	if ob.outbox.Len() == 0 {
		return nil
	}

	results := make([]MatchResult, 0, ob.outbox.Len())
	for ob.outbox.Len() > 0 {
		r := ob.outbox.PopFront()
		ob.logger.Debug("trade",
			zap.String("order_id", r.OrderID),
			zap.Int64("price", r.Price),
			zap.String("counter_order_id", r.CounterOrderID),
			zap.Int64("counter_price", r.CounterPrice),
			zap.Int64("qty", r.Qty),
		)
		results = append(results, r)
	}

	for _, cb := range ob.callbacks {
		cb(results)
	}
	return results
}
