package report

import (
	"github.com/joripage/orderbook-sim/pkg/orderbook"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const vwapPlaces = 4

// Stats accumulates session totals. A trade is valued at the price of the
// order that was resting first.
type Stats struct {
	Trades   int64
	Volume   decimal.Decimal
	Notional decimal.Decimal
}

func NewStats() *Stats {
	return &Stats{Volume: decimal.Zero, Notional: decimal.Zero}
}

// Observe is shaped to be registered as a trade callback.
func (s *Stats) Observe(results []orderbook.MatchResult) {
	for _, r := range results {
		s.Trades++
		qty := decimal.NewFromInt(r.Qty)
		s.Volume = s.Volume.Add(qty)
		s.Notional = s.Notional.Add(decimal.NewFromInt(r.Price).Mul(qty))
	}
}

// VWAP is zero until something traded.
func (s *Stats) VWAP() decimal.Decimal {
	if s.Volume.IsZero() {
		return decimal.Zero
	}
	return s.Notional.DivRound(s.Volume, vwapPlaces)
}

func (s *Stats) Fields() []zap.Field {
	return []zap.Field{
		zap.Int64("trades", s.Trades),
		zap.String("volume", s.Volume.String()),
		zap.String("notional", s.Notional.String()),
		zap.String("vwap", s.VWAP().StringFixed(vwapPlaces)),
	}
}
