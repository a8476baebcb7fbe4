package report

import (
	"fmt"
	"io"

	"github.com/joripage/orderbook-sim/pkg/orderbook"
)

// Reporter renders trades and book snapshots in the console format:
//
//	TRADE b1 10 5 s1 9 5
//	SELL:
//	9 3
//	BUY:
type Reporter struct {
	w io.Writer
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

func (r *Reporter) Trades(results []orderbook.MatchResult) error {
	for _, m := range results {
		_, err := fmt.Fprintf(r.w, "TRADE %s %d %d %s %d %d\n",
			m.OrderID, m.Price, m.Qty, m.CounterOrderID, m.CounterPrice, m.Qty)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) Book(s orderbook.Snapshot) error {
	if _, err := io.WriteString(r.w, "SELL:\n"); err != nil {
		return err
	}
	if err := r.levels(s.Sells); err != nil {
		return err
	}
	if _, err := io.WriteString(r.w, "BUY:\n"); err != nil {
		return err
	}
	return r.levels(s.Buys)
}

func (r *Reporter) levels(levels []orderbook.PriceLevel) error {
	for _, l := range levels {
		if _, err := fmt.Fprintf(r.w, "%d %d\n", l.Price, l.Qty); err != nil {
			return err
		}
	}
	return nil
}
