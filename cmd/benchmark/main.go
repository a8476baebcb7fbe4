package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/joripage/orderbook-sim/pkg/orderbook"
	"github.com/joripage/orderbook-sim/pkg/report"
)

const (
	minPrice = 100
	maxPrice = 200
	minQty   = 1
	maxQty   = 100
)

type generator struct {
	rnd  *rand.Rand
	live []string
	next int
}

func (g *generator) side() orderbook.Side {
	if g.rnd.Intn(2) == 0 {
		return orderbook.SELL
	}
	return orderbook.BUY
}

func (g *generator) price() int64 {
	return int64(minPrice + g.rnd.Intn(maxPrice-minPrice+1))
}

func (g *generator) qty() int64 {
	return int64(g.rnd.Intn(maxQty-minQty+1) + minQty)
}

// liveID picks a previously inserted id; it may already be filled.
func (g *generator) liveID() string {
	if len(g.live) == 0 {
		return ""
	}
	return g.live[g.rnd.Intn(len(g.live))]
}

func (g *generator) step(ob *orderbook.OrderBook) ([]orderbook.MatchResult, error) {
	switch n := g.rnd.Intn(10); {
	case n < 7:
		g.next++
		id := fmt.Sprintf("ORD-%07d", g.next)
		tif := orderbook.GFD
		if n == 0 {
			tif = orderbook.IOC
		}
		g.live = append(g.live, id)
		return ob.Insert(g.side(), tif, g.price(), g.qty(), id)
	case n < 9:
		return ob.Modify(g.liveID(), g.side(), g.price(), g.qty())
	default:
		return nil, ob.Cancel(g.liveID())
	}
}

func main() {
	var numOrders int
	var seed int64
	flag.IntVar(&numOrders, "orders", 1_000_000, "number of commands to apply")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	ob := orderbook.NewOrderBook(&orderbook.Config{Symbol: "ABC"})
	stats := report.NewStats()
	ob.RegisterTradeCallback(stats.Observe)

	printed := 0
	ob.RegisterTradeCallback(func(results []orderbook.MatchResult) {
		for _, r := range results {
			if printed < 5 {
				printed++
				log.Printf("Match: %s @ %d <=> %s @ %d Qty %d\n",
					r.OrderID, r.Price, r.CounterOrderID, r.CounterPrice, r.Qty)
			}
		}
	})

	g := &generator{rnd: rand.New(rand.NewSource(seed))}
	rejected := 0

	start := time.Now()
	for i := 0; i < numOrders; i++ {
		if _, err := g.step(ob); err != nil {
			rejected++
		}
	}
	elapsed := time.Since(start)

	fmt.Println("--------")
	fmt.Printf("Symbol            : %s\n", ob.Symbol())
	fmt.Printf("Total Commands    : %d\n", numOrders)
	fmt.Printf("Rejected Commands : %d\n", rejected)
	fmt.Printf("Total Matches     : %d\n", stats.Trades)
	fmt.Printf("Total Matched Qty : %s\n", stats.Volume)
	fmt.Printf("VWAP              : %s\n", stats.VWAP().StringFixed(2))
	fmt.Printf("Resting Orders    : %d\n", ob.Len())
	fmt.Printf("Time Taken        : %s\n", elapsed)
	fmt.Printf("Seed              : %d\n", seed)
}
