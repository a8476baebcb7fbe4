package metrics

import (
	"github.com/joripage/orderbook-sim/pkg/orderbook"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
)

// Collector holds the simulator's counters on its own registry so several
// books (or tests) never collide on the default one.
type Collector struct {
	registry *prometheus.Registry

	CommandsTotal       *prometheus.CounterVec
	TradesTotal         prometheus.Counter
	TradedQuantityTotal prometheus.Counter
	RestingOrders       prometheus.Gauge
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		CommandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orderbook_commands_total",
				Help: "Total number of commands applied to the book",
			},
			[]string{"command", "result"},
		),
		TradesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "orderbook_trades_total",
				Help: "Total number of trades printed",
			},
		),
		TradedQuantityTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "orderbook_traded_quantity_total",
				Help: "Total quantity traded",
			},
		),
		RestingOrders: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "orderbook_resting_orders",
				Help: "Number of orders resting in the book",
			},
		),
	}

	c.registry.MustRegister(c.CommandsTotal, c.TradesTotal, c.TradedQuantityTotal, c.RestingOrders)
	return c
}

// ObserveCommand counts one command by outcome.
func (c *Collector) ObserveCommand(command string, err error) {
	result := ResultAccepted
	if err != nil {
		result = ResultRejected
	}
	c.CommandsTotal.WithLabelValues(command, result).Inc()
}

// ObserveTrades is shaped to be registered as a trade callback.
func (c *Collector) ObserveTrades(results []orderbook.MatchResult) {
	for _, r := range results {
		c.TradesTotal.Inc()
		c.TradedQuantityTotal.Add(float64(r.Qty))
	}
}

func (c *Collector) SetResting(n int) {
	c.RestingOrders.Set(float64(n))
}

// WriteTextfile writes all metrics in the text exposition format, for the
// node exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
