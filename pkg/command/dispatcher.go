package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/joripage/orderbook-sim/pkg/logging"
	"github.com/joripage/orderbook-sim/pkg/metrics"
	"github.com/joripage/orderbook-sim/pkg/orderbook"
	"github.com/joripage/orderbook-sim/pkg/report"
	"go.uber.org/zap"
)

const maxLineBytes = 1 << 20

// Dispatcher applies parsed commands to a book and renders the outcome.
type Dispatcher struct {
	book     *orderbook.OrderBook
	reporter *report.Reporter
	metrics  *metrics.Collector
}

// NewDispatcher wires a book to a reporter. collector may be nil.
func NewDispatcher(book *orderbook.OrderBook, reporter *report.Reporter, collector *metrics.Collector) *Dispatcher {
	return &Dispatcher{
		book:     book,
		reporter: reporter,
		metrics:  collector,
	}
}

// Execute applies one command. Rejections from the book are returned as-is
// and leave the book unchanged; output failures wrap ErrOutput.
func (d *Dispatcher) Execute(cmd Command) error {
	err := d.execute(cmd)
	if d.metrics != nil {
		d.metrics.ObserveCommand(string(cmd.Kind), err)
		d.metrics.SetResting(d.book.Len())
	}
	return err
}

func (d *Dispatcher) execute(cmd Command) error {
	var (
		results []orderbook.MatchResult
		err     error
	)

	switch cmd.Kind {
	case BUY, SELL:
		results, err = d.book.Insert(cmd.Side, cmd.TimeInForce, cmd.Price, cmd.Qty, cmd.ID)
	case MODIFY:
		results, err = d.book.Modify(cmd.ID, cmd.Side, cmd.Price, cmd.Qty)
	case CANCEL:
		err = d.book.Cancel(cmd.ID)
	case PRINT:
		if werr := d.reporter.Book(d.book.Snapshot()); werr != nil {
			return fmt.Errorf("%w: %w", ErrOutput, werr)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Kind)
	}
	if err != nil {
		return err
	}

	if werr := d.reporter.Trades(results); werr != nil {
		return fmt.Errorf("%w: %w", ErrOutput, werr)
	}
	return nil
}

// Run reads commands line by line until EOF or ctx is done. Invalid lines
// and rejected commands are logged at debug level and skipped; only read
// and write failures stop the run. Reading happens on its own goroutine so a
// cancelled ctx returns even while r is blocked; that goroutine exits once r
// does.
func (d *Dispatcher) Run(ctx context.Context, r io.Reader) error {
	logger := logging.GetLogger(ctx)
	lines, errc := scanLines(ctx, r)

	lineNo := 0
	for {
		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			return <-errc
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++

		cmd, err := Parse(line)
		if errors.Is(err, ErrEmptyLine) {
			continue
		}
		if err != nil {
			logger.Debug("skip line", zap.Int("line", lineNo), zap.Error(err))
			if d.metrics != nil {
				d.metrics.ObserveCommand("UNKNOWN", err)
			}
			continue
		}

		if err := d.Execute(cmd); err != nil {
			if errors.Is(err, ErrOutput) {
				return err
			}
			logger.Debug("command rejected",
				zap.Int("line", lineNo),
				zap.Stringer("command", cmd),
				zap.Error(err),
			)
		}
	}
}

// scanLines feeds lines of r into the returned channel, which is closed after
// the terminal error (nil on EOF) has been sent to errc.
func scanLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}
