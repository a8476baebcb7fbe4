package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joripage/orderbook-sim/config"
	"github.com/joripage/orderbook-sim/pkg/command"
	"github.com/joripage/orderbook-sim/pkg/logging"
	"github.com/joripage/orderbook-sim/pkg/metrics"
	"github.com/joripage/orderbook-sim/pkg/orderbook"
	"github.com/joripage/orderbook-sim/pkg/report"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var configFile, input, output string
	flag.StringVar(&configFile, "config-file", "", "Specify config file path")
	flag.StringVar(&input, "input", "", "Read commands from file instead of stdin")
	flag.StringVar(&output, "output", "", "Write trades and book prints to file instead of stdout")
	flag.Parse()

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if input != "" {
		cfg.Input = input
	}
	if output != "" {
		cfg.Output = output
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, err := logging.NewLogger(level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() // nolint
	undo := zap.ReplaceGlobals(logger.Zap().With(zap.String("service", cfg.ServiceName)))
	defer undo()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx = logging.WithSessionID(ctx, logging.NewSessionID())
	ctx = logging.WithLogger(ctx, logging.FromZap(zap.L()))
	log := logging.GetLogger(ctx)

	in, closeIn, err := openInput(cfg.Input)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer closeOut()
	bw := bufio.NewWriter(out)

	book := orderbook.NewOrderBook(&orderbook.Config{Symbol: cfg.Symbol})
	collector := metrics.NewCollector()
	book.RegisterTradeCallback(collector.ObserveTrades)
	stats := report.NewStats()
	book.RegisterTradeCallback(stats.Observe)

	log.Info("orderbook started", zap.String("symbol", cfg.Symbol))

	dispatcher := command.NewDispatcher(book, report.NewReporter(bw), collector)
	runErr := dispatcher.Run(ctx, in)
	if err := bw.Flush(); err != nil && runErr == nil {
		runErr = fmt.Errorf("flush output: %w", err)
	}

	if cfg.PrintStats {
		log.Info("session summary", append(stats.Fields(), zap.Int("resting_orders", book.Len()))...)
	}
	if cfg.MetricsTextfile != "" {
		if err := collector.WriteTextfile(cfg.MetricsTextfile); err != nil {
			log.Warn("write metrics textfile", zap.String("path", cfg.MetricsTextfile), zap.Error(err))
		}
	}

	if runErr != nil {
		log.Error("orderbook stopped", zap.Error(runErr))
		return runErr
	}
	log.Info("orderbook stopped")
	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
