package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/hamed0406/healthpoint/internal/availability"
	"github.com/hamed0406/healthpoint/internal/config"
	"github.com/hamed0406/healthpoint/internal/httpapi"
	"github.com/hamed0406/healthpoint/internal/logging"
	"github.com/hamed0406/healthpoint/internal/probe"
	"github.com/hamed0406/healthpoint/internal/report"
	"github.com/hamed0406/healthpoint/internal/repo/memory"
	"github.com/hamed0406/healthpoint/internal/scheduler"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <path_to_yaml_file>\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	os.Exit(run(flag.Arg(0)))
}

func run(path string) int {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		return 1
	}
	defer logger.Sync()

	endpoints, err := config.LoadEndpoints(path)
	if err != nil {
		logger.Error("config_load_error", zap.String("path", path), zap.Error(err))
		fmt.Fprintln(os.Stderr, "config:", err)
		return 1
	}
	logger.Info("config_loaded", zap.String("path", path), zap.Int("endpoints", len(endpoints)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	agg := availability.New()
	rounds := memory.New(0)

	apiDone := make(chan struct{})
	if cfg.StatusAddr != "" {
		api := httpapi.NewServer(logger, agg, rounds)
		go func() {
			defer close(apiDone)
			if err := api.ListenAndServe(ctx, cfg.StatusAddr); err != nil {
				logger.Error("status_api_error", zap.Error(err))
			}
		}()
	} else {
		close(apiDone)
	}

	loop := scheduler.NewLoop(
		logger,
		endpoints,
		probe.NewHTTPChecker(cfg.HTTPTimeout, cfg.LatencyThreshold),
		agg,
		report.NewPrinter(os.Stdout),
		rounds,
		cfg.Interval,
		cfg.Concurrency,
	)
	loop.Run(ctx)
	<-apiDone
	return 0
}
