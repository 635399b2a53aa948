package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kiyo-astro/heavens-above/internal/heavens"
	"github.com/kiyo-astro/heavens-above/internal/metrics"
	"github.com/kiyo-astro/heavens-above/internal/output"
	"github.com/kiyo-astro/heavens-above/internal/passes"
)

func main() {
	a, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(a.Verbose),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, a, logger)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, a args, logger *slog.Logger) int {
	cfg := loadClientConfig(logger)
	client := heavens.NewClient(cfg.BaseURL, logger,
		heavens.WithTimeout(cfg.Timeout),
		heavens.WithUserAgent(cfg.UserAgent),
	)
	retriever := passes.NewRetriever(client, logger)

	if path := os.Getenv("PASSCHART_METRICS_FILE"); path != "" {
		defer func() {
			if err := metrics.WriteTextfile(path); err != nil {
				logger.Warn("failed to write metrics file", "path", path, "error", err)
			}
		}()
	}

	res, err := retriever.Retrieve(ctx, passes.Request{
		SatelliteID: a.SatelliteID,
		Observer:    a.Observer,
		Timestamp:   a.Date,
		Timezone:    a.Timezone,
		ImageSize:   a.ImageSize,
	})
	if err != nil {
		logger.Error("chart retrieval failed", "error", err)
		return 1
	}

	if err := output.WriteFile(a.OutputPath, res.Image); err != nil {
		logger.Error("failed to write chart", "path", a.OutputPath, "error", err)
		return 1
	}

	logger.Info("chart written",
		"path", a.OutputPath,
		"source", string(res.Source),
		"bytes", len(res.Image),
		"target_mjd", res.TargetMJD,
	)
	return 0
}
