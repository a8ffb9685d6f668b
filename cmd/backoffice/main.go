package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fstore/backoffice/internal/apiclient"
	"github.com/fstore/backoffice/internal/config"
	"github.com/fstore/backoffice/internal/filter"
	"github.com/fstore/backoffice/internal/notify"
	"github.com/fstore/backoffice/internal/order"
	"github.com/fstore/backoffice/internal/report"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("service", "backoffice").Logger()

	log.Info().Msg("Back office starting...")

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	loc, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.Report.Timezone).Msg("Failed to load report timezone")
	}

	client, err := apiclient.New(cfg.API.BaseURL, cfg.API.Timeout)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create API client")
	}

	ctx := context.Background()
	notifier := notify.LogNotifier{}

	store := order.NewStore()
	orders := order.NewController(order.NewService(client), store, notifier)
	if err := orders.FetchAll(ctx); err != nil {
		os.Exit(1)
	}
	log.Info().Int("orders", store.Len()).Msg("Order collection loaded")

	reports := report.NewController(report.NewService(client), notifier, nil, loc)
	if err := reports.SetBucket(ctx, filter.Today); err != nil {
		os.Exit(1)
	}

	dateRange, err := reports.DateRange()
	if err != nil {
		os.Exit(1)
	}

	pdfPath := filepath.Join(cfg.Report.PDFDir, "customer-report.pdf")
	out, err := os.Create(pdfPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", pdfPath).Msg("Failed to create report file")
	}
	defer out.Close()

	if err := report.WritePDF(out, reports.Rows(), dateRange.Start, dateRange.End); err != nil {
		log.Fatal().Err(err).Msg("Failed to write report PDF")
	}

	log.Info().Str("path", pdfPath).Int("rows", len(reports.Rows())).Msg("Customer report exported")
}
