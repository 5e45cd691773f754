package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/maheswardileep829-blip/stock-analyzer/internal/collector"
	"github.com/maheswardileep829-blip/stock-analyzer/internal/config"
	"github.com/maheswardileep829-blip/stock-analyzer/internal/logger"
	"github.com/maheswardileep829-blip/stock-analyzer/internal/prompt"
	"github.com/maheswardileep829-blip/stock-analyzer/internal/recorder"
	"github.com/maheswardileep829-blip/stock-analyzer/internal/report"
)

func main() {
	logger.Init()

	cfgPath := flag.String("config", "configs/config.yaml", "config file path")
	tickers := flag.String("tickers", "", "whitespace-separated ticker symbols (skips the prompt)")
	outPath := flag.String("out", "", "CSV output path override")
	parallel := flag.Int("parallel", 0, "max concurrent fetches override (1-10)")
	flag.Parse()

	// Load config
	path := *cfgPath
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}
	cfg, err := config.Load(path)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("load config")
	}
	if *outPath != "" {
		cfg.Output.CSVPath = *outPath
	}
	if *parallel != 0 {
		cfg.Batch.MaxParallel = *parallel
	}
	if err := cfg.Validate(); err != nil {
		logger.L().Fatal().Err(err).Msg("config validation")
	}

	// Collect tickers
	var symbols []string
	if *tickers != "" {
		symbols, err = prompt.ParseSymbols(*tickers)
	} else {
		fmt.Println(report.Banner("Stock Analyzer"))
		symbols, err = prompt.ReadSymbols(os.Stdin, os.Stdout)
	}
	if err != nil {
		logger.L().Fatal().Err(err).Msg("no tickers to analyze")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewQuoteAPIFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	logger.L().Info().
		Str("source", fetcher.Name()).
		Int("tickers", len(symbols)).
		Int("lookback_days", cfg.DataSource.LookbackDays).
		Msg("starting analysis")

	// Run the batch
	col := collector.NewCollector(fetcher, cfg.DataSource.LookbackDays, cfg.Batch.MaxParallel)
	rs, err := col.AnalyzeAll(ctx, symbols)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("batch aborted")
	}

	// Record run history (optional)
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			logger.L().Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}
	if runID, err := rec.RecordRun(rs); err != nil {
		logger.L().Warn().Err(err).Msg("record run failed")
	} else if runID != "" {
		logger.L().Info().Str("run_id", runID).Msg("run recorded")
	}

	fmt.Print(report.Render(rs))

	if len(rs.Metrics) == 0 {
		fmt.Println("\nNo valid tickers to analyze.")
		return
	}

	if err := report.WriteCSV(cfg.Output.CSVPath, rs); err != nil {
		logger.L().Fatal().Err(err).Msg("write csv")
	}
	fmt.Printf("\n💾 Results saved to: %s\n", cfg.Output.CSVPath)
}
