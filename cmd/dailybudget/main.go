package main

import (
	"fmt"
	"os"
	"time"

	"dailybudget/internal/cli"
	"dailybudget/internal/core"
	"dailybudget/internal/log"
	"dailybudget/internal/seed"
)

const usage = "usage: dailybudget cash|calories [records-file]"

func main() {
	// Load .env file for local development
	cli.LoadEnvFile()

	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"))

	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	kind := os.Args[1]

	recordsFile := ""
	if len(os.Args) == 3 {
		recordsFile = os.Args[2]
	}
	cfg := cli.LoadAndValidateConfig(logger, recordsFile)

	var records []core.Record
	if cfg.RecordsFile != "" {
		seedLog := logger.WithComponent(log.ComponentSeed)
		var err error
		records, err = seed.LoadFile(cfg.RecordsFile, time.Now())
		if err != nil {
			seedLog.Error("Failed to load records", cli.LoadErrorFields(cfg.RecordsFile, err).ToSlice()...)
			os.Exit(1)
		}
		seedLog.Debug("Records loaded", log.FieldFile, cfg.RecordsFile, log.FieldRecords, len(records))
	}

	calcLog := logger.WithComponent(log.ComponentCalculator)
	summary, err := cli.Report(kind, cfg, records, time.Now)
	if err != nil {
		calcLog.Error("Failed to build report", cli.ReportFields(kind, cfg).WithError(err).ToSlice()...)
		os.Exit(1)
	}
	calcLog.Debug("Report built",
		log.FieldKind, kind,
		log.FieldToday, summary.Today.String(),
		log.FieldWeek, summary.Week.String())

	fmt.Println(summary)
}
