package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/insightdelivered/hsbc-statement-converter/internal/api"
	"github.com/insightdelivered/hsbc-statement-converter/internal/config"
	"github.com/insightdelivered/hsbc-statement-converter/internal/observability"
	"github.com/insightdelivered/hsbc-statement-converter/internal/pipeline"
)

const version = "2.0.0"

func main() {
	inputFlag := flag.String("input", "", "Glob pattern for input files (e.g. 'statements/*.pdf')")
	ledgerFlag := flag.Bool("ledger", false, "Transform current account CSV exports instead of parsing statements")
	lenientFlag := flag.Bool("lenient", false, "Do not fail when no balance-payment record is found")
	decimalCommaFlag := flag.Bool("decimal-comma", false, "Render amounts with a decimal comma")
	serveFlag := flag.Bool("serve", false, "Start the HTTP API instead of processing files")
	portFlag := flag.Int("port", 0, "HTTP port for --serve (overrides PORT env)")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `HSBC Statement Converter

Converts HSBC credit card statement PDFs into semicolon-delimited files,
validating extracted transactions against the statement's printed totals.
Also rewrites HSBC current account CSV exports for WISO Mein Geld import.

Usage:
  hsbc-statement-converter --input '<glob>' [flags]
  hsbc-statement-converter --serve [flags]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Convert all statements in a directory
  hsbc-statement-converter --input 'statements/*.pdf'

  # Transform current account exports
  hsbc-statement-converter --ledger --input 'exports/*.csv'

  # Run the HTTP API
  hsbc-statement-converter --serve --port 8080
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("hsbc-statement-converter v%s\n", version)
		os.Exit(0)
	}

	cfg := config.Load()
	if *lenientFlag {
		cfg.LenientNoiseFilter = true
	}
	if *decimalCommaFlag {
		cfg.DecimalComma = true
	}
	if *portFlag != 0 {
		cfg.Port = *portFlag
	}

	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	converter := pipeline.New(pipeline.Options{
		LenientNoiseFilter: cfg.LenientNoiseFilter,
		DecimalComma:       cfg.DecimalComma,
	}, logger)

	if *serveFlag {
		serve(cfg, converter, logger)
		return
	}

	if *inputFlag == "" {
		flag.Usage()
		os.Exit(2)
	}

	paths, err := filepath.Glob(*inputFlag)
	if err != nil {
		logger.Fatal("invalid input pattern", zap.String("pattern", *inputFlag), zap.Error(err))
	}
	if len(paths) == 0 {
		logger.Fatal("no files match input pattern", zap.String("pattern", *inputFlag))
	}

	results := converter.RunBatch(paths, *ledgerFlag)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	logger.Info("batch finished",
		zap.Int("files", len(results)),
		zap.Int("failed", failed))

	if failed > 0 {
		os.Exit(1)
	}
}

func serve(cfg *config.Config, converter *pipeline.Converter, logger *zap.Logger) {
	app := fiber.New(fiber.Config{
		BodyLimit: 32 << 20, // statements upload as multipart PDFs
	})

	h := &api.Handler{
		Converter: converter,
		Log:       logger,
		StaticDir: cfg.StaticDir,
	}
	h.Register(app)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("starting HTTP API", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
