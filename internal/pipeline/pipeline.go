// Package pipeline glues the conversion stages together: extract page
// text, parse, reconcile, write. Each input file is processed to
// completion independently; a failure on one file never stops the batch.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/insightdelivered/hsbc-statement-converter/internal/extractor"
	"github.com/insightdelivered/hsbc-statement-converter/internal/ledger"
	"github.com/insightdelivered/hsbc-statement-converter/internal/models"
	"github.com/insightdelivered/hsbc-statement-converter/internal/parser"
	"github.com/insightdelivered/hsbc-statement-converter/internal/reconcile"
	"github.com/insightdelivered/hsbc-statement-converter/internal/writer"
)

// Options configure a conversion run.
type Options struct {
	LenientNoiseFilter bool
	DecimalComma       bool
}

// Result records the outcome of one input file.
type Result struct {
	Input  string
	Output string
	Count  int
	Err    error
}

// Converter runs the statement pipeline end to end.
type Converter struct {
	opts Options
	log  *zap.Logger
}

// New returns a Converter with the given options. A nil logger disables
// logging.
func New(opts Options, log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{opts: opts, log: log}
}

// ConvertPages runs parsing and reconciliation over pre-extracted page
// text. This is the core shared by the CLI and the HTTP API.
func (c *Converter) ConvertPages(pages []string) (*models.Statement, error) {
	p := &parser.CreditCardParser{LenientNoise: c.opts.LenientNoiseFilter}
	stmt, err := p.Parse(pages)
	if err != nil {
		return nil, err
	}
	if err := reconcile.Check(stmt.Summary, stmt.Transactions); err != nil {
		return nil, err
	}
	return stmt, nil
}

// ConvertFile converts one statement PDF and writes the delimited output
// next to the input. No output file is written if any stage fails.
func (c *Converter) ConvertFile(inputPath string) Result {
	res := Result{Input: inputPath}

	pages, err := extractor.ExtractText(inputPath)
	if err != nil {
		res.Err = err
		return res
	}
	c.log.Debug("extracted statement text",
		zap.String("input", inputPath),
		zap.Int("pages", len(pages)))

	stmt, err := c.ConvertPages(pages)
	if err != nil {
		res.Err = err
		return res
	}

	outPath := writer.OutputPath(inputPath)
	w := &writer.CSVWriter{DecimalComma: c.opts.DecimalComma}
	if err := w.WriteToFile(outPath, stmt.Transactions); err != nil {
		res.Err = err
		return res
	}

	res.Output = outPath
	res.Count = len(stmt.Transactions)
	return res
}

// TransformLedgerFile rewrites one current account export file.
func (c *Converter) TransformLedgerFile(inputPath string) Result {
	res := Result{Input: inputPath}
	outPath, err := ledger.TransformFile(inputPath)
	if err != nil {
		res.Err = err
		return res
	}
	res.Output = outPath
	return res
}

// RunBatch processes each input file independently and collects the
// outcomes. Failed files are logged and the batch continues.
func (c *Converter) RunBatch(paths []string, ledgerMode bool) []Result {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		var res Result
		if ledgerMode {
			res = c.TransformLedgerFile(path)
		} else {
			res = c.ConvertFile(path)
		}

		if res.Err != nil {
			c.log.Error("file failed",
				zap.String("input", res.Input),
				zap.Error(res.Err))
		} else {
			c.log.Info("file converted",
				zap.String("input", res.Input),
				zap.String("output", res.Output),
				zap.Int("transactions", res.Count))
		}
		results = append(results, res)
	}
	return results
}
