package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	checkregister "github.com/mmcdougall/ECCheckParser"
	"github.com/mmcdougall/ECCheckParser/archive"
	"github.com/mmcdougall/ECCheckParser/internal/logger"
	"github.com/mmcdougall/ECCheckParser/locate"
	"github.com/mmcdougall/ECCheckParser/model"
	"github.com/mmcdougall/ECCheckParser/render"
	"github.com/mmcdougall/ECCheckParser/treemap"
)

// Treemap canvas, matching the HTML renderer's page size.
const (
	treemapWidth  = 1200
	treemapHeight = 800
)

// options collects the parsed command line.
type options struct {
	csvPath    string
	jsonPath   string
	htmlPath   string
	pngPath    string
	pdfPath    string
	archiveDir string
	tolerance  decimal.Decimal
	workers    int
	strategy   string
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "help", "-h", "--help":
		printUsage()
		return
	}
	packet := os.Args[1]

	fs := flag.NewFlagSet("checkreg", flag.ExitOnError)
	csvPath := fs.String("csv", "", "write the records CSV to `path`")
	jsonPath := fs.String("json", "", "write the records JSON to `path`")
	htmlPath := fs.String("html", "", "write the payee treemap HTML to `path`")
	pngPath := fs.String("png", "", "write the payee treemap PNG to `path`")
	pdfPath := fs.String("pdf", "", "write the register section to its own PDF at `path`")
	archiveDir := fs.String("archive", "", "write the full register archive under `dir`")
	tolStr := fs.String("tolerance", "0.00", "largest accepted difference from the stated total")
	workers := fs.Int("workers", 1, "how many register sections parse concurrently")
	strategy := fs.String("strategy", treemap.DefaultStrategy, "treemap layout: quadtree or squarified")
	verbose := fs.Bool("v", false, "verbose logging")
	fs.Parse(os.Args[2:])

	log := logger.New().Level(zerolog.InfoLevel)
	if *verbose {
		log = log.Level(zerolog.DebugLevel)
	}

	tol, err := decimal.NewFromString(*tolStr)
	if err != nil {
		log.Error().Str("tolerance", *tolStr).Msg("tolerance is not a decimal amount")
		os.Exit(2)
	}

	opts := options{
		csvPath:    *csvPath,
		jsonPath:   *jsonPath,
		htmlPath:   *htmlPath,
		pngPath:    *pngPath,
		pdfPath:    *pdfPath,
		archiveDir: *archiveDir,
		tolerance:  tol,
		workers:    *workers,
		strategy:   *strategy,
	}
	os.Exit(run(packet, opts, log))
}

func printUsage() {
	fmt.Println("checkreg extracts and reconciles a city agenda packet's check register")
	fmt.Println("\nUsage:")
	fmt.Println("  checkreg <packet.pdf> [options]")
	fmt.Println("\nOptions:")
	fmt.Println("  -csv path        write the records CSV")
	fmt.Println("  -json path       write the records JSON")
	fmt.Println("  -html path       write the payee treemap HTML")
	fmt.Println("  -png path        write the payee treemap PNG")
	fmt.Println("  -pdf path        write the register section to its own PDF")
	fmt.Println("  -archive dir     write the full register archive (PDF, chunks, CSV, manifest)")
	fmt.Println("  -tolerance amt   largest accepted difference from the stated total (default 0.00)")
	fmt.Println("  -workers n       how many register sections parse concurrently (default 1)")
	fmt.Println("  -strategy name   treemap layout: quadtree or squarified")
	fmt.Println("  -v               verbose logging")
	fmt.Println("\nExit status: 0 reconciled, 1 a period failed reconciliation, 2 no register or hard error.")
}

// run drives the pipeline and returns the process exit code.
func run(packet string, opts options, log zerolog.Logger) int {
	log.Debug().Str("packet", packet).Msg("starting extraction")

	rep, warnings, err := checkregister.Open(packet).
		Tolerance(opts.tolerance).
		Workers(opts.workers).
		Strategy(opts.strategy).
		Report()
	if err != nil {
		if errors.Is(err, locate.ErrNoRegister) {
			log.Error().Str("packet", packet).Msg("no check register section found")
		} else {
			log.Error().Err(err).Msg("extraction failed")
		}
		return 2
	}

	for _, w := range warnings {
		log.Warn().Str("type", string(w.Type)).Msg(w.Message)
	}

	printSummary(rep)

	if err := writeOutputs(packet, opts, rep, log); err != nil {
		log.Error().Err(err).Msg("output failed")
		return 2
	}

	for _, res := range rep.Results {
		if !res.Passed {
			return 1
		}
	}
	return 0
}

// printSummary writes the per-period reconciliation lines to stdout.
func printSummary(rep *checkregister.Report) {
	for _, res := range rep.Results {
		status := "OK"
		if !res.Passed {
			status = "FAILED"
		}
		fmt.Printf("%s %s: rows=%d computed=$%s stated=$%s delta=$%s low_confidence=%d\n",
			res.Period.Label(), status, res.RecordCount,
			model.FormatAmount(res.Computed), model.FormatAmount(res.Stated),
			model.FormatAmount(res.Delta), res.LowConfidence)
	}
	fmt.Printf("total $%s across %d rows\n",
		model.FormatAmount(rep.Total), len(rep.Parse.Records))
	if n := len(rep.Parse.Errors); n > 0 {
		fmt.Printf("%d rows failed to parse\n", n)
	}
}

// writeOutputs produces every artifact the command line asked for.
func writeOutputs(packet string, opts options, rep *checkregister.Report, log zerolog.Logger) error {
	if opts.csvPath != "" {
		if err := render.WriteCSVFile(opts.csvPath, rep.Parse.Records); err != nil {
			return err
		}
		log.Info().Str("path", opts.csvPath).Msg("wrote CSV")
	}

	if opts.jsonPath != "" {
		if err := render.WriteRecordsJSONFile(opts.jsonPath, rep.Parse.Records); err != nil {
			return err
		}
		log.Info().Str("path", opts.jsonPath).Msg("wrote JSON")
	}

	if opts.htmlPath != "" || opts.pngPath != "" {
		bounds := model.NewRect(0, 0, treemapWidth, treemapHeight)
		node, err := treemap.Build(rep.Aggregates, bounds, opts.strategy)
		if err != nil {
			return fmt.Errorf("treemap layout: %w", err)
		}
		if opts.htmlPath != "" {
			title := "Check register " + spanTitle(rep)
			if err := render.WriteTreemapHTMLFile(opts.htmlPath, node, title); err != nil {
				return err
			}
			log.Info().Str("path", opts.htmlPath).Msg("wrote treemap HTML")
		}
		if opts.pngPath != "" {
			if err := render.WriteTreemapPNGFile(opts.pngPath, node, treemapWidth, treemapHeight); err != nil {
				return err
			}
			log.Info().Str("path", opts.pngPath).Msg("wrote treemap PNG")
		}
	}

	if opts.pdfPath != "" {
		if err := archive.ExtractRegisterPDF(packet, opts.pdfPath, rep.Parse.Ranges[0]); err != nil {
			return err
		}
		log.Info().Str("path", opts.pdfPath).Msg("wrote register PDF")
	}

	if opts.archiveDir != "" {
		ctx := logger.WithContext(context.Background(), log)
		m, err := archive.Build(ctx, packet, opts.archiveDir)
		if err != nil {
			return err
		}
		log.Info().Str("run_id", m.RunID).Str("dir", opts.archiveDir).Msg("archive updated")
	}

	return nil
}

// spanTitle labels the report by its period span.
func spanTitle(rep *checkregister.Report) string {
	var periods []model.Period
	for _, rng := range rep.Parse.Ranges {
		periods = append(periods, rng.Periods...)
	}
	return model.SpanLabel(model.SortPeriods(periods))
}
