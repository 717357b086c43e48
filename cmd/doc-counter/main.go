package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"doc-counter/pkg/config"
	"doc-counter/pkg/export"
	"doc-counter/pkg/extract"
	"doc-counter/pkg/fetch"
	"doc-counter/pkg/inspect"
	"doc-counter/pkg/metrics"
	"doc-counter/pkg/models"
	"doc-counter/pkg/registry"
	"doc-counter/pkg/runner"
)

const version = "0.3.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		runBatch(os.Args[2:])
	case "validate":
		runValidate(os.Args[2:])
	case "version":
		fmt.Printf("doc-counter %s\n", version)
	case "-h", "--help", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	printUsageTo(os.Stdout)
}

// printUsageTo writes usage information to the provided writer.
func printUsageTo(w io.Writer) {
	fmt.Fprintln(w, `doc-counter - Batch document page counter

Usage:
  doc-counter <command> [options]

Commands:
  run         Download every linked document, count its pages and export the results
  validate    Validate configuration file
  version     Show version info

Run 'doc-counter <command> -h' for command-specific help.`)
}

// newLogger builds the shared logger with the requested level.
func newLogger(levelStr string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05.000"})
	log.SetLevel(logrus.InfoLevel)

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		log.Warnf("Invalid log level %q, using info", levelStr)
	} else {
		log.SetLevel(level)
	}
	return log
}

// loadConfig loads the config file when given, otherwise starts from
// defaults. Validation warnings are returned alongside.
func loadConfig(path string) (*config.AppConfig, []string, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}
	warnings, err := cfg.Validate()
	if err != nil {
		return nil, warnings, err
	}
	return cfg, warnings, nil
}

// runBatch handles the run subcommand
func runBatch(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configFile := fs.String("config", "", "Path to config file (optional)")
	linksFile := fs.String("links", "", "File containing document links (text, csv or html)")
	format := fs.String("format", "auto", "Input format: auto, text, csv, html")
	output := fs.String("output", "", "Export file path (overrides config export_filename)")
	jsonOutput := fs.String("json-output", "", "Also export JSONL results to this path (optional)")
	logLevel := fs.String("loglevel", "info", "Log level (debug, info, warn, error, fatal)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: doc-counter run [options]\n\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  doc-counter run -links links.txt\n")
		fmt.Fprintf(os.Stderr, "  doc-counter run -links sheet.csv -output counts.csv\n")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *linksFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -links is required")
		fs.Usage()
		os.Exit(1)
	}

	log := newLogger(*logLevel)

	cfg, warnings, err := loadConfig(*configFile)
	for _, w := range warnings {
		log.Warn(w)
	}
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if *output != "" {
		cfg.ExportFilename = *output
	}

	os.Exit(executeBatch(cfg, *linksFile, *format, *jsonOutput, log))
}

// executeBatch performs the full pipeline: extract links, queue, run,
// export. Returns an exit code.
func executeBatch(cfg *config.AppConfig, linksFile, format, jsonOutput string, log *logrus.Logger) int {
	candidates, err := readCandidates(linksFile, format)
	if err != nil {
		// Boundary-level failure: reported once, no tasks created
		log.Errorf("Failed to extract links from %s: %v", linksFile, err)
		return 1
	}
	log.WithField("candidates", len(candidates)).Info("Extracted candidate links")

	reg := registry.NewRegistry(cfg.AllowedSchemes, cfg.DefaultDisplayName, log)
	appended := reg.Append(candidates)
	if dropped := len(candidates) - appended; dropped > 0 {
		log.WithField("dropped", dropped).Info("Dropped candidates without an allowed scheme")
	}
	if appended == 0 {
		log.Warn("No tasks to process")
		return 0
	}

	client := fetch.NewClient(cfg.HTTPClientSettings, log)
	fetcher := fetch.NewFetcher(client, log)
	inspector := inspect.NewPDFInspector(log)
	r := runner.NewRunner(reg, fetcher, inspector, metrics.NewMetrics(), log)
	r.OnUpdate = func(task models.Task) {
		if task.Status == models.StatusFailed {
			// Inline, per-task: a failure never stops the batch
			log.WithField("file", task.DisplayName).Warnf("Task failed: %s", task.Error)
		}
	}

	sum, err := r.Run(context.Background())
	if err != nil {
		log.Errorf("Batch run failed to start: %v", err)
		return 1
	}
	log.Infof("Batch finished: %d completed, %d failed, %d skipped in %v",
		sum.Completed, sum.Failed, sum.Skipped, sum.Duration)

	snapshot := reg.Snapshot()
	if err := export.WriteCSV(snapshot, cfg.ExportFilename); err != nil {
		log.Errorf("CSV export failed: %v", err)
		return 1
	}
	log.WithField("file", cfg.ExportFilename).Info("Results exported")

	if jsonOutput != "" {
		jw, err := export.NewJSONWriter(jsonOutput)
		if err != nil {
			log.Errorf("JSONL export failed: %v", err)
			return 1
		}
		if err := jw.Write(export.Records(snapshot)); err != nil {
			jw.Close()
			log.Errorf("JSONL export failed: %v", err)
			return 1
		}
		if err := jw.Close(); err != nil {
			log.Errorf("JSONL export failed: %v", err)
			return 1
		}
		log.WithField("file", jsonOutput).Info("JSONL results exported")
	}

	if sum.Failed > 0 {
		return 2 // Completed, but with per-task failures left in the export
	}
	return 0
}

// readCandidates reads the links file and extracts candidate URLs
// according to format ("auto" picks by file extension).
func readCandidates(path, format string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read links file: %w", err)
	}

	if format == "auto" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv":
			format = "csv"
		case ".html", ".htm":
			format = "html"
		default:
			format = "text"
		}
	}

	switch format {
	case "text":
		return extract.FromText(string(data)), nil
	case "csv":
		return extract.FromCSV(bytes.NewReader(data))
	case "html":
		return extract.FromHTML(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

// runValidate handles the validate subcommand
func runValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	configFile := fs.String("config", "config.yaml", "Path to config file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: doc-counter validate [options]\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	os.Exit(doValidate(*configFile, os.Stdout, os.Stderr))
}

// doValidate performs validation and writes output to provided writers.
// Returns exit code (0 = success, 1 = error).
func doValidate(configPath string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	warnings, err := cfg.Validate()
	for _, w := range warnings {
		fmt.Fprintf(stdout, "WARN: %s\n", w)
	}
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, "OK: Configuration valid")
	return 0
}
