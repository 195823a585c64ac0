package main

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/zombor/receipt-parser/internal/exercises"
	"github.com/zombor/receipt-parser/internal/receipt"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// Check for version flag before parsing other flags
	for _, arg := range args {
		if arg == "--version" || arg == "-version" || arg == "-v" {
			fmt.Fprintln(stdout, version)
			return 0
		}
	}

	fs := ff.NewFlagSet("receipt-parser")
	var (
		receiptPath = fs.StringLong("receipt", "raw.txt", "Receipt text file to parse")
		skipTasks   = fs.BoolLong("skip-tasks", "Do not print the regex task results")
		demos       = fs.BoolLong("demos", "Also print the interface and sorting demos")
		verbose     = fs.BoolLong("verbose", "Log debug details to stderr")
		_           = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix("RECEIPT_PARSER"),
	); err != nil {
		fmt.Fprintf(stderr, "%s\n", ffhelp.Flags(fs))
		if errors.Is(err, ff.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	if !*skipTasks {
		fmt.Fprintln(stdout, "=== RegEx exercises demo (tasks 1–10) ===")
		if err := printJSON(stdout, exercises.RegexDemo()); err != nil {
			slog.Error("Failed to print regex demo", "error", err)
			return 1
		}
	}

	if *demos {
		fmt.Fprintln(stdout, "\n=== Interface and sorting demos ===")
		for _, line := range exercises.MoversDemo() {
			fmt.Fprintln(stdout, line)
		}
		if err := printJSON(stdout, exercises.SortingDemo()); err != nil {
			slog.Error("Failed to print sorting demo", "error", err)
			return 1
		}
	}

	return parseReceipt(*receiptPath, stdout)
}

func parseReceipt(path string, stdout io.Writer) int {
	name := filepath.Base(path)
	source := receipt.NewLocalSource(filepath.Dir(path))
	service := receipt.NewService(source)

	fmt.Fprintf(stdout, "\n=== Receipt parsing from %s ===\n", name)

	parsed, err := service.ProcessReceipt(name)
	if errors.Is(err, receipt.ErrMissingInput) {
		fullPath := source.Path(name)
		if abs, absErr := filepath.Abs(fullPath); absErr == nil {
			fullPath = abs
		}
		slog.Warn("Receipt not found, skipping", "path", fullPath)
		fmt.Fprintf(stdout, "ERROR: %s not found at: %s\n", name, fullPath)
		return 0
	}
	if err != nil {
		slog.Error("Failed to read receipt", "path", path, "error", err)
		return 1
	}

	if err := printJSON(stdout, parsed); err != nil {
		slog.Error("Failed to print receipt", "error", err)
		return 1
	}

	fmt.Fprintf(stdout, "\nTOTAL CHECK: %s\n", receipt.CheckTotal(parsed))
	return 0
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
