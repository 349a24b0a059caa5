package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joseph-ayodele/invoice-parser/internal/engine"
	"github.com/joseph-ayodele/invoice-parser/internal/entity"
	"github.com/joseph-ayodele/invoice-parser/internal/export"
	"github.com/joseph-ayodele/invoice-parser/internal/input"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	out := flag.String("o", "invoices.xlsx", "output workbook path")
	flag.Parse()

	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "batchparse [-o invoices.xlsx] <payload-dir>")
		os.Exit(2)
	}
	dir := flag.Arg(0)

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Error("read dir", "dir", dir, "error", err)
		os.Exit(1)
	}

	parser := engine.NewParser(logger)
	var invoices []*entity.Invoice
	start := time.Now()
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("skip file", "path", path, "error", err)
			continue
		}
		frags, rawText, err := input.Decode(data)
		if err != nil {
			logger.Warn("skip invalid payload", "path", path, "error", err)
			continue
		}
		res, err := parser.Parse(frags, rawText)
		if err != nil {
			logger.Warn("skip unparseable payload", "path", path, "error", err)
			continue
		}
		invoices = append(invoices, res.Invoice)
	}

	if len(invoices) == 0 {
		logger.Error("no parseable payloads", "dir", dir)
		os.Exit(1)
	}

	b, err := export.NewService(logger).WriteXLSX(invoices)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, b, 0o644); err != nil {
		logger.Error("write workbook", "path", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("batch OK",
		"invoices", len(invoices),
		"workbook", *out,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
