package main

import (
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joseph-ayodele/invoice-parser/internal/engine"
	"github.com/joseph-ayodele/invoice-parser/internal/input"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	withRegions := flag.Bool("regions", false, "include labeled debug regions in the output")
	pretty := flag.Bool("pretty", false, "indent the output JSON")
	flag.Parse()

	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "parseinvoice [-regions] [-pretty] <payload.json|->")
		os.Exit(2)
	}

	data, err := readPayload(flag.Arg(0))
	if err != nil {
		logger.Error("read payload", "arg", flag.Arg(0), "error", err)
		os.Exit(1)
	}

	frags, rawText, err := input.Decode(data)
	if err != nil {
		logger.Error("invalid payload", "error", err)
		os.Exit(1)
	}

	start := time.Now()
	res, err := engine.NewParser(logger).Parse(frags, rawText)
	if err != nil {
		logger.Error("parse failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	out := any(res)
	if !*withRegions {
		out = res.Invoice
	}
	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}

	logger.Info("parse OK",
		"parse_id", res.Invoice.ParseID,
		"vendor", res.Invoice.VendorName,
		"total", res.Invoice.Total,
		"confidence", res.Invoice.Confidence,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func readPayload(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(arg)
}
