package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/invoice-parser/internal/feedback"
)

// correction records one manual review fix into the corrections log, which
// is analyzed out-of-band; the engine never reads it.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	dbPath := flag.String("db", "corrections.db", "corrections database path")
	flag.Parse()

	if flag.NArg() != 4 {
		logger.Error("usage", "cmd", "correction [-db corrections.db] <parse-id-uuid> <field> <extracted> <corrected>")
		os.Exit(2)
	}
	parseID, err := uuid.Parse(flag.Arg(0))
	if err != nil {
		logger.Error("invalid parse id (must be UUID)", "arg", flag.Arg(0), "error", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := feedback.Open(ctx, *dbPath, logger)
	if err != nil {
		logger.Error("open corrections db", "path", *dbPath, "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("close corrections db", "error", cerr)
		}
	}()

	c, err := store.Record(ctx, feedback.Correction{
		ParseID:   parseID,
		Field:     flag.Arg(1),
		Extracted: flag.Arg(2),
		Corrected: flag.Arg(3),
	})
	if err != nil {
		logger.Error("record correction", "error", err)
		os.Exit(1)
	}

	logger.Info("correction OK", "id", c.ID, "parse_id", c.ParseID, "field", c.Field)
}
