// Command droplist removes a list from every record in the configured store.
// Records left without any list and with no review history are deleted;
// reviewed records keep their history. It flushes before exiting, so it must
// not run while a server holds the same sqlite file.
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/vocabcore/internal/app"
	"github.com/heartmarshall/vocabcore/internal/config"
)

func main() {
	listID := flag.String("list", "", "list identifier to remove")
	flag.Parse()

	if *listID == "" {
		fmt.Fprintln(os.Stderr, "usage: droplist -list <id>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	updated, deleted, err := dropList(ctx, *cfg, logger, *listID)
	if err != nil {
		logger.Error("drop list failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("list removed",
		slog.String("list", *listID),
		slog.Int("updated", updated),
		slog.Int("deleted", deleted),
	)
}

func dropList(ctx context.Context, cfg config.Config, logger *slog.Logger, listID string) (updated, deleted int, err error) {
	vocab, err := app.OpenVocabulary(ctx, cfg, logger)
	if err != nil {
		return 0, 0, fmt.Errorf("open vocabulary: %w", err)
	}

	updated, deleted = vocab.Store.RemoveFromList(listID)

	if err := vocab.Close(ctx); err != nil {
		return updated, deleted, fmt.Errorf("flush: %w", err)
	}
	return updated, deleted, nil
}
