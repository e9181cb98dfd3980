package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/vocabcore/internal/config"
	"github.com/heartmarshall/vocabcore/internal/service/study"
	"github.com/heartmarshall/vocabcore/internal/transport/middleware"
	"github.com/heartmarshall/vocabcore/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// vocabulary store and serves HTTP until ctx is canceled, then drains
// in-flight requests and flushes pending writes.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store_driver", cfg.Store.Driver),
	)

	vocab, err := OpenVocabulary(ctx, *cfg, logger)
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(time.Minute)

	router := rest.NewRouter(rest.RouterDeps{
		Vocabulary: rest.NewVocabularyHandler(study.NewService(logger, vocab.Store), logger),
		Health:     rest.NewHealthHandler(vocab.Storage.Pinger, vocab.Dict, BuildVersion()),
		Limiter:    limiter,
		Config:     *cfg,
		Logger:     logger,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case serveErr = <-errCh:
		logger.Error("http server failed", slog.String("error", serveErr.Error()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", slog.String("error", err.Error()))
	}
	limiter.Stop()

	closeErr := vocab.Close(shutdownCtx)

	logger.Info("application stopped")

	if serveErr != nil {
		return fmt.Errorf("serve: %w", serveErr)
	}
	if closeErr != nil {
		return fmt.Errorf("flush: %w", closeErr)
	}
	return nil
}
