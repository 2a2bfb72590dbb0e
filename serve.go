package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordscramble/internal/account"
	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/db"
	"github.com/robalobadob/wordscramble/internal/httpserver"
	"github.com/robalobadob/wordscramble/internal/store"
	"github.com/robalobadob/wordscramble/internal/words"
)

const (
	sessionTTL    = 24 * time.Hour
	sweepInterval = 10 * time.Minute
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if err := setupLogger(cfg, os.Stderr); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	sqlDB, err := db.OpenAndMigrate(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("db.OpenAndMigrate > %w", err)
	}
	defer sqlDB.Close()

	wordSrc, hintSrc, err := newSources(cfg)
	if err != nil {
		return err
	}
	// The word of the day always comes from the local list so every player
	// gets the same one.
	daily, err := words.NewListSource(cfg.Words.ListFile)
	if err != nil {
		return fmt.Errorf("daily word list > %w", err)
	}

	mem := store.NewMemoryStore(sessionTTL)
	srv := httpserver.New(httpserver.Deps{
		Store:    mem,
		Words:    wordSrc,
		Hints:    hintSrc,
		DB:       sqlDB,
		Accounts: account.NewService(sqlDB, cfg.JWT.Secret, cfg.JWT.TokenTTL()),
	}, httpserver.Options{
		ClientOrigin: cfg.ClientOrigin,
		CookieName:   cfg.CookieName,
		Production:   cfg.Production,
		DailySalt:    cfg.DailySalt,
		DailyWords:   daily.Words(),
	})

	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		mem.RunSweeper(gctx, sweepInterval)
		return nil
	})
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("words", cfg.Words.Source).Msg("starting scramble server")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpSrv.ListenAndServe > %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
