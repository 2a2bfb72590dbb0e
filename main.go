// main.go
//
// scramble: word-scramble game.
//
//	scramble serve          HTTP server with the browser UI and JSON API
//	scramble play           terminal UI
//	scramble word [--hint]  print one scrambled word
//
// Configuration comes from .env, an optional scramble.yaml and the environment
// (see internal/config).

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/hint"
	"github.com/robalobadob/wordscramble/internal/upstream"
	"github.com/robalobadob/wordscramble/internal/words"
)

var configFile string

func main() {
	root := &cobra.Command{
		Use:           "scramble",
		Short:         "Unscramble the word",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	root.AddCommand(
		newServeCommand(),
		newPlayCommand(),
		newWordCommand(),
	)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogger points the global zerolog logger at w using the configured
// level and format.
func setupLogger(cfg *config.Config, w io.Writer) error {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("zerolog.ParseLevel > %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	if cfg.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}

// newSources builds the word and hint sources from configuration.
func newSources(cfg *config.Config) (words.Source, hint.Source, error) {
	client := upstream.New(upstream.Config{
		Timeout:    cfg.Words.Timeout,
		Retries:    cfg.Words.Retries,
		RetryDelay: 200 * time.Millisecond,
		UserAgent:  "scramble/1.0",
	})
	hints := hint.NewAPISource(client, cfg.Words.DictionaryURL, cfg.Words.SynonymURL)

	switch cfg.Words.Source {
	case "list":
		list, err := words.NewListSource(cfg.Words.ListFile)
		if err != nil {
			return nil, nil, fmt.Errorf("words.NewListSource > %w", err)
		}
		return list, hints, nil
	default:
		return words.NewAPISource(client, cfg.Words.RandomURL), hints, nil
	}
}
