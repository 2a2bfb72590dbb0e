package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/tui"
)

func newPlayCommand() *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}

			// Anything written to stderr would tear the screen, so log only
			// to a file when asked to.
			var out io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file > %w", err)
				}
				defer f.Close()
				out = f
			}
			if err := setupLogger(cfg, out); err != nil {
				return err
			}
			if logFile == "" {
				zerolog.SetGlobalLevel(zerolog.Disabled)
			}

			wordSrc, hintSrc, err := newSources(cfg)
			if err != nil {
				return err
			}
			log.Info().Str("words", cfg.Words.Source).Msg("starting terminal game")
			return tui.Run(cmd.Context(), wordSrc, hintSrc)
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")
	return cmd
}
