package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/game"
)

func newWordCommand() *cobra.Command {
	var withHint bool
	cmd := &cobra.Command{
		Use:   "word",
		Short: "Print one scrambled word",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if err := setupLogger(cfg, os.Stderr); err != nil {
				return err
			}
			wordSrc, hintSrc, err := newSources(cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			word := wordSrc.Random(ctx)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, game.Scramble(word))
			if withHint {
				fmt.Fprintln(out, hintSrc.Hint(ctx, word))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withHint, "hint", false, "also print a hint")
	return cmd
}
