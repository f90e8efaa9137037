package cmd

import (
	"os"

	"github.com/cdean-eng/knightfall/engine"
	"github.com/cdean-eng/knightfall/internal/config"
	"github.com/cdean-eng/knightfall/uci"
	"github.com/cdean-eng/knightfall/uci/book"
	"github.com/spf13/cobra"
)

func uciCmd() *cobra.Command {
	var hashMB int
	var bookPath string
	var configPath string

	c := &cobra.Command{
		Use:   "uci",
		Short: "Run the engine as a UCI front end over stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			opts := []engine.Option{engine.WithTuning(cfg.Search)}
			if cmd.Flags().Changed("hash") {
				opts = append(opts, engine.WithHashMB(hashMB))
			}
			eng := engine.New(ctx, EngineName, EngineAuthor, opts...)

			srv := uci.NewServer(eng, os.Stdin, os.Stdout)
			if bookPath != "" {
				b, err := book.Load(bookPath)
				if err != nil {
					return err
				}
				srv = srv.WithBook(b)
			}
			srv.Run(ctx)
			return nil
		},
	}
	c.Flags().IntVar(&hashMB, "hash", 64, "transposition table size in MB")
	c.Flags().StringVar(&bookPath, "book", "", "path to a Polyglot-layout opening book")
	c.Flags().StringVar(&configPath, "config", "", "path to a TOML file overriding the engine's search tuning")
	return c
}
