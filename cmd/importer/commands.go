package main

import (
	"context"
	"fmt"
	"io"

	"gierkopolecacz/backend/internal/app"
	"gierkopolecacz/backend/internal/bgg"
	"gierkopolecacz/backend/internal/config"
	"gierkopolecacz/backend/internal/logging"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

type configKey struct{}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "importer",
		Short: "Import board games from BoardGameGeek",
		Long: `importer downloads the daily BoardGameGeek ranking dump, fetches metadata
for the ranked games and stores them in the catalog.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(), newThingCmd())
	return root
}

func configFrom(cmd *cobra.Command) *config.Config {
	cfg, _ := cmd.Context().Value(configKey{}).(*config.Config)
	return cfg
}

func newRunCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Import the ranked games into the database",
		Example: `  # Import the 100 best ranked games
  importer run --limit 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd)
			if !cmd.Flags().Changed("limit") {
				limit = cfg.ImportLimit
			}

			application, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer application.Close()

			summary, err := application.Importer.Run(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), summary)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Number of top ranked games to import (0 = all)")
	return cmd
}

func newThingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "thing <bgg-id>",
		Short: "Fetch and translate the metadata of one game without storing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cache, err := app.NewBGGClient(configFrom(cmd))
			if err != nil {
				return err
			}
			if cache != nil {
				defer cache.Close()
			}

			thing, err := client.GetThing(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("fetch game %s: %w", args[0], err)
			}
			thing.Categories = bgg.TranslateCategories(thing.Categories)
			thing.Mechanics = bgg.TranslateMechanics(thing.Mechanics)
			return writeJSON(cmd.OutOrStdout(), thing)
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
