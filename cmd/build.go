package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/ZacxDev/go-static-sitemap/logger"
	"github.com/ZacxDev/go-static-sitemap/sitemap"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the sitemap once",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		if err := buildSitemap(cmd.Context(), cfg, log); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Sitemap written to %s\n", sitemap.New(*cfg).OutputFile())
		return nil
	},
}

func buildSitemap(ctx context.Context, cfg *sitemap.Config, log logger.Logger) error {
	start := time.Now()
	if err := sitemap.Generate(ctx, cfg, sitemap.WithLogger(log)); err != nil {
		return errors.Wrap(err, "generate sitemap")
	}

	log.Info("sitemap generated",
		logger.String("pages", cfg.PagesDirectory),
		logger.Duration("took", time.Since(start)))
	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
