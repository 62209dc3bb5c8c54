package cmd

import (
	"context"

	"github.com/ZacxDev/go-static-sitemap/sitemap"
	"github.com/ZacxDev/go-static-sitemap/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the sitemap whenever the pages directory changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		debounce, _ := cmd.Flags().GetDuration("debounce")

		cfg, log, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		if err := buildSitemap(cmd.Context(), cfg, log); err != nil {
			return err
		}

		w := watcher.New(cfg.PagesDirectory, func(ctx context.Context) error {
			return buildSitemap(ctx, cfg, log)
		}, log,
			watcher.WithDebounce(debounce),
			watcher.WithExclude(sitemap.New(*cfg).OutputFile(), cfg.TargetDirectory))
		return w.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Duration("debounce", watcher.DefaultDebounce, "quiet period before rebuilding")
}
