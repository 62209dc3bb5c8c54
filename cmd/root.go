package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ZacxDev/go-static-sitemap/config"
	"github.com/ZacxDev/go-static-sitemap/logger"
	"github.com/ZacxDev/go-static-sitemap/sitemap"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultConfigFile = "sitemap.yaml"

var (
	cfgFile   string
	overrides = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Generate an XML sitemap from a directory of site pages",
	Long: `sitemap walks a pages directory and writes a sitemap.xml listing every page,
with optional localized alternates, priorities and change frequencies.

Settings come from a YAML file (default sitemap.yaml). SITEMAP_* environment
variables override the file and flags override both.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", defaultConfigFile, "config file")
	flags.String(config.KeyBaseURL, "", "base URL prefixed to every page")
	flags.String(config.KeyPagesDirectory, "", "directory holding the site pages")
	flags.String(config.KeyTargetDirectory, "", "directory the sitemap is written to")
	flags.String(config.KeySitemapFilename, "", "sitemap file name (default sitemap.xml)")
	flags.String(config.KeyLogLevel, "", "log level (debug, info, warn, error)")

	overrides.SetEnvPrefix("SITEMAP")
	overrides.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	overrides.AutomaticEnv()
	if err := overrides.BindPFlags(flags); err != nil {
		panic(err)
	}
}

// loadConfig reads the manifest, applies flag and env overrides and builds
// the logger. A missing default config file is not an error; everything can
// come from flags.
func loadConfig(cmd *cobra.Command) (*sitemap.Config, logger.Logger, error) {
	manifest, err := config.Load(cfgFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) || cmd.Flags().Changed("config") {
			return nil, nil, err
		}
		manifest, err = config.Parse(nil)
		if err != nil {
			return nil, nil, err
		}
	}
	manifest.ApplyOverrides(overrides)

	log, err := logger.New(manifest.Log)
	if err != nil {
		return nil, nil, err
	}

	cfg, warnings, err := manifest.SitemapConfig()
	if err != nil {
		return nil, nil, err
	}
	for _, w := range warnings {
		log.Warn("config warning", logger.String("warning", w))
	}
	return cfg, log, nil
}
