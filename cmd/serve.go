package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ZacxDev/go-static-sitemap/handlers"
	"github.com/ZacxDev/go-static-sitemap/logger"
	"github.com/ZacxDev/go-static-sitemap/sitemap"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the sitemap and serve it for preview",
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")

		cfg, log, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		if err := buildSitemap(cmd.Context(), cfg, log); err != nil {
			return err
		}

		server := &http.Server{
			Addr:    ":" + port,
			Handler: handlers.SetupRouter(sitemap.New(*cfg, sitemap.WithLogger(log)), log),
		}
		go func() {
			<-cmd.Context().Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			server.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(cmd.OutOrStdout(), "Serving sitemap preview on port %s\n", port)
		log.Info("preview server listening", logger.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "serve preview")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "9010", "Port to run the server on")
}
