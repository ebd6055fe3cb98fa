package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/swatchbook/internal/handlers"
	"github.com/lehigh-university-libraries/swatchbook/web"
)

func newServeCmd(opts *options) *cobra.Command {
	var port string
	var publicDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long: `Starts the swatchbook web interface and JSON API.

The server lists the sets under <images-dir>/Styles, correlates each set's
swatches with its room photographs, and serves the images themselves
under /images/.`,
		Example: `  # Start server on default port 8080
  swatchbook serve

  # Serve a different image tree on a custom port
  swatchbook serve --images-dir /srv/images --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("public-dir") {
				cfg.PublicDir = publicDir
			}

			publicFS, err := publicFiles(cfg.PublicDir)
			if err != nil {
				return err
			}
			if info, err := os.Stat(cfg.ImagesDir); err != nil || !info.IsDir() {
				slog.Warn("Images directory not readable, the catalog will be empty", "images_dir", cfg.ImagesDir)
			}

			handler := handlers.New(os.DirFS(cfg.ImagesDir), publicFS)

			addr := ":" + cfg.Port
			server := &http.Server{
				Addr:              addr,
				Handler:           handler.Routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Swatchbook available", "addr", addr, "url", "http://localhost"+addr, "images_dir", cfg.ImagesDir)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to listen on")
	cmd.Flags().StringVar(&publicDir, "public-dir", "", "Serve the web client from this directory instead of the embedded one")

	return cmd
}

func publicFiles(dir string) (fs.FS, error) {
	if dir == "" {
		return web.StaticFS()
	}
	if _, err := fs.Stat(os.DirFS(dir), "index.html"); err != nil {
		return nil, fmt.Errorf("public directory %s has no index.html: %w", dir, err)
	}
	return os.DirFS(dir), nil
}
