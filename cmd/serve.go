package cmd

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fluidity-money/contact/internal/config"
	"github.com/fluidity-money/contact/server"
)

func newServeCmd(b Build, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), b, cfg)
		},
	}

	cmd.Flags().IntP("port", "p", 8080, "port to listen on")
	cmd.Flags().Int("rate-limit", 500, "requests per minute per client")
	cmd.Flags().Duration("cache-ttl", 10*time.Minute, "how long the rendered fragment is cached")
	_ = v.BindPFlag("port", cmd.Flags().Lookup("port"))
	_ = v.BindPFlag("rate_limit", cmd.Flags().Lookup("rate-limit"))
	_ = v.BindPFlag("cache_ttl", cmd.Flags().Lookup("cache-ttl"))

	return cmd
}

func runServe(ctx context.Context, b Build, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	tmpl, err := template.New("").ParseFS(b.Templates, "templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	var assets http.FileSystem
	if b.Static != nil {
		assets = http.FS(b.Static)
	}

	srv := server.NewServer(b.Version, cfg, assets, tmpl.ExecuteTemplate)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	slog.Info("Started server", slog.String("listen_addr", srv.Addr()))

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

wait:
	for {
		select {
		case err := <-errCh:
			return err
		case <-hup:
			slog.Info("Reloading rendered fragments")
			srv.Reload()
		case <-ctx.Done():
			break wait
		}
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed, closing", "error", err)
		return errors.Join(err, srv.Close())
	}
	return <-errCh
}
