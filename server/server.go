package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"time"

	"github.com/fluidity-money/contact/internal/cache"
	"github.com/fluidity-money/contact/internal/config"
	"github.com/fluidity-money/contact/internal/contact"
	"github.com/fluidity-money/contact/internal/ui"
)

type ExecuteTemplateFunc func(wr io.Writer, name string, data any) error

type Server struct {
	version   string
	addr      string
	rateLimit int
	server    *http.Server
	assets    http.FileSystem
	tmplFunc  ExecuteTemplateFunc
	fragments *cache.Cache
	subscribe ui.GeneralButton
}

func NewServer(version string, cfg config.Config, assets http.FileSystem, tmplFunc ExecuteTemplateFunc) *Server {

	s := &Server{
		version:   version,
		addr:      cfg.Addr(),
		rateLimit: cfg.RateLimit,
		assets:    assets,
		tmplFunc:  tmplFunc,
		fragments: cache.NewCache(cfg.CacheTTL),
		subscribe: contact.Button(),
	}

	s.server = &http.Server{
		Addr:              s.addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) Addr() string {
	return s.addr
}

// Start blocks serving requests. It returns nil once the server is shut down.
func (s *Server) Start() error {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return nil
}

// Reload drops cached fragments so the next request renders them again.
func (s *Server) Reload() {
	s.fragments.Invalidate(contactFragment)
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func (s *Server) Close() error {
	if err := s.server.Close(); err != nil {
		return fmt.Errorf("failed to close server: %w", err)
	}
	return nil
}

func FormatBuildVersion(version string) string {
	return fmt.Sprintf("Go Version: %s\nVersion: %s\nOS/Arch: %s/%s", runtime.Version(), version, runtime.GOOS, runtime.GOARCH)
}
