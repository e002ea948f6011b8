package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/fluidity-money/contact/internal/contact"
	"github.com/fluidity-money/contact/internal/models"
	"github.com/fluidity-money/contact/internal/ui"
)

const contactFragment = "contact"

func (s *Server) renderError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	data := models.ErrorPageData{
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    message,
	}
	if err := s.tmplFunc(w, "error.html", data); err != nil {
		slog.Error("Failed to render error template", "error", err)
	}
}

// contactHTML returns the rendered Contact section, rendering it at most
// once per cache TTL.
func (s *Server) contactHTML(ctx context.Context) (template.HTML, error) {
	if b, ok := s.fragments.Get(contactFragment); ok {
		return template.HTML(b), nil
	}

	html, err := templ.ToGoHTML(ctx, contact.Contact())
	if err != nil {
		return "", fmt.Errorf("failed to render contact: %w", err)
	}

	s.fragments.Set(contactFragment, []byte(html))
	return html, nil
}

func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {

	html, err := s.contactHTML(r.Context())
	if err != nil {
		slog.Error("Failed to render contact", "error", err)
		s.renderError(w, http.StatusInternalServerError, "")
		return
	}

	data := models.IndexPageData{
		Title:   contact.Label,
		Version: s.version,
		Contact: html,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmplFunc(w, "index.html", data); err != nil {
		slog.Error("Failed to render index template", "error", err)
	}
}

func (s *Server) HandleContact(w http.ResponseWriter, r *http.Request) {
	html, err := s.contactHTML(r.Context())
	if err != nil {
		slog.Error("Failed to render contact", "error", err)
		s.renderError(w, http.StatusInternalServerError, "")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, string(html))
}

func (s *Server) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	err := s.subscribe.Click(r.Context())
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, contact.ErrNotImplemented):
		slog.Warn("Subscribe is not implemented", "remote_addr", r.RemoteAddr)
		s.renderError(w, http.StatusNotImplemented, "Subscriptions are not available yet.")
	default:
		slog.Error("Failed to subscribe", "error", err)
		s.renderError(w, http.StatusInternalServerError, "")
	}
}

func (s *Server) HandlePreviewButton(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	btn := ui.GeneralButton{}
	if v := q.Get("type"); v != "" {
		t, err := ui.ParseButtonType(v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		btn.Type = t
	}
	if v := q.Get("size"); v != "" {
		size, err := ui.ParseButtonSize(v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		btn.Size = size
	}

	label := q.Get("label")
	if label == "" {
		label = "BUTTON"
	}

	templ.Handler(btn.Render(ui.Text(label))).ServeHTTP(w, r)
}

func (s *Server) HandleStyles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = io.WriteString(w, ui.ContactStyles.CSS())
}

func (s *Server) HandleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, FormatBuildVersion(s.version))
}

func (s *Server) serveFile(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := s.assets.Open(path)
		if err != nil {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		defer func() { _ = file.Close() }()
		_, _ = io.Copy(w, file)
	}
}

func (s *Server) cacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/static/") || strings.HasPrefix(r.URL.Path, "/styles/") {
			w.Header().Set("Cache-Control", "public, max-age=86400")
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		next.ServeHTTP(w, r)
	})
}
