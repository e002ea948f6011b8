package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/fluidity-money/contact/internal/contact"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))
	r.Use(httprate.Limit(s.rateLimit, time.Minute))
	r.Use(middleware.Heartbeat("/health"))
	r.Use(s.cacheControl)

	if s.assets != nil {
		r.Mount("/static", http.FileServer(s.assets))
		r.Handle("/robots.txt", s.serveFile("static/robots.txt"))
	}
	r.Get("/styles/contact.css", s.HandleStyles)

	r.Get("/", s.HandleIndex)
	r.Get("/contact", s.HandleContact)
	r.Post(contact.SubscribePath, s.HandleSubscribe)
	r.Get("/preview/button", s.HandlePreviewButton)
	r.Get("/version", s.HandleVersion)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusMovedPermanently)
	})

	return r
}
