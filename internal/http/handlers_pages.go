package http

import (
	"log/slog"
	"net/http"
)

// The page handlers render the dashboard and transactions views; both pages
// load their data from the JSON API client-side.

func (s *Server) handleIndexPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "index.html")
}

func (s *Server) handleTransactionsPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "transactions.html")
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, name string) {
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "request_id", requestIDFrom(r.Context()), "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, nil); err != nil {
		slog.ErrorContext(r.Context(), "Template execution failed", "request_id", requestIDFrom(r.Context()), "error", err, "template", name)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
