package web

import (
	"net/http"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r.Context(), r)
	s.render(w, r, sess, "index.html", nil)
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r.Context(), r)

	sections, err := s.menu.ListSections(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load menu")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	s.render(w, r, sess, "menu.html", map[string]interface{}{
		"Sections": sections,
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r.Context(), r)
	w.WriteHeader(http.StatusNotFound)
	s.render(w, r, sess, "404.html", nil)
}
