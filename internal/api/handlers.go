package api

import (
	"html/template"
	"net/http"

	"github.com/mrivero/cyberbomb/internal/logger"
	"github.com/mrivero/cyberbomb/internal/services"
)

type Server struct {
	GameService   services.GameService
	ResultService services.ResultService
	Templates     *template.Template
}

type pageData map[string]any

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("rendering home page")
	s.render(w, r, "pages/home.html", nil)
}

func (s *Server) handleHowto(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "pages/howto.html", nil)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	if data == nil {
		data = pageData{}
	}

	log := logger.FromContext(r.Context())
	if err := s.Templates.ExecuteTemplate(w, name, data); err != nil {
		log.Error("failed to render template %s: %v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
