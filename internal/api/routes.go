package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(sessionMiddleware)

	r.Get("/", s.handleHome)
	r.Get("/howto", s.handleHowto)
	r.Get("/game", s.handleGame)
	r.Post("/game", s.handleSubmitAnswer)
	r.Post("/hint", s.handleHint)
	r.Get("/reset", s.handleReset)
	r.Get("/win", s.handleWin)
	r.Get("/lose", s.handleLose)
	r.Get("/report", s.handleReport)
	r.Get("/leaderboard", s.handleLeaderboard)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	return r
}
