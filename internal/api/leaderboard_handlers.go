package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/mrivero/cyberbomb/internal/logger"
	"github.com/mrivero/cyberbomb/internal/models"
)

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	outcome := r.URL.Query().Get("outcome")
	orderBy := r.URL.Query().Get("order_by")
	orderDir := strings.ToUpper(r.URL.Query().Get("order_dir"))
	pageParam := r.URL.Query().Get("page")
	perPageParam := r.URL.Query().Get("per_page")

	if outcome != "won" && outcome != "lost" {
		outcome = ""
	}
	if orderBy != "time_left" {
		orderBy = "finished_at"
	}
	if orderDir != "ASC" && orderDir != "DESC" {
		orderDir = "DESC"
	}

	page := 1
	if p, err := strconv.Atoi(pageParam); err == nil && p > 0 {
		page = p
	}

	perPage := 25
	switch perPageParam {
	case "10":
		perPage = 10
	case "25":
		perPage = 25
	case "50":
		perPage = 50
	}

	offset := (page - 1) * perPage

	log = log.WithFields(map[string]any{
		"outcome":   outcome,
		"order_by":  orderBy,
		"order_dir": orderDir,
		"page":      page,
	})
	log.Debug("listing leaderboard")

	filter := models.ResultFilter{
		Outcome:  outcome,
		Limit:    perPage,
		Offset:   offset,
		OrderBy:  orderBy,
		OrderDir: orderDir,
	}

	results, totalCount, err := s.ResultService.Leaderboard(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}

	totalPages := totalCount / perPage
	if totalCount%perPage != 0 {
		totalPages++
	}
	if totalPages == 0 {
		totalPages = 1
	}

	log.Debug("found %d results", len(results))
	s.render(w, r, "pages/leaderboard.html", pageData{
		"results":     results,
		"outcome":     outcome,
		"page":        page,
		"per_page":    perPage,
		"total_pages": totalPages,
		"total_count": totalCount,
		"order_by":    orderBy,
		"order_dir":   orderDir,
	})
}
