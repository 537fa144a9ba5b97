package api

import (
	"encoding/json"
	"net/http"

	"github.com/mrivero/cyberbomb/internal/errors"
	"github.com/mrivero/cyberbomb/internal/logger"
)

// handleError centralizes error handling for HTTP responses
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.NewInternalError(err)
	}

	if appErr.Status >= 500 {
		log.Error("server error: %v", appErr)
	} else if appErr.Status >= 400 {
		log.Warn("client error: %v", appErr)
	} else {
		log.Debug("error: %v", appErr)
	}

	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(appErr.Status)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	http.Error(w, appErr.Message, appErr.Status)
}

// wantsJSON reports whether the endpoint or the client expects a JSON body.
func wantsJSON(r *http.Request) bool {
	return r.URL.Path == "/hint" || r.URL.Path == "/report" ||
		r.Header.Get("Accept") == "application/json"
}
