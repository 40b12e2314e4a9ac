package middleware

import (
	"encoding/json"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type errorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Status    int    `json:"status"`
	RequestID string `json:"request_id,omitempty"`
}

// WriteError answers htmx requests with a JSON envelope and everything else
// with a plain text body.
func WriteError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	if IsHTMX(r.Context()) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(errorResponse{
			Error:     http.StatusText(code),
			Message:   msg,
			Status:    code,
			RequestID: chimw.GetReqID(r.Context()),
		})
		return
	}
	http.Error(w, msg, code)
}
