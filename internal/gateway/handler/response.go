package handler

import (
	"log"
	"net/http"

	"codereview/internal/review"
	"codereview/internal/util/jsonutil"
)

// ReviewResponse is the success envelope for POST /review/.
type ReviewResponse struct {
	Filename         string                  `json:"filename"`
	ReviewReport     review.CodeReviewReport `json:"review_report"`
	ProcessingTimeMs int64                   `json:"processing_time_ms"`
	ModelUsed        string                  `json:"model_used"`
}

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Error     bool   `json:"error"`
	Message   string `json:"message"`
	ErrorType string `json:"error_type,omitempty"`
}

// writeJSON serializes without HTML escaping so Markdown code in issue
// descriptions and fixes survives intact.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := jsonutil.MarshalNoEscape(v)
	if err != nil {
		log.Printf("failed to encode response: %v", err)
		http.Error(w, "internal encoding error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, errType, message string) {
	writeJSON(w, status, ErrorResponse{Error: true, Message: message, ErrorType: errType})
}
