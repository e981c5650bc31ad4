package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"codereview/internal/review"
)

// Reviewer is the core pipeline boundary this handler consumes.
type Reviewer interface {
	Review(ctx context.Context, source, filename string) (review.CodeReviewReport, error)
}

var allowedExtensions = map[string]bool{
	".py": true, ".js": true, ".ts": true, ".java": true, ".cpp": true,
	".c": true, ".cs": true, ".php": true, ".rb": true, ".go": true,
	".rs": true, ".swift": true, ".kt": true, ".scala": true, ".r": true,
	".m": true, ".pl": true, ".sh": true, ".sql": true, ".html": true,
	".css": true, ".xml": true, ".yaml": true, ".yml": true, ".json": true,
}

type ReviewHandler struct {
	svc      Reviewer
	maxBytes int64
	model    string
}

func NewReviewHandler(svc Reviewer, maxBytes int64, model string) *ReviewHandler {
	return &ReviewHandler{svc: svc, maxBytes: maxBytes, model: model}
}

// HandleReview accepts a multipart upload in the "file" field, runs the
// review pipeline, and returns a ReviewResponse. Input gating failures map
// to 400, upstream model failures to 502, anything unclassified to 500.
func (h *ReviewHandler) HandleReview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	start := time.Now()

	// Bound the whole request body; the per-file check below gives the
	// client a precise error message.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+64<<10)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "missing file upload field 'file'")
		return
	}
	defer file.Close()

	filename := strings.TrimSpace(header.Filename)
	if filename == "" {
		writeError(w, http.StatusBadRequest, "invalid_input", "No filename provided")
		return
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		writeError(w, http.StatusBadRequest, "invalid_input",
			fmt.Sprintf("Unsupported file type: %s. Supported types: %s", ext, supportedExtensionList()))
		return
	}

	if ct := header.Header.Get("Content-Type"); ct != "" && !acceptableContentType(ct) {
		log.Printf("unexpected content type %q for file %s", ct, filename)
	}

	content, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "failed to read uploaded file")
		return
	}
	if int64(len(content)) > h.maxBytes {
		writeError(w, http.StatusBadRequest, "invalid_input", "File too large. Maximum size is 1MB.")
		return
	}

	source := string(content)
	if !utf8.ValidString(source) {
		log.Printf("file %s contains non-UTF8 characters, using replacement", filename)
		source = strings.ToValidUTF8(source, string(utf8.RuneError))
	}

	report, err := h.svc.Review(r.Context(), source, filename)
	if err != nil {
		h.writeReviewError(w, filename, err)
		return
	}

	writeJSON(w, http.StatusOK, ReviewResponse{
		Filename:         filename,
		ReviewReport:     report,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		ModelUsed:        h.model,
	})
}

func (h *ReviewHandler) writeReviewError(w http.ResponseWriter, filename string, err error) {
	log.Printf("review failed for %s: %v", filename, err)
	switch {
	case errors.Is(err, review.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, review.ErrInvalidModelResponse):
		writeError(w, http.StatusBadGateway, "invalid_model_response", err.Error())
	case errors.Is(err, review.ErrMalformedJSON):
		writeError(w, http.StatusBadGateway, "malformed_json", err.Error())
	case errors.Is(err, review.ErrService):
		writeError(w, http.StatusBadGateway, "service_error", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred during code analysis. Please try again.")
	}
}

func acceptableContentType(ct string) bool {
	return strings.HasPrefix(ct, "text/") ||
		ct == "application/octet-stream" ||
		ct == "application/json" ||
		ct == "application/xml"
}

func supportedExtensionList() string {
	exts := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}
