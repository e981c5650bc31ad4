package server

import (
	"net/http"
	"os"

	"codereview/internal/gateway/handler"
	"codereview/internal/gateway/middleware"
)

func NewMux(reviewHandler *handler.ReviewHandler, healthHandler *handler.HealthHandler, staticDir string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/review/", reviewHandler.HandleReview)
	mux.HandleFunc("/health", healthHandler.HandleHealth)

	// Frontend assets, when a static directory is present.
	if staticDir != "" {
		if st, err := os.Stat(staticDir); err == nil && st.IsDir() {
			mux.Handle("/", http.FileServer(http.Dir(staticDir)))
		}
	}

	return middleware.CORS(mux)
}
