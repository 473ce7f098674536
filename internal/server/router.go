package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/bulatminnakhmetov/webhook-client/internal/handler/echo"
	"github.com/bulatminnakhmetov/webhook-client/internal/logging"
	"github.com/bulatminnakhmetov/webhook-client/internal/metrics"
)

// NewRouter builds the public API: GET / and POST /test/.
func NewRouter(logger zerolog.Logger, echoHandler *echo.EchoHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.NotFound(detail(http.StatusNotFound))
	r.MethodNotAllowed(detail(http.StatusMethodNotAllowed))

	r.Get("/", echoHandler.Welcome)
	r.Post("/test/", echoHandler.Receive)

	// The route is declared with a trailing slash; clients posting to /test
	// are redirected the way the original framework did it.
	r.HandleFunc("/test", redirectSlash)

	return r
}

type detailResponse struct {
	Detail string `json:"detail"`
}

func detail(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(detailResponse{Detail: http.StatusText(status)})
	}
}

// redirectSlash answers with 307 so the method and body are replayed.
func redirectSlash(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Path + "/"
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}
