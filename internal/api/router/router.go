package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/dilawarpro/mentorship-chat/internal/http/middleware"
	"github.com/dilawarpro/mentorship-chat/internal/webchat"
	"github.com/dilawarpro/mentorship-chat/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	Webchat            *webchat.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", handleHealth)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	if cfg.Webchat != nil {
		r.Route("/webchat", func(wc chi.Router) {
			wc.Get("/ws", cfg.Webchat.HandleWebSocket)
			wc.Post("/message", cfg.Webchat.HandleMessage)
			wc.Get("/history", cfg.Webchat.HandleHistory)
			wc.Get("/config", cfg.Webchat.HandleConfig)
			wc.Get("/widget.js", cfg.Webchat.HandleWidgetJS)
		})
	}

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
