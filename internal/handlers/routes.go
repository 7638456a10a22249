package handlers

import (
	"net/http"

	"github.com/RUTHVIKRAO04/HackConnect/internal/auth"
	"github.com/RUTHVIKRAO04/HackConnect/internal/config"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r *chi.Mux, cfg *config.Config, authHandler *auth.AuthHandler, hackathonHandler *HackathonHandler, registrationHandler *RegistrationHandler, userHandler *UserHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if cfg.EnableCORS {
		r.Use(corsMiddleware(cfg.FrontendURL))
	}

	// Initialize Huma API
	humaConfig := huma.DefaultConfig("HackConnect API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: "auth_token",
		},
	}
	api := humachi.New(r, humaConfig)

	// Sliding sessions: every API response reissues a cookie that is past
	// half of its duration.
	api.UseMiddleware(authHandler.SessionRefresh)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes
	r.Get("/auth/google/login", authHandler.HandleGoogleLogin)
	r.Get("/auth/google/callback", authHandler.HandleGoogleCallback)
	huma.Post(api, "/auth/signup", authHandler.HandleSignup)
	huma.Post(api, "/auth/login", authHandler.HandleLogin)

	huma.Get(api, "/me", authHandler.HandleMe, withCookieAuth)

	// Listings
	huma.Get(api, "/hackathons", hackathonHandler.HandleListHackathons)
	huma.Get(api, "/hackathons/{id}", hackathonHandler.HandleGetHackathon)
	huma.Post(api, "/hackathons", hackathonHandler.HandleCreateHackathon, withCookieAuth)

	// Registrations
	huma.Post(api, "/hackathons/{id}/register", registrationHandler.HandleRegister, withCookieAuth)
	huma.Get(api, "/registrations", registrationHandler.HandleMyRegistrations)
	huma.Patch(api, "/registrations/{id}/status", registrationHandler.HandleUpdateStatus, withCookieAuth)

	// Teammate directory
	huma.Get(api, "/users", userHandler.HandleListUsers)

	// Assistant
	huma.Post(api, "/chat", HandleChat)
}

func withCookieAuth(o *huma.Operation) {
	o.Security = []map[string][]string{{"cookieAuth": {}}}
}

func corsMiddleware(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Cookie")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
