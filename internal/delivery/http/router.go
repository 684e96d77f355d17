package http

import (
	"net/http"

	"voter-pledge-admin/internal/delivery/http/handler"
	"voter-pledge-admin/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	statsHandler      *handler.StatsHandler
	voterHandler      *handler.VoterHandler
	userHandler       *handler.UserHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	statsHandler *handler.StatsHandler,
	voterHandler *handler.VoterHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		statsHandler:      statsHandler,
		voterHandler:      voterHandler,
		userHandler:       userHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Voter and stats routes (any role)
	members := api.NewRoute().Subrouter()
	members.Use(r.authMiddleware.Authenticate)
	members.Use(middleware.RequireAnyRole)
	members.HandleFunc("/", r.statsHandler.GetStats).Methods(http.MethodGet)
	members.HandleFunc("/stats", r.statsHandler.GetStats).Methods(http.MethodGet)
	members.HandleFunc("/voters", r.voterHandler.ListVoters).Methods(http.MethodGet)
	members.HandleFunc("/voters/{id:[0-9]+}", r.voterHandler.UpdateVoter).Methods(http.MethodPatch)

	// User management (admin only)
	users := api.PathPrefix("/users").Subrouter()
	users.Use(r.authMiddleware.Authenticate)
	users.Use(middleware.RequireAdmin)
	users.HandleFunc("", r.userHandler.ListUsers).Methods(http.MethodGet)
	users.HandleFunc("", r.userHandler.CreateUser).Methods(http.MethodPost)
	users.HandleFunc("/roles", r.userHandler.ListRoles).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.UpdateUser).Methods(http.MethodPatch)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
