package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dinefind/dinefind/internal/api/recovery"
	"github.com/dinefind/dinefind/internal/api/respond"
	"github.com/dinefind/dinefind/internal/model"
	"github.com/dinefind/dinefind/internal/services"
)

// HealthReporter exposes the cached service health flag.
type HealthReporter interface {
	IsHealthy() bool
}

// Services bundles everything the router needs.
type Services struct {
	Users     *services.UserService
	Visits    *services.VisitService
	Recommend *services.RecommendService
	Import    *services.ImportService
	Health    HealthReporter
}

// NewRouter wires all HTTP routes to handlers.
func NewRouter(s Services) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)

	userHandler := NewUserHandler(s.Users)
	root.HandleFunc("/api/users", userHandler.CreateUser).Methods("POST")
	root.HandleFunc("/api/users/{userId}/name", userHandler.GetDisplayName).Methods("GET")
	root.HandleFunc("/api/login", userHandler.Login).Methods("POST")

	visitHandler := NewVisitHandler(s.Visits)
	root.HandleFunc("/api/users/{userId}/visits", visitHandler.GetVisited).Methods("GET")
	root.HandleFunc("/api/users/{userId}/visits", visitHandler.MarkVisited).Methods("POST")
	root.HandleFunc("/api/users/{userId}/visits", visitHandler.UnmarkVisited).Methods("DELETE")

	recommendHandler := NewRecommendHandler(s.Recommend)
	root.HandleFunc("/api/users/{userId}/recommendations", recommendHandler.Recommend).Methods("GET")

	searchHandler := NewSearchHandler(s.Import)
	root.HandleFunc("/api/users/{userId}/search", searchHandler.Search).Methods("GET")

	root.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		if s.Health != nil && !s.Health.IsHealthy() {
			respond.WriteError(w, http.StatusServiceUnavailable, "dependencies unhealthy")
			return
		}
		respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	return root
}

// writeServiceError maps domain errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrUserNotFound), errors.Is(err, model.ErrNotFound):
		respond.WriteNotFound(w, err.Error())
	case errors.Is(err, model.ErrStoreUnavailable):
		respond.WriteError(w, http.StatusServiceUnavailable, err.Error())
	default:
		respond.WriteInternalError(w, err.Error())
	}
}
