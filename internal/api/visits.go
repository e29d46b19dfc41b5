package api

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/gorilla/mux"

	"github.com/dinefind/dinefind/internal/api/respond"
	"github.com/dinefind/dinefind/internal/services"
)

type VisitHandler struct {
	svc *services.VisitService
}

func NewVisitHandler(svc *services.VisitService) *VisitHandler { return &VisitHandler{svc: svc} }

type visitRequest struct {
	BusinessIDs []string `json:"businessIds"`
}

// MarkVisited POST /api/users/{userId}/visits
func (h *VisitHandler) MarkVisited(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var in visitRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := h.svc.MarkVisited(r.Context(), userID, in.BusinessIDs); err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]int{"marked": len(in.BusinessIDs)})
}

// UnmarkVisited DELETE /api/users/{userId}/visits
func (h *VisitHandler) UnmarkVisited(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var in visitRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := h.svc.UnmarkVisited(r.Context(), userID, in.BusinessIDs); err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]int{"unmarked": len(in.BusinessIDs)})
}

// GetVisited GET /api/users/{userId}/visits
func (h *VisitHandler) GetVisited(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	visited, err := h.svc.GetVisited(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	ids := make([]string, 0, len(visited))
	for id := range visited {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"businessIds": ids, "count": len(ids)})
}
