package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dinefind/dinefind/internal/api/respond"
	"github.com/dinefind/dinefind/internal/services"
)

type RecommendHandler struct {
	svc *services.RecommendService
}

func NewRecommendHandler(svc *services.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: svc}
}

// Recommend GET /api/users/{userId}/recommendations
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	recs, err := h.svc.Recommend(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"restaurants": recs, "count": len(recs)})
}
