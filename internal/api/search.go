package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dinefind/dinefind/internal/api/respond"
	"github.com/dinefind/dinefind/internal/services"
)

type SearchHandler struct {
	svc *services.ImportService
}

func NewSearchHandler(svc *services.ImportService) *SearchHandler { return &SearchHandler{svc: svc} }

// Search GET /api/users/{userId}/search?lat=..&lon=..
// Results from the external provider are imported into local storage and
// returned annotated with the user's visited flag.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		respond.WriteBadRequest(w, "lat must be a number")
		return
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		respond.WriteBadRequest(w, "lon must be a number")
		return
	}
	recs, err := h.svc.SearchNearby(r.Context(), userID, lat, lon)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"restaurants": recs, "count": len(recs)})
}
