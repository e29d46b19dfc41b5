package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dinefind/dinefind/internal/api/respond"
	"github.com/dinefind/dinefind/internal/model"
	"github.com/dinefind/dinefind/internal/services"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler { return &UserHandler{svc: svc} }

// CreateUser POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in struct {
		UserID    string `json:"userId"`
		Password  string `json:"password"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if in.UserID == "" {
		respond.WriteBadRequest(w, "userId required")
		return
	}
	u := &model.User{UserID: in.UserID, Password: in.Password, FirstName: in.FirstName, LastName: in.LastName}
	out, err := h.svc.CreateUser(r.Context(), u)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	out.Password = ""
	respond.WriteJSON(w, http.StatusCreated, out)
}

// Login POST /api/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		UserID   string `json:"userId"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	ok, err := h.svc.VerifyCredentials(r.Context(), in.UserID, in.Password)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	if !ok {
		respond.WriteUnauthorized(w, "invalid credentials")
		return
	}
	name, err := h.svc.DisplayName(r.Context(), in.UserID)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"userId": in.UserID, "name": name})
}

// GetDisplayName GET /api/users/{userId}/name
func (h *UserHandler) GetDisplayName(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	name, err := h.svc.DisplayName(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"userId": userID, "name": name})
}
