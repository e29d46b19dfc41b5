package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dinefind/dinefind/internal/model"
	"github.com/dinefind/dinefind/internal/services"
	"github.com/dinefind/dinefind/internal/store/sqlite"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st, err := sqlite.New(t.TempDir() + "/api.db")
	require.NoError(t, err)

	visits := services.NewVisitService(st)
	router := NewRouter(Services{
		Users:     services.NewUserService(st),
		Visits:    visits,
		Recommend: services.NewRecommendService(st, visits, services.NewCategoryService(st), 0),
		Import:    services.NewImportService(st, visits, nil),
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	// Seed restaurants directly through the store.
	for _, r := range []*model.Restaurant{
		{BusinessID: "b1", Name: "Thai Basil", Categories: "Thai, Asian"},
		{BusinessID: "b2", Name: "Bangkok Garden", Categories: "Thai"},
		{BusinessID: "b3", Name: "Trattoria", Categories: "Italian"},
	} {
		_, err := st.Restaurants().Upsert(context.Background(), r)
		require.NoError(t, err)
	}
	return srv
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	return resp
}

func TestAPIFlow(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/users", map[string]string{
		"userId": "u1", "password": "pw", "firstName": "Ada", "lastName": "Ng",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	// Login: good and bad credentials.
	resp = postJSON(t, srv.URL+"/api/login", map[string]string{"userId": "u1", "password": "pw"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	_ = resp.Body.Close()
	require.Equal(t, "Ada Ng", login["name"])

	resp = postJSON(t, srv.URL+"/api/login", map[string]string{"userId": "u1", "password": "nope"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()

	resp = postJSON(t, srv.URL+"/api/login", map[string]string{"userId": "ghost", "password": "pw"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()

	// Mark b1 visited, then recommend: only b2 shares a category.
	resp = postJSON(t, srv.URL+"/api/users/u1/visits", map[string][]string{"businessIds": {"b1"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err := http.Get(srv.URL + "/api/users/u1/recommendations")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var recs struct {
		Restaurants []model.DisplayRecord `json:"restaurants"`
		Count       int                   `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&recs))
	_ = resp.Body.Close()
	require.Equal(t, 1, recs.Count)
	require.Equal(t, "b2", recs.Restaurants[0].BusinessID)

	// Visits listing for an unknown user is a 404, not a blank success.
	resp, err = http.Get(srv.URL + "/api/users/ghost/visits")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestAPISearchValidatesCoordinates(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(fmt.Sprintf("%s/api/users/u1/search?lat=abc&lon=1", srv.URL))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}
