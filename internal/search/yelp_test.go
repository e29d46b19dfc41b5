package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestYelpProviderSearchByLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v3/businesses/search", r.URL.Path)
		require.Equal(t, "37.7", r.URL.Query().Get("latitude"))
		require.Equal(t, "-122.4", r.URL.Query().Get("longitude"))
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
            "businesses": [{
                "id": "biz-1",
                "name": "Golden Wok",
                "categories": [{"title": "Chinese"}, {"title": "Szechuan"}],
                "location": {"city": "San Francisco", "state": "CA", "display_address": ["1 Main St", "San Francisco, CA"]},
                "rating": 4.5,
                "coordinates": {"latitude": 37.71, "longitude": -122.41},
                "image_url": "http://img.example/1.jpg",
                "url": "http://biz.example/golden-wok"
            }]
        }`))
	}))
	defer srv.Close()

	p := NewYelpProvider(srv.URL, "test-key")
	got, err := p.SearchByLocation(context.Background(), 37.7, -122.4)
	require.NoError(t, err)
	require.Len(t, got, 1)

	r := got[0]
	require.Equal(t, "biz-1", r.BusinessID)
	require.Equal(t, "Golden Wok", r.Name)
	require.Equal(t, "Chinese, Szechuan", r.Categories)
	require.Equal(t, "1 Main St, San Francisco, CA", r.FullAddress)
	require.Equal(t, 4.5, r.Stars)
}

func TestYelpProviderNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewYelpProvider(srv.URL, "")
	_, err := p.SearchByLocation(context.Background(), 0, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}
