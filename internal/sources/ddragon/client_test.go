package ddragon_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftworks/skinforge/internal/sources/ddragon"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/versions.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`["14.1.1","13.24.1"]`))
	})
	mux.HandleFunc("/cdn/14.1.1/data/en_US/champion.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"Ahri":{"id":"Ahri","name":"Ahri"},"Lux":{"id":"Lux","name":"Lux"}}}`))
	})
	mux.HandleFunc("/cdn/14.1.1/data/en_US/champion/Ahri.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"Ahri":{"id":"Ahri","name":"Ahri","skins":[
			{"id":"103000","num":0,"name":"default"},
			{"id":"103061","num":61,"name":"K/DA Ahri"}]}}}`))
	})
	mux.HandleFunc("/cdn/14.1.1/data/en_US/champion/Lux.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"Lux":{"id":"Lux","name":"Lux","skins":[
			{"id":"99000","num":0,"name":"default"},
			{"id":"99007","num":7,"name":"Elementalist Lux"}]}}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLatestVersion(t *testing.T) {
	srv := newTestServer(t)
	c := ddragon.NewClient(ddragon.WithBaseURL(srv.URL))

	version, err := c.LatestVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "14.1.1", version)
}

func TestChampionSkins(t *testing.T) {
	srv := newTestServer(t)
	c := ddragon.NewClient(ddragon.WithBaseURL(srv.URL))

	skins, err := c.ChampionSkins(context.Background(), "14.1.1", "Ahri")
	require.NoError(t, err)
	require.Len(t, skins, 2)

	assert.True(t, skins[0].IsBase)
	assert.Equal(t, "Ahri", skins[0].ChampionName)
	assert.Equal(t, "K/DA Ahri", skins[1].SkinName)
	assert.Equal(t, 61, skins[1].SkinNum)
	assert.False(t, skins[1].IsBase)
}

func TestAllSkinsDeterministicOrder(t *testing.T) {
	srv := newTestServer(t)
	c := ddragon.NewClient(ddragon.WithBaseURL(srv.URL))

	first, err := c.AllSkins(context.Background(), "")
	require.NoError(t, err)
	second, err := c.AllSkins(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, first, 4)
	assert.Equal(t, first, second)
	assert.Equal(t, "Ahri", first[0].ChampionID, "champions are visited in sorted order")
	assert.Equal(t, "Lux", first[2].ChampionID)
}

func TestServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := ddragon.NewClient(ddragon.WithBaseURL(srv.URL))
	_, err := c.LatestVersion(context.Background())
	assert.Error(t, err)
}
