package wiki_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftworks/skinforge/internal/sources/wiki"
)

func TestFetchLuaFromTextarea(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `<html><body><textarea id="wpTextbox1">%s</textarea></body></html>`, sampleLua)
	}))
	t.Cleanup(srv.Close)

	c := wiki.NewClient(wiki.WithURL(srv.URL))
	lua, err := c.FetchLua(context.Background())
	require.NoError(t, err)
	assert.Contains(t, lua, `["Ahri"]`)
	assert.Contains(t, lua, `["cost"] = 1350`)
}

func TestFetchLuaFallsBackToPre(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `<html><body><pre>short</pre><pre>%s</pre></body></html>`, sampleLua)
	}))
	t.Cleanup(srv.Close)

	c := wiki.NewClient(wiki.WithURL(srv.URL))
	lua, err := c.FetchLua(context.Background())
	require.NoError(t, err)
	assert.Contains(t, lua, `["Elementalist"]`, "longest pre element wins")
}

func TestFetchLuaEmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>Nothing here.</p></body></html>`))
	}))
	t.Cleanup(srv.Close)

	c := wiki.NewClient(wiki.WithURL(srv.URL))
	_, err := c.FetchLua(context.Background())
	assert.Error(t, err)
}

func TestFetchLuaServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "locked", http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	c := wiki.NewClient(wiki.WithURL(srv.URL))
	_, err := c.FetchLua(context.Background())
	assert.Error(t, err)
}
