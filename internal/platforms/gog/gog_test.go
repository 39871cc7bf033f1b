package gog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"vcheck/internal/models"
	"vcheck/internal/structures"
	"vcheck/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUA = "test-agent"

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *testutil.MockObserver) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	conf := &structures.Config{Upstream: structures.UpstreamConfig{
		GogCatalogURL:   srv.URL + "/v1/catalog",
		GogContentURL:   srv.URL + "/products/{game_id}/os/{os}/builds?generation=2",
		UserAgent:       testUA,
		Timeout:         time.Second,
		MaxResponseSize: 1 << 20,
	}}
	observer := &testutil.MockObserver{}
	c := NewClient(conf, srv.Client(), &testutil.MockLogger{}, observer).(*Client)
	return c, observer
}

func TestSearch_MapsProducts(t *testing.T) {
	c, observer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/catalog", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "witcher", q.Get("query"))
		assert.Equal(t, "20", q.Get("limit"))
		assert.Equal(t, "in:game", q.Get("productType"))
		assert.Equal(t, "desc:score", q.Get("order"))
		assert.Equal(t, testUA, r.Header.Get("User-Agent"))
		assert.Equal(t, "https://www.gog.com/", r.Header.Get("Referer"))
		_, _ = w.Write([]byte(`{"products":[
			{"id":"1207658924","title":"The Witcher 3","operatingSystems":["windows","osx"]},
			{"id":1495134320,"title":"Cyberpunk 2077"}
		]}`))
	})

	hits, err := c.Search(context.Background(), "witcher")
	require.NoError(t, err)
	require.Len(t, hits, 2)

	assert.Equal(t, models.SearchHit{
		ID:          "1207658924",
		Title:       "The Witcher 3",
		Platform:    models.PlatformGog,
		SupportedOS: []string{"windows", "osx"},
	}, hits[0])
	assert.Equal(t, "1495134320", hits[1].ID)
	assert.NotNil(t, hits[1].SupportedOS)
	assert.Empty(t, hits[1].SupportedOS)

	require.Len(t, observer.Calls, 1)
	assert.Equal(t, opSearch, observer.Calls[0].Operation)
	assert.NoError(t, observer.Calls[0].Err)
}

func TestSearch_Non200ReturnsEmptyList(t *testing.T) {
	c, observer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	hits, err := c.Search(context.Background(), "witcher")
	assert.NotNil(t, hits)
	assert.Empty(t, hits)
	assert.ErrorIs(t, err, models.ErrUpstreamUnavailable)
	require.Len(t, observer.Calls, 1)
	assert.Error(t, observer.Calls[0].Err)
}

func TestSearch_InvalidJSON(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>blocked</html>`))
	})

	hits, err := c.Search(context.Background(), "witcher")
	assert.Empty(t, hits)
	assert.ErrorIs(t, err, models.ErrParseFailure)
}

func TestFetchVersion_LatestBuild(t *testing.T) {
	c, observer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/1207658924/os/windows/builds", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("generation"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"total_count":2,"items":[
			{"version_name":"4.04a","date_published":"2023-06-01T10:15:00+0000"},
			{"version_name":"4.03","date_published":"2023-01-01T09:00:00+0000"}
		]}`))
	})

	info, err := c.FetchVersion(context.Background(), " 1207658924 ", models.GogOSWindows)
	require.NoError(t, err)
	assert.Equal(t, models.VersionInfo{Version: "4.04a", ReleaseDate: "2023-06-01"}, info)

	require.Len(t, observer.Calls, 1)
	assert.Equal(t, opVersion, observer.Calls[0].Operation)
}

func TestFetchVersion_MacSelector(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/42/os/osx/builds", r.URL.Path)
		_, _ = w.Write([]byte(`{"items":[{"version_name":"1.0","date_published":"2022-05-05T00:00:00+0000"}]}`))
	})

	info, err := c.FetchVersion(context.Background(), "42", "mac")
	require.NoError(t, err)
	assert.Equal(t, "2022-05-05", info.ReleaseDate)
}

func TestFetchVersion_UnsupportedOS(t *testing.T) {
	called := false
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := c.FetchVersion(context.Background(), "42", "beos")
	assert.ErrorIs(t, err, models.ErrUnsupportedOS)
	assert.False(t, called)
}

func TestFetchVersion_MissingFieldsDefault(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{"build_id":"1"}]}`))
	})

	info, err := c.FetchVersion(context.Background(), "42", models.GogOSLinux)
	require.NoError(t, err)
	assert.Equal(t, unknownVersion, info.Version)
	assert.False(t, info.HasDate())
}

func TestFetchVersion_EmptyBuildsIsNoData(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total_count":0,"items":[]}`))
	})

	info, err := c.FetchVersion(context.Background(), "42", models.GogOSWindows)
	assert.ErrorIs(t, err, models.ErrNoData)
	assert.Equal(t, models.ReasonNoData, models.ReasonOf(err))
	assert.False(t, info.HasDate())
}

func TestFetchVersion_NotFoundStatus(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := c.FetchVersion(context.Background(), "0", models.GogOSWindows)
	assert.ErrorIs(t, err, models.ErrUpstreamUnavailable)
}

func TestFetchVersion_TransportError(t *testing.T) {
	conf := &structures.Config{Upstream: structures.UpstreamConfig{
		GogContentURL: "http://127.0.0.1:1/products/{game_id}/os/{os}/builds",
		UserAgent:     testUA,
	}}
	c := NewClient(conf, &http.Client{Timeout: time.Second}, &testutil.MockLogger{}, &testutil.MockObserver{})

	_, err := c.FetchVersion(context.Background(), "42", models.GogOSWindows)
	assert.ErrorIs(t, err, models.ErrUpstreamUnavailable)
}
