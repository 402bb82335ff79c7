package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"bookstore-map/internal/config"
	"bookstore-map/internal/domains/bookstore/handler"
	"bookstore-map/internal/domains/bookstore/repository"
	"bookstore-map/internal/domains/bookstore/service"
	"bookstore-map/internal/shared/middleware"
	"bookstore-map/pkg/container"
	"bookstore-map/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feed = `[
	{"name":"S1","cityName":"A","townName":"X","hitRate":5},
	{"name":"S2","cityName":"A","townName":"Y"},
	{"name":"S3","cityName":"B","townName":"X"}
]`

type fakeCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	pingErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = b
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func (f *fakeCache) Ping(context.Context) error {
	return f.pingErr
}

func newTestContainer(t *testing.T, cache *fakeCache) *container.Container {
	t.Helper()
	gin.SetMode(gin.TestMode)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feed))
	}))
	t.Cleanup(upstream.Close)

	cfg := &config.Config{
		App:      config.AppConfig{Name: "Bookstore Map", Environment: "test", Port: "0", Version: "test"},
		OpenData: config.OpenDataConfig{URL: upstream.URL, Timeout: 5 * time.Second},
		Session:  config.SessionConfig{TTL: time.Hour},
	}

	c := &container.Container{
		Config:  cfg,
		Metrics: metrics.New(),
	}
	c.RecordRepo = repository.NewOpenDataRepository(cfg.OpenData.URL, cfg.OpenData.Timeout, c.Metrics)
	c.BookstoreService = service.NewBookstoreService(c.RecordRepo)
	if cache != nil {
		c.Cache = cache
		c.SelectionStore = repository.NewSelectionStore(cache, cfg.Session.TTL)
		c.BookstoreHandler = handler.NewBookstoreHandler(c.BookstoreService, c.SelectionStore)
	} else {
		c.BookstoreHandler = handler.NewBookstoreHandler(c.BookstoreService, nil)
	}
	return c
}

func serve(t *testing.T, r http.Handler, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookieName {
			return ck
		}
	}
	return nil
}

func TestHealthWithoutRedis(t *testing.T) {
	r, err := SetupRouter(newTestContainer(t, nil))
	require.NoError(t, err)

	rec := serve(t, r, "/api/v1/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
	assert.Equal(t, "disconnected", body["services"].(map[string]interface{})["redis"])
}

func TestHealthDegradedWhenRedisFails(t *testing.T) {
	cache := newFakeCache()
	cache.pingErr = errors.New("connection refused")
	r, err := SetupRouter(newTestContainer(t, cache))
	require.NoError(t, err)

	rec := serve(t, r, "/api/v1/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body["status"])
	assert.Contains(t, body["services"].(map[string]interface{})["redis"], "connection refused")
}

func TestStaticAssets(t *testing.T) {
	r, err := SetupRouter(newTestContainer(t, nil))
	require.NoError(t, err)

	rec := serve(t, r, "/static/placeholder.svg")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<svg")

	rec = serve(t, r, "/static/style.css")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIndexSetsSessionAndRestoresSelection(t *testing.T) {
	r, err := SetupRouter(newTestContainer(t, newFakeCache()))
	require.NoError(t, err)

	first := serve(t, r, "/?region=A&district=X")
	require.Equal(t, http.StatusOK, first.Code)
	assert.NotEmpty(t, first.Header().Get("X-Request-ID"))

	ck := sessionCookie(first)
	require.NotNil(t, ck)
	assert.Contains(t, first.Body.String(), "S1")

	second := serve(t, r, "/", ck)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Nil(t, sessionCookie(second))
	assert.Contains(t, second.Body.String(), "S1")
	assert.NotContains(t, second.Body.String(), "S2")
}

func TestBookstoresAPI(t *testing.T) {
	r, err := SetupRouter(newTestContainer(t, newFakeCache()))
	require.NoError(t, err)

	rec := serve(t, r, "/api/v1/bookstores?region=A&district=X&district=Y&sort=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, sessionCookie(rec))

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Cards []struct {
				Title string `json:"title"`
			} `json:"cards"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data.Cards, 2)
	assert.Equal(t, "S1", body.Data.Cards[0].Title)
	assert.Equal(t, "S2", body.Data.Cards[1].Title)
}

func TestMetricsEndpoint(t *testing.T) {
	r, err := SetupRouter(newTestContainer(t, nil))
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, serve(t, r, "/api/v1/bookstores").Code)

	rec := serve(t, r, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.True(t, strings.Contains(out, "opendata_fetch_total"))
	assert.Contains(t, out, `path="/api/v1/bookstores"`)
}

func TestUnknownRoute(t *testing.T) {
	r, err := SetupRouter(newTestContainer(t, nil))
	require.NoError(t, err)

	rec := serve(t, r, "/api/v1/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}
