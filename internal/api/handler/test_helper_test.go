package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/martijn/trainhub/internal/core/repository"
	"github.com/martijn/trainhub/internal/core/service"
	"github.com/martijn/trainhub/internal/infrastructure/memory"
)

// testEnv holds all test dependencies
type testEnv struct {
	router  *gin.Engine
	catalog *service.CatalogService
}

// setupTestEnv routes every resource without auth middleware.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repos := make(map[string]repository.RecordRepository)
	for name := range service.Schemas() {
		repos[name] = memory.NewRecords(name)
	}
	catalog := service.NewCatalogService(repos, service.NewTokenService("test-secret"), nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	for name := range repos {
		h := NewResourceHandler(catalog, name)
		router.GET("/"+name, h.List)
		router.POST("/"+name, h.Create)
		router.GET("/"+name+"/:id", h.Get)
		router.PUT("/"+name+"/:id", h.Update)
		router.DELETE("/"+name+"/:id", h.Delete)
		router.GET("/"+name+"/:id/sessions", h.Sessions)
	}

	authHandler := NewAuthHandler(catalog)
	router.POST("/auth/login", authHandler.Login)
	router.POST("/auth/register", authHandler.Register)

	health := NewHealthHandler(nil, "")
	router.GET("/health", health.Health)
	router.GET("/health/db", health.DBHealth)

	return &testEnv{router: router, catalog: catalog}
}

// do performs a request; body may be a string of raw JSON or any value to
// encode.
func (env *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch b := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		buf = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// seed creates a record and returns its id.
func (env *testEnv) seed(t *testing.T, resource string, body map[string]any) int64 {
	t.Helper()

	w := env.do(t, http.MethodPost, "/"+resource, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to seed %s: %d %s", resource, w.Code, w.Body.String())
	}
	var rec map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("failed to parse seed response: %v", err)
	}
	return int64(rec["id"].(float64))
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to parse response %q: %v", w.Body.String(), err)
	}
	return v
}
