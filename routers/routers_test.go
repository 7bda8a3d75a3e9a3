package routers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/config"
)

func newTestConfig() config.Config {
	var cfg config.Config
	cfg.Server.SiteURL = "http://localhost:3000"
	cfg.Server.UploadsDir = "./uploads"
	cfg.Auth.Secret = "test-secret"
	return cfg
}

func TestSetupRoutersReturnsUsableEngine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Route registration must not need live backends.
	router := SetupRouters(newTestConfig(), nil, nil, nil, nil)
	require.NotNil(t, router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/anything", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// Protected routes reject before any handler dependency is touched.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/products", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
