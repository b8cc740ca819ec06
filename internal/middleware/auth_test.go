// auth_test.go — Tests for the shared-key auth middleware.
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// newAuthRouter wires the middleware in front of a trivial handler.
func newAuthRouter(configuredKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(APIKeyAuth(configuredKey))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestAPIKeyAuth(t *testing.T) {
	tests := []struct {
		name          string
		configuredKey string
		header        string
		value         string
		wantStatus    int
	}{
		{
			name:          "no key configured passes everything",
			configuredKey: "",
			wantStatus:    http.StatusOK,
		},
		{
			name:          "matching X-API-Key",
			configuredKey: "secret",
			header:        "X-API-Key",
			value:         "secret",
			wantStatus:    http.StatusOK,
		},
		{
			name:          "matching bearer token",
			configuredKey: "secret",
			header:        "Authorization",
			value:         "Bearer secret",
			wantStatus:    http.StatusOK,
		},
		{
			name:          "wrong key rejected",
			configuredKey: "secret",
			header:        "X-API-Key",
			value:         "guess",
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "missing key rejected",
			configuredKey: "secret",
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "non-bearer authorization rejected",
			configuredKey: "secret",
			header:        "Authorization",
			value:         "Basic secret",
			wantStatus:    http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthRouter(tt.configuredKey)

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
