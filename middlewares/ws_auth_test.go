package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/VinitO1/Food-Order-Catering/utils"
	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

func wsAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/orders/:id/status", WSAuthMiddleware(testSecret), func(c *gin.Context) {
		c.String(http.StatusOK, "%d:%s", utils.CurrentUserID(c), utils.CurrentRole(c))
	})
	return r
}

func TestWSAuthAcceptsQueryToken(t *testing.T) {
	r := wsAuthRouter()
	token, err := utils.GenerateToken(42, "customer", testSecret, time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	// A browser websocket handshake carries no Authorization header.
	req := httptest.NewRequest(http.MethodGet, "/ws/orders/1/status?token="+token, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got, want := w.Body.String(), "42:customer"; got != want {
		t.Errorf("identity = %q, want %q", got, want)
	}
}

func TestWSAuthHeaderFallback(t *testing.T) {
	r := wsAuthRouter()
	token, err := utils.GenerateToken(7, "customer", testSecret, time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/ws/orders/1/status", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestWSAuthRejectsBadTokens(t *testing.T) {
	r := wsAuthRouter()
	expired, err := utils.GenerateToken(42, "customer", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	wrongKey, err := utils.GenerateToken(42, "customer", "other-secret", time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	cases := []struct {
		name string
		url  string
	}{
		{"no token at all", "/ws/orders/1/status"},
		{"garbage token", "/ws/orders/1/status?token=not-a-jwt"},
		{"expired token", "/ws/orders/1/status?token=" + expired},
		{"wrong signing key", "/ws/orders/1/status?token=" + wrongKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestAuthMiddlewareRoleGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", AuthMiddleware(testSecret, "admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	cases := []struct {
		role string
		want int
	}{
		{"admin", http.StatusOK},
		{"customer", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			token, err := utils.GenerateToken(1, tc.role, testSecret, time.Minute)
			if err != nil {
				t.Fatalf("generate token: %v", err)
			}
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}
