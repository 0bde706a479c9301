package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/studysched/tutor-scheduler/internal/config"
	"github.com/studysched/tutor-scheduler/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}

func signToken(t *testing.T, secret string, userID uint, role string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  float64(userID),
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func authedRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/private", AuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet(ContextUserID),
			"role":    c.MustGet(ContextUserRole),
		})
	})
	r.GET("/tutor-only", AuthMiddleware(cfg), RequireRole(models.RoleTutor), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/public", OptionalAuth(cfg), func(c *gin.Context) {
		_, authed := c.Get(ContextUserID)
		c.JSON(http.StatusOK, gin.H{"authed": authed})
	})
	return r
}

func doGet(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testConfig()
	r := authedRouter(cfg)

	if w := doGet(r, "/private", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no header: status = %d, want 401", w.Code)
	}
	if w := doGet(r, "/private", "Token abc"); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong scheme: status = %d, want 401", w.Code)
	}
	if w := doGet(r, "/private", "Bearer not-a-token"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", w.Code)
	}

	wrongKey := signToken(t, "other-secret", 1, models.RoleTutor)
	if w := doGet(r, "/private", "Bearer "+wrongKey); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong key: status = %d, want 401", w.Code)
	}

	valid := signToken(t, cfg.JWTSecret, 1, models.RoleTutor)
	if w := doGet(r, "/private", "Bearer "+valid); w.Code != http.StatusOK {
		t.Errorf("valid token: status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}

func TestRequireRole(t *testing.T) {
	cfg := testConfig()
	r := authedRouter(cfg)

	tutor := signToken(t, cfg.JWTSecret, 1, models.RoleTutor)
	if w := doGet(r, "/tutor-only", "Bearer "+tutor); w.Code != http.StatusOK {
		t.Errorf("tutor: status = %d, want 200", w.Code)
	}

	student := signToken(t, cfg.JWTSecret, 2, models.RoleStudent)
	if w := doGet(r, "/tutor-only", "Bearer "+student); w.Code != http.StatusForbidden {
		t.Errorf("student: status = %d, want 403", w.Code)
	}
}

func TestOptionalAuth(t *testing.T) {
	cfg := testConfig()
	r := authedRouter(cfg)

	// Anonymous and broken credentials both pass through unauthenticated.
	for _, header := range []string{"", "Bearer junk", "Token abc"} {
		w := doGet(r, "/public", header)
		if w.Code != http.StatusOK {
			t.Errorf("header %q: status = %d, want 200", header, w.Code)
		}
		if w.Body.String() != `{"authed":false}` {
			t.Errorf("header %q: body = %s, want unauthenticated", header, w.Body.String())
		}
	}

	valid := signToken(t, cfg.JWTSecret, 3, models.RoleStudent)
	w := doGet(r, "/public", "Bearer "+valid)
	if w.Code != http.StatusOK || w.Body.String() != `{"authed":true}` {
		t.Errorf("valid token: status = %d body = %s, want authenticated 200", w.Code, w.Body.String())
	}
}
