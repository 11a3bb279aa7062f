package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/studytrack/studytrack-backend/internal/config"
	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/service"
)

const testCookieName = "token"

func testRouter(t *testing.T, auth *service.AuthService, extra ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{RequireAuth(auth, testCookieName)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "role": claims.Role})
	})
	r.GET("/protected", handlers...)
	return r
}

func newTestAuth() *service.AuthService {
	return service.NewAuthService(&config.Config{
		JWTSecret: "middleware-test-secret",
		JWTExpiry: time.Hour,
	})
}

func TestRequireAuthMissingToken(t *testing.T) {
	r := testRouter(t, newTestAuth())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRequireAuthBearerToken(t *testing.T) {
	auth := newTestAuth()
	r := testRouter(t, auth)

	token, err := auth.Issue(7, model.RoleStudent)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}

func TestRequireAuthCookieToken(t *testing.T) {
	auth := newTestAuth()
	r := testRouter(t, auth)

	token, err := auth.Issue(7, model.RoleStudent)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}

// The cookie always wins over the Authorization header. A garbage cookie
// next to a valid bearer token must fail rather than silently fall back.
func TestCookieTakesPrecedenceOverBearer(t *testing.T) {
	auth := newTestAuth()
	r := testRouter(t, auth)

	token, err := auth.Issue(7, model.RoleStudent)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "garbage"})
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 when cookie is invalid", w.Code)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	r := testRouter(t, newTestAuth())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRequireRoles(t *testing.T) {
	auth := newTestAuth()

	tests := []struct {
		name    string
		role    model.Role
		allowed []model.Role
		want    int
	}{
		{"admin allowed", model.RoleAdmin, []model.Role{model.RoleAdmin}, http.StatusOK},
		{"teacher allowed among several", model.RoleTeacher, []model.Role{model.RoleAdmin, model.RoleTeacher}, http.StatusOK},
		{"student forbidden", model.RoleStudent, []model.Role{model.RoleAdmin, model.RoleTeacher}, http.StatusForbidden},
		{"teacher forbidden from admin-only", model.RoleTeacher, []model.Role{model.RoleAdmin}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testRouter(t, auth, RequireRoles(tt.allowed...))

			token, err := auth.Issue(1, tt.role)
			if err != nil {
				t.Fatal(err)
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
