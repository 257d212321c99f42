package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/nmaupu/cocktails/internal/auth"
)

func newGatedRouter(sessions *auth.Sessions) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	gated := r.Group("/")
	gated.Use(RequireSession(sessions))
	{
		gated.GET("/admin", func(c *gin.Context) {
			c.String(http.StatusOK, "admin")
		})
		gated.POST("/api/toggle-ingredient", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})
	}
	return r
}

// TestRequireSession_APIGets401: unauthenticated API calls get a JSON
// 401 instead of a redirect.
func TestRequireSession_APIGets401(t *testing.T) {
	r := newGatedRouter(auth.NewSessions("test-secret"))

	req := httptest.NewRequest(http.MethodPost, "/api/toggle-ingredient", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

// TestRequireSession_PageRedirects: unauthenticated page requests are
// sent to the login form.
func TestRequireSession_PageRedirects(t *testing.T) {
	r := newGatedRouter(auth.NewSessions("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}
}

func TestRequireSession_ValidCookie(t *testing.T) {
	sessions := auth.NewSessions("test-secret")
	r := newGatedRouter(sessions)

	token, err := sessions.Issue()
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestRequireSession_TamperedCookie(t *testing.T) {
	sessions := auth.NewSessions("test-secret")
	r := newGatedRouter(sessions)

	token, err := auth.NewSessions("other-secret").Issue()
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect for a forged cookie, got %d", w.Code)
	}
}
