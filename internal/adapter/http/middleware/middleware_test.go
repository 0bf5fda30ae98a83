package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quoteportal/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestCorrelationID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen string
	r := gin.New()
	r.Use(CorrelationID())
	r.GET("/x", func(c *gin.Context) {
		seen = pkg.CorrelationID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("reuses incoming header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(pkg.CorrelationHeader, "abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if seen != "abc" || w.Header().Get(pkg.CorrelationHeader) != "abc" {
			t.Fatalf("expected abc, got ctx=%q header=%q", seen, w.Header().Get(pkg.CorrelationHeader))
		}
	})

	t.Run("generates when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		if seen == "" || w.Header().Get(pkg.CorrelationHeader) != seen {
			t.Fatalf("expected generated id echoed, got ctx=%q header=%q", seen, w.Header().Get(pkg.CorrelationHeader))
		}
	})
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(origins []string) *gin.Engine {
		r := gin.New()
		r.Use(CORS(origins))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("reflects allowed origin with credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "http://portal.test")
		w := httptest.NewRecorder()
		newRouter([]string{"http://portal.test"}).ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://portal.test" {
			t.Fatalf("expected reflected origin, got %q", got)
		}
		if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
			t.Fatalf("expected credentials allowed")
		}
	})

	t.Run("ignores unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "http://evil.test")
		w := httptest.NewRecorder()
		newRouter([]string{"http://portal.test"}).ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Fatalf("expected no CORS header, got %q", got)
		}
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/x", nil)
		req.Header.Set("Origin", "http://any.test")
		w := httptest.NewRecorder()
		newRouter([]string{"*"}).ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://any.test" {
			t.Fatalf("expected reflected origin, got %q", got)
		}
	})
}

func TestRecover(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Recover(zap.NewNop()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if body := w.Body.String(); body == "" || body[0] != '{' {
		t.Fatalf("expected JSON error body, got %q", body)
	}
}
