package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/crypto/bcrypt"

	"github.com/academiq/academiq/internal/i18n"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	engine := gin.New()
	engine.Use(RequestLogger(logger))
	engine.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	resp := performRequest(t, engine, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(buf.String(), "/ping") {
		t.Fatalf("expected request path in log output, got %s", buf.String())
	}
	if strings.Contains(buf.String(), `"lang"`) {
		t.Fatalf("expected no lang attribute without locale resolution, got %s", buf.String())
	}
}

func TestRequestLoggerIncludesResolvedLanguage(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	engine := gin.New()
	engine.Use(RequestLogger(logger))
	engine.GET("/page", func(c *gin.Context) {
		c.Set(LangContextKey, "ar")
		c.String(http.StatusOK, "ok")
	})

	performRequest(t, engine, httptest.NewRequest(http.MethodGet, "/page", nil))
	if !strings.Contains(buf.String(), `"lang":"ar"`) {
		t.Fatalf("expected resolved language in log output, got %s", buf.String())
	}
}

func TestAdminAuthDisabledWithoutHash(t *testing.T) {
	engine := gin.New()
	engine.GET("/admin", AdminAuth("admin", ""), func(c *gin.Context) { c.Status(http.StatusOK) })

	resp := performRequest(t, engine, httptest.NewRequest(http.MethodGet, "/admin", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when admin surface disabled, got %d", resp.Code)
	}
}

func TestAdminAuthChecksCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	engine := gin.New()
	engine.GET("/admin", AdminAuth("admin", string(hash)), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	resp := performRequest(t, engine, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", resp.Code)
	}
	if resp.Header().Get("WWW-Authenticate") == "" {
		t.Fatal("expected challenge header")
	}

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.SetBasicAuth("admin", "wrong")
	if resp := performRequest(t, engine, req); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.SetBasicAuth("intruder", "s3cret")
	if resp := performRequest(t, engine, req); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong user, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.SetBasicAuth("admin", "s3cret")
	if resp := performRequest(t, engine, req); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for valid credentials, got %d", resp.Code)
	}
}

func localeEngine(t *testing.T, routeLang string) *gin.Engine {
	t.Helper()
	translator, err := i18n.New()
	if err != nil {
		t.Fatalf("build translator: %v", err)
	}

	handler := func(c *gin.Context) {
		lang := c.GetString(LangContextKey)
		if _, ok := c.Get(LocalizerContextKey); !ok {
			t.Fatal("expected localizer in context")
		}
		if _, ok := c.MustGet(LocalizerContextKey).(*goi18n.Localizer); !ok {
			t.Fatal("unexpected localizer type")
		}
		c.String(http.StatusOK, lang)
	}

	engine := gin.New()
	engine.GET("/page", Locale(translator, routeLang, "en"), handler)
	engine.POST("/page", Locale(translator, routeLang, "en"), handler)
	engine.GET("/ar/page", Locale(translator, routeLang, "en"), handler)
	return engine
}

func TestLocaleUsesRouteLanguage(t *testing.T) {
	engine := localeEngine(t, "ar")
	resp := performRequest(t, engine, httptest.NewRequest(http.MethodGet, "/page", nil))
	if resp.Body.String() != "ar" {
		t.Fatalf("expected route language, got %q", resp.Body.String())
	}
}

func TestLocaleFallsBackToCookieThenDefault(t *testing.T) {
	engine := localeEngine(t, "")

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "fr"})
	if resp := performRequest(t, engine, req); resp.Body.String() != "en" {
		t.Fatalf("unknown cookie language must fall back to default, got %q", resp.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/page", nil)
	if resp := performRequest(t, engine, req); resp.Body.String() != "en" {
		t.Fatalf("expected default language, got %q", resp.Body.String())
	}
}

func TestLocaleRedirectsCookieLanguageToPrefixedTree(t *testing.T) {
	engine := localeEngine(t, "")

	req := httptest.NewRequest(http.MethodGet, "/page?tab=2", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "ar"})
	resp := performRequest(t, engine, req)
	if resp.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != "/ar/page?tab=2" {
		t.Fatalf("unexpected redirect target %q", loc)
	}

	// Already under the prefix: render with the cookie language, no loop.
	req = httptest.NewRequest(http.MethodGet, "/ar/page", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "ar"})
	if resp := performRequest(t, engine, req); resp.Code != http.StatusOK || resp.Body.String() != "ar" {
		t.Fatalf("expected prefixed path served as-is, got %d %q", resp.Code, resp.Body.String())
	}

	// Non-GET requests keep their body and render in place.
	req = httptest.NewRequest(http.MethodPost, "/page", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "ar"})
	if resp := performRequest(t, engine, req); resp.Code != http.StatusOK || resp.Body.String() != "ar" {
		t.Fatalf("expected POST served in place, got %d %q", resp.Code, resp.Body.String())
	}

	// A cookie for the default language never redirects.
	req = httptest.NewRequest(http.MethodGet, "/page", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})
	if resp := performRequest(t, engine, req); resp.Code != http.StatusOK || resp.Body.String() != "en" {
		t.Fatalf("expected default-language cookie served in place, got %d %q", resp.Code, resp.Body.String())
	}
}

func TestDecompressRequest(t *testing.T) {
	engine := gin.New()
	engine.POST("/data", DecompressRequest(), func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, string(body))
	})

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(`{"status":"completed"}`)); err != nil {
		t.Fatalf("compress body: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close gzip writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/data", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	resp := performRequest(t, engine, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Body.String() != `{"status":"completed"}` {
		t.Fatalf("unexpected decompressed body %q", resp.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/data", strings.NewReader("garbage"))
	req.Header.Set("Content-Encoding", "gzip")
	if resp := performRequest(t, engine, req); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid gzip, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/data", strings.NewReader("plain"))
	if resp := performRequest(t, engine, req); resp.Body.String() != "plain" {
		t.Fatalf("plain bodies must pass through, got %q", resp.Body.String())
	}
}
