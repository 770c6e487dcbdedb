package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/traintrack/training-api/internal/token"
)

func testIssuer(t *testing.T) *token.Issuer {
	t.Helper()
	return token.NewIssuer([]byte("test-secret"), time.Hour)
}

func signedCookie(t *testing.T, iss *token.Issuer, userID string) *http.Cookie {
	t.Helper()
	signed, _, err := iss.Issue(userID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return &http.Cookie{Name: CookieName, Value: signed}
}

func runGate(t *testing.T, iss *token.Issuer, path string, cookie *http.Cookie) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)

	reachedNext := false
	handler := Gate(iss, false)(func(c echo.Context) error {
		reachedNext = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("gate returned error: %v", err)
	}
	return rec, reachedNext
}

func clearedCookie(t *testing.T, rec *httptest.ResponseRecorder) bool {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName && c.MaxAge < 0 && c.Value == "" {
			return true
		}
	}
	return false
}

func TestGate_NoToken_DashboardRedirectsToLogin(t *testing.T) {
	rec, reachedNext := runGate(t, testIssuer(t), "/dashboard", nil)

	if reachedNext {
		t.Fatalf("handler should not run without a token")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/auth/login" {
		t.Fatalf("expected redirect to /auth/login, got %q", loc)
	}
	if !clearedCookie(t, rec) {
		t.Fatalf("expected cleared token cookie")
	}
}

func TestGate_NoToken_AuthPagePassesThrough(t *testing.T) {
	rec, reachedNext := runGate(t, testIssuer(t), "/auth/login", nil)

	if !reachedNext {
		t.Fatalf("auth page must be reachable without a token")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGate_InvalidToken_RedirectsAndClearsCookie(t *testing.T) {
	for _, path := range []string{"/dashboard", "/dashboard/settings", "/auth/login"} {
		rec, reachedNext := runGate(t, testIssuer(t), path, &http.Cookie{Name: CookieName, Value: "garbage"})

		if reachedNext {
			t.Fatalf("%s: handler should not run with an invalid token", path)
		}
		if rec.Code != http.StatusFound {
			t.Fatalf("%s: expected 302, got %d", path, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/auth/login" {
			t.Fatalf("%s: expected redirect to /auth/login, got %q", path, loc)
		}
		if !clearedCookie(t, rec) {
			t.Fatalf("%s: expected cleared token cookie", path)
		}
	}
}

func TestGate_ValidToken_AuthPageRedirectsToDashboard(t *testing.T) {
	iss := testIssuer(t)
	rec, reachedNext := runGate(t, iss, "/auth/login", signedCookie(t, iss, "user-1"))

	if reachedNext {
		t.Fatalf("authenticated users must not see auth pages")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}
}

func TestGate_ValidToken_DashboardPassesThrough(t *testing.T) {
	iss := testIssuer(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/progress", nil)
	req.AddCookie(signedCookie(t, iss, "user-1"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reachedNext := false
	handler := Gate(iss, false)(func(c echo.Context) error {
		reachedNext = true
		if c.Get("user_id") != "user-1" {
			t.Fatalf("user_id not injected")
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("gate returned error: %v", err)
	}

	if !reachedNext {
		t.Fatalf("valid token on dashboard must pass through")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGate_ExpiredToken_RedirectsToLogin(t *testing.T) {
	// Sign a token whose expiry is already in the past.
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "user-1",
		"exp":    time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	rec, reachedNext := runGate(t, testIssuer(t), "/dashboard", &http.Cookie{Name: CookieName, Value: signed})

	if reachedNext {
		t.Fatalf("expired token must not pass the gate")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
}

// A token with a flipped signature byte must be rejected by the gate and by
// RequireAuth identically: neither may fall back to a decode-only check.
func TestGate_TamperedToken_RejectedByGateAndAPI(t *testing.T) {
	iss := testIssuer(t)
	signed, _, err := iss.Issue("user-1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	parts := strings.Split(signed, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)
	cookie := &http.Cookie{Name: CookieName, Value: tampered}

	rec, reachedNext := runGate(t, iss, "/dashboard", cookie)
	if reachedNext {
		t.Fatalf("gate accepted a tampered token")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("gate: expected 302, got %d", rec.Code)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	req.AddCookie(cookie)
	apiRec := httptest.NewRecorder()
	c := e.NewContext(req, apiRec)

	handler := RequireAuth(iss)(func(c echo.Context) error {
		t.Fatalf("API accepted a tampered token")
		return nil
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if apiRec.Code != http.StatusUnauthorized {
		t.Fatalf("API: expected 401, got %d", apiRec.Code)
	}
}
