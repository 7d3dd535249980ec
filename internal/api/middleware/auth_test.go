package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, secret, scope string, claims jwt.MapClaims) string {
	t.Helper()
	if claims == nil {
		claims = jwt.MapClaims{}
	}
	claims["scope"] = scope
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func invokeAuth(t *testing.T, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := Auth(testSecret)(next)(c)
	return c, err
}

func TestAuthInjectsIdentity(t *testing.T) {
	token := signTestToken(t, testSecret, "access_token", jwt.MapClaims{
		"sub":      "jane@example.com",
		"user_id":  float64(7),
		"username": "janedoe",
		"role":     "moderator",
	})

	c, err := invokeAuth(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := c.Get("email"); got != "jane@example.com" {
		t.Errorf("email = %v, want jane@example.com", got)
	}
	if got := c.Get("username"); got != "janedoe" {
		t.Errorf("username = %v, want janedoe", got)
	}
	if got := c.Get("role"); got != "moderator" {
		t.Errorf("role = %v, want moderator", got)
	}
	if got, _ := c.Get("user_id").(int64); got != 7 {
		t.Errorf("user_id = %v, want 7", got)
	}
}

func TestAuthMissingHeader(t *testing.T) {
	_, err := invokeAuth(t, "")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuthMalformedHeader(t *testing.T) {
	_, err := invokeAuth(t, "Token abc")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuthWrongSecret(t *testing.T) {
	token := signTestToken(t, "other-secret", "access_token", nil)
	_, err := invokeAuth(t, "Bearer "+token)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuthExpiredToken(t *testing.T) {
	token := signTestToken(t, testSecret, "access_token", jwt.MapClaims{
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	_, err := invokeAuth(t, "Bearer "+token)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuthRejectsRefreshScope(t *testing.T) {
	token := signTestToken(t, testSecret, "refresh_token", nil)
	_, err := invokeAuth(t, "Bearer "+token)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != want {
		t.Errorf("status = %d, want %d", httpErr.Code, want)
	}
}
