package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the caller identity injected by the Auth middleware
// and performs a fast-fail check before any service call: both email and
// username must be present, otherwise the JWT was structurally valid but
// carries no usable identity and the request is rejected with 401.
func ctxIdentity(c echo.Context) (email, username string, err error) {
	email, _ = c.Get("email").(string)
	username, _ = c.Get("username").(string)
	if email == "" || username == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, username, nil
}
