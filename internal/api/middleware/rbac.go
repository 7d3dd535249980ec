package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/contactly/clients-api/internal/core/domain"
)

// RBAC enforces role-based access control for one operation. The allowed
// role set lives in the domain access table, not in the route definitions;
// this middleware only asks the gate. Denial happens before any store
// access, so forbidden calls never cause side effects. The central error
// handler renders the denial as a 403.
func RBAC(op domain.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !domain.Allowed(domain.Role(role), op) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
