package middleware

import (
	"context"
	"strings"

	"guest-order-api/core/errors"
	"guest-order-api/core/logger"
	"guest-order-api/core/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyTenant = "tenant"
	contextKeyToken  = "token_data"
)

// TenantContext is the resolved tenant identity attached to guest requests.
type TenantContext struct {
	ID        uuid.UUID
	Name      string
	Subdomain string
	Active    bool
}

// TenantResolver maps a request hostname's first label to a tenant. Implemented
// by the tenant service; injected here so no module is imported from core.
type TenantResolver interface {
	ResolveBySubdomain(ctx context.Context, subdomain string) (*TenantContext, error)
}

type Middleware struct {
	tenants TenantResolver
}

func NewMiddleware(tenants TenantResolver) *Middleware {
	return &Middleware{tenants: tenants}
}

// TenantMiddleware resolves the tenant from the Host header's first label and
// stores it on the request context. Guest-facing routes require it.
func (m *Middleware) TenantMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sub := SubdomainFromHost(c.Request().Host)
			if sub == "" {
				return echo.NewHTTPError(404, errors.NewAppError(errors.ErrTenantNotFound, "unknown hostname", nil))
			}

			tenant, err := m.tenants.ResolveBySubdomain(c.Request().Context(), sub)
			if err != nil {
				logger.Warn("Middleware:TenantMiddleware:ResolveError", "subdomain", sub, "error", err)
				return echo.NewHTTPError(404, errors.NewAppError(errors.ErrTenantNotFound, "unknown tenant", nil))
			}
			if !tenant.Active {
				return echo.NewHTTPError(403, errors.NewAppError(errors.ErrTenantInactive, "tenant is not active", nil))
			}

			c.Set(contextKeyTenant, tenant)
			return next(c)
		}
	}
}

// AuthMiddleware validates the Bearer token and stores its claims.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(401, errors.NewAppError(errors.ErrMissingAuthorizationHeader, "missing authorization header", nil))
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header {
				return echo.NewHTTPError(401, errors.NewAppError(errors.ErrInvalidTokenFormat, "expected bearer token", nil))
			}

			data, err := utils.ValidateAndParseToken(token)
			if err != nil {
				return echo.NewHTTPError(401, err)
			}

			c.Set(contextKeyToken, data)
			return next(c)
		}
	}
}

// RequireRole gates a route to the given roles. Must run after AuthMiddleware.
func (m *Middleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			data := GetTokenData(c)
			if data == nil {
				return echo.NewHTTPError(401, errors.NewAppError(errors.ErrUnauthorized, "not authenticated", nil))
			}
			for _, role := range roles {
				if data.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(403, errors.NewAppError(errors.ErrForbidden, "insufficient role", nil))
		}
	}
}

// GetTenant returns the tenant attached by TenantMiddleware, or nil.
func GetTenant(c echo.Context) *TenantContext {
	tenant, _ := c.Get(contextKeyTenant).(*TenantContext)
	return tenant
}

// GetTokenData returns the JWT claims attached by AuthMiddleware, or nil.
func GetTokenData(c echo.Context) *utils.TokenData {
	data, _ := c.Get(contextKeyToken).(*utils.TokenData)
	return data
}

// SubdomainFromHost extracts the first hostname label. "localhost" (with or
// without a port) maps to the "demo" tenant for local development.
func SubdomainFromHost(host string) string {
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	if host == "localhost" || host == "127.0.0.1" {
		return "demo"
	}
	parts := strings.Split(host, ".")
	if len(parts) == 0 || parts[0] == "" {
		return ""
	}
	return strings.ToLower(parts[0])
}
