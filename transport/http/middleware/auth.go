package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"alora/config"
	"alora/infras/jwt"
	"alora/infras/otel"
	"alora/permissions"
	"alora/shared/constant"
	"alora/shared/failure"
	"alora/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole guards the staff-only routes.
type AuthRole interface {
	Auth
	Role
}

// tokenErrors maps token validation errors to client messages.
var tokenErrors = []struct {
	err     error
	message string
}{
	{err: jwt.ErrMissingHeader, message: "Missing authorization header"},
	{err: jwt.ErrInvalidHeader, message: "Invalid authorization header format"},
	{err: jwt.ErrExpiredToken, message: "Token has expired"},
	{err: jwt.ErrInvalidToken, message: "Invalid token"},
	{err: jwt.ErrInvalidClaim, message: "Invalid token claims"},
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// Auth requires an access token unless the request was already trusted by APIKey
// or the route is marked skip in the permission table.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		path := routePattern(request)
		if trusted(ctx) || (m.permission != nil && m.permission.FindPermissions(path, request.Method).Skip) {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		claims, err := m.claims(request)
		if err != nil {
			deny(writer, scope, failure.Unauthorized(tokenMessage(err)))

			return
		}

		next.ServeHTTP(writer, request.WithContext(context.WithValue(ctx, constant.ContextKeyClaims, claims)))
	})
}

func (m *authRoleImpl) claims(request *http.Request) (*jwt.Claims, error) {
	token, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return m.jwtService.ValidateToken(token, jwt.AccessToken) //nolint:wrapcheck
}

func tokenMessage(err error) string {
	for _, known := range tokenErrors {
		if errors.Is(err, known.err) {
			return known.message
		}
	}

	return "Token validation failed"
}

// RBAC admits the request when the caller's level is listed for the route.
// A route without listed levels is open to any authenticated caller.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		if trusted(ctx) {
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		permission := m.permission.FindPermissions(routePattern(request), request.Method)
		if m.permission.Skip || permission.Skip || len(permission.Permissions) == 0 {
			next.ServeHTTP(writer, request)

			return
		}

		var role string
		if claims, ok := jwt.ContextClaims(ctx); ok {
			role = claims.Role
		}

		if !slices.Contains(permission.Permissions, role) {
			scope.SetAttributes(map[string]any{
				"user_role":     role,
				"allowed_roles": permission.Permissions,
			})
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// APIKey trusts internal callers presenting the configured key. Requests without the
// header fall through to token auth; a wrong key is rejected outright.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)
		if apiKey == "" {
			scope.SetAttribute("http.source", "client")
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKey == "" || apiKey != m.cfg.App.APIKey {
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request.WithContext(context.WithValue(ctx, constant.ContextKeySkipAuth, true)))
	})
}

func trusted(ctx context.Context) bool {
	skip, _ := ctx.Value(constant.ContextKeySkipAuth).(bool)

	return skip
}

func deny(writer http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	response.WithError(writer, err)
}

// routePattern resolves the full chi pattern of the request across mounted sub-routers.
func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	if pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); pattern != "" {
		return pattern
	}

	return request.URL.Path
}
