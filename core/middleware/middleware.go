package middleware

import (
	stderrors "errors"
	"strings"

	"surfplan-api/core/cache"
	"surfplan-api/core/constants"
	"surfplan-api/core/controller"
	"surfplan-api/core/errors"
	"surfplan-api/core/logger"
	"surfplan-api/core/utils"

	"github.com/labstack/echo/v4"
)

// Middleware holds dependencies shared by route middlewares.
type Middleware struct {
	cache *cache.Cache
}

func New(c *cache.Cache) *Middleware {
	return &Middleware{cache: c}
}

// AuthMiddleware validates the Bearer token, rejects blacklisted tokens and
// stores the parsed claims on the request context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return controller.NewErrorResponse(401, errors.ErrMissingAuthorizationHeader, "missing authorization header")
			}

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return controller.NewErrorResponse(401, errors.ErrInvalidTokenFormat, "authorization header must be a Bearer token")
			}

			blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
			if err != nil {
				logger.Error("AuthMiddleware:IsTokenBlacklisted", err)
				return controller.NewErrorResponse(500, errors.ErrInternalServer, "failed to verify token")
			}
			if blacklisted {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "token has been revoked")
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				if stderrors.Is(err, utils.ErrTokenExpired) {
					return controller.NewErrorResponse(401, errors.ErrTokenExpired, "token expired")
				}
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "invalid token")
			}
			if claims.Type != utils.TokenTypeAccess {
				return controller.NewErrorResponse(401, errors.ErrInvalidTokenFormat, "refresh token cannot be used for access")
			}

			c.Set(constants.ContextTokenData, claims)
			c.Set(constants.ContextBearerToken, token)
			return next(c)
		}
	}
}
