package middleware

import (
	"strings"

	"recruit-api/core/constants"
	"recruit-api/core/controller"
	"recruit-api/core/errors"
	"recruit-api/core/logger"
	"recruit-api/core/utils"

	"github.com/labstack/echo/v4"
)

// TokenValidator parses a raw bearer token into claims.
type TokenValidator func(token string) (*utils.TokenClaims, error)

type Middleware struct {
	validate TokenValidator
}

func NewMiddleware(validate TokenValidator) *Middleware {
	if validate == nil {
		validate = utils.ValidateAndParseToken
	}
	return &Middleware{validate: validate}
}

// AuthMiddleware requires a valid bearer token and stores its claims under
// constants.ContextTokenData.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return controller.NewBaseController().Unauthorized(errors.ErrMissingAuthorizationHeader, "missing authorization header")
			}

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return controller.NewBaseController().Unauthorized(errors.ErrInvalidTokenFormat, "authorization header must be a bearer token")
			}

			claims, err := m.validate(token)
			if err != nil {
				logger.Warn("Middleware:AuthMiddleware:ValidateToken", "error", err)
				code := errors.CodeOf(err)
				return controller.NewBaseController().Unauthorized(code, "invalid or expired token")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}
