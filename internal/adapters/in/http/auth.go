package http

import (
	"errors"
	"net/http"
	"strings"

	"atelier/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// actorContextKey is the echo context key under which the authenticated
// actor is stored by the auth middleware.
const actorContextKey = "actor"

var errNoActorInContext = errors.New("no authenticated actor in request context")

// authClaims are the token claims the service relies on: the subject is the
// actor's id and the custom role claim carries "Client" or "Administrator".
type authClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the Bearer token on every request and resolves it
// into a kernel.Actor stored in the request context. Tokens are HMAC-signed
// (HS256) with the shared secret; any other signing method is rejected.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c.Request().Header.Get("Authorization"))
			if err != nil {
				return unauthorized(c, err.Error())
			}

			claims := &authClaims{}
			_, err = jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (any, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil {
				return unauthorized(c, "invalid token")
			}

			actor, err := actorFromClaims(claims)
			if err != nil {
				return unauthorized(c, "invalid token claims")
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.New("invalid authorization header format")
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("empty token")
	}

	return token, nil
}

func actorFromClaims(claims *authClaims) (kernel.Actor, error) {
	subject, err := claims.GetSubject()
	if err != nil {
		return kernel.Actor{}, err
	}

	id, err := kernel.UUIDFromString(subject)
	if err != nil {
		return kernel.Actor{}, err
	}

	role, err := kernel.RoleFromString(claims.Role)
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(id, role)
}

// actorFromContext retrieves the actor the auth middleware resolved.
func actorFromContext(c echo.Context) (kernel.Actor, error) {
	actor, ok := c.Get(actorContextKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, errNoActorInContext
	}

	return actor, nil
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
