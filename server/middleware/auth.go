// Package middleware provides the Gin middleware used by the login server:
// session authentication, request IDs, request logging, and panic recovery.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/RazorNd/telegram-login/authctx"
	apperrors "github.com/RazorNd/telegram-login/errors"
	"github.com/RazorNd/telegram-login/session"
)

// RequireAuth returns middleware that validates the session token issued
// after a Telegram login and stores its claims in the request context.
// The token is taken from the Authorization header (Bearer scheme) or, for
// redirect-based flows, from the session cookie.
func RequireAuth(sessions *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie("telegram_session"); err == nil {
				token = cookie
			}
		}
		if token == "" {
			abortWithError(c, apperrors.Unauthorized(""))
			return
		}

		claims, err := sessions.Parse(token)
		if err != nil {
			abortWithError(c, apperrors.InvalidToken().WithCause(err))
			return
		}

		c.Request = c.Request.WithContext(authctx.Set(c.Request.Context(), claims))
		c.Next()
	}
}

// RequireAuthority returns middleware that additionally demands a specific
// authority on the session claims. Must run after RequireAuth.
func RequireAuthority(authority string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := authctx.GetOrError[*session.Claims](c.Request.Context())
		if err != nil {
			abortWithError(c, apperrors.Unauthorized(""))
			return
		}
		for _, granted := range claims.Authorities {
			if granted == authority {
				c.Next()
				return
			}
		}
		abortWithError(c, apperrors.Unauthorized("Missing required authority."))
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func abortWithError(c *gin.Context, err *apperrors.AppError) {
	c.AbortWithStatusJSON(err.HTTPStatus, err.ToResponse())
}
