package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"recordlabel-backend/internal/shared/authz"
	"recordlabel-backend/internal/shared/response"
	"recordlabel-backend/pkg/jwt"
)

// ActorKey is the gin context key holding the resolved *authz.Actor.
const ActorKey = "actor"

// Actor resolves an optional bearer token into the request's actor.
// No header means an anonymous visitor (nil actor); a malformed or invalid token is a 401.
func Actor(tokens *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		// Extract token từ "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateAccessToken(parts[1])
		if err != nil {
			log.Debug().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("Rejected bearer token")
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(ActorKey, authz.NewActor(claims.UserID, claims.Permissions...))
		c.Next()
	}
}

// ActorFrom returns the request's actor, nil for anonymous requests.
func ActorFrom(c *gin.Context) *authz.Actor {
	v, ok := c.Get(ActorKey)
	if !ok {
		return nil
	}
	actor, _ := v.(*authz.Actor)
	return actor
}
