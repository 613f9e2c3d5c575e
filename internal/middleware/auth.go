package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/cabin-scheduler/internal/config"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextActor    = "actor"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header")
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {

			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWT.Secret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid_token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "invalid_token_claims")
			return
		}

		userID, ok1 := claims["sub"].(float64)
		roleStr, _ := claims["role"].(string)
		role, ok2 := actor.ParseRole(roleStr)
		if !ok1 || !ok2 || role == actor.RoleSystem {
			abortUnauthorized(c, "invalid_token_payload")
			return
		}

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextUserRole, string(role))
		c.Set(ContextActor, actor.Actor{UserID: uint(userID), Role: role})

		c.Next()
	}
}

// RequireRoles barra a rota antes do handler. Os use cases checam de novo.
func RequireRoles(roles ...actor.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActorFrom(c).Is(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, httperr.HTTPError{
				Code:    "forbidden",
				Message: httperr.Message("forbidden"),
			})
			return
		}
		c.Next()
	}
}

// ActorFrom devolve o ator autenticado (zero se a rota for pública).
func ActorFrom(c *gin.Context) actor.Actor {
	if v, ok := c.Get(ContextActor); ok {
		if a, ok := v.(actor.Actor); ok {
			return a
		}
	}
	return actor.Actor{}
}

func abortUnauthorized(c *gin.Context, code string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{
		Code:    code,
		Message: httperr.Message("unauthorized"),
	})
}
