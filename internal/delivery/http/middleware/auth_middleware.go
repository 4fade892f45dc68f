package middleware

import (
	"net/http"
	"strings"

	"github.com/studevo/Studevo/internal/delivery/http/response"
	"github.com/studevo/Studevo/internal/domain"
	"github.com/studevo/Studevo/pkg/auth"
	"github.com/studevo/Studevo/pkg/security"

	"github.com/gin-gonic/gin"
)

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AuthMiddleware requires a valid bearer token and exposes its claims on the context.
// A nil verifier rejects every request.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			response.Error(c, http.StatusUnauthorized, "Token authentication is not configured")
			c.Abort()
			return
		}

		header := c.GetHeader("Authorization")
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == "" || tokenString == "" || tokenString == header {
			response.Error(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		claims, err := verifier.Verify(tokenString)
		if err != nil {
			security.Log(security.Event{
				Type:      security.EventUnauthorizedAccess,
				IP:        c.ClientIP(),
				RequestID: c.GetString(string(domain.KeyRequestID)),
				Reason:    err.Error(),
			})
			response.Error(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		c.Set(string(domain.KeyAccountID), claims.Subject)
		c.Set(string(domain.KeyAccountEmail), claims.Email)
		c.Set(string(domain.KeyAccountRole), claims.Role)
		c.Next()
	}
}
