package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mingle-social/api-go/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the externally-issued bearer token against the
// shared secret. A missing credential is 401, a present but unverifiable
// one is 403; both reject with an empty body before any handler runs.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims := jwt.MapClaims{}
		parsedToken, err := jwt.ParseWithClaims(bearerToken[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !parsedToken.Valid {
			slog.Warn("Token verification failed",
				"error", errString(err),
				"request_id", c.GetString("request_id"),
			)
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		userClaims := &utils.Claims{}
		if sub, ok := claims["sub"].(string); ok {
			userClaims.Subject = sub
		}
		if email, ok := claims["email"].(string); ok {
			userClaims.Email = email
		}

		// A token with no email claim cannot be mapped to a user record.
		if userClaims.Email == "" {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Set(string(utils.UserContextKey), userClaims)

		c.Next()
	}
}

func errString(err error) string {
	if err == nil {
		return "token not valid"
	}
	return err.Error()
}
