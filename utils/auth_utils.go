package utils

import (
	"github.com/gin-gonic/gin"
)

// Claims carries the fields this service uses from the verified token.
// The identity provider signs more than this; anything we do not read is
// ignored. An empty string means the claim was absent from the token.
type Claims struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
}

type contextKey string

const UserContextKey contextKey = "user"

// GetClaims returns the verified claims set by the auth middleware, or nil
// when the request did not pass through it.
func GetClaims(c *gin.Context) *Claims {
	v, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if claims, ok := v.(*Claims); ok {
		return claims
	}
	return nil
}
