package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/echofashion/storefront-api/internal/model"
)

const userKey = "user"

// Auth rejects requests without a valid session token.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userFromHeader(c, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// OptionalAuth resolves the identity when a valid token is present and
// lets the request through as a guest otherwise. Cart and checkout work
// without logging in.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := userFromHeader(c, secret); ok {
			c.Set(userKey, user)
		}
		c.Next()
	}
}

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUser(c)
		if !ok || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
			return
		}
		c.Next()
	}
}

// GetUser returns the authenticated identity set by Auth or OptionalAuth.
func GetUser(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}

// CurrentUserID returns the authenticated user id, or the guest sentinel.
func CurrentUserID(c *gin.Context) string {
	if user, ok := GetUser(c); ok {
		return user.ID
	}
	return model.GuestUserID
}

func userFromHeader(c *gin.Context, secret string) (model.User, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return model.User{}, false
	}

	token, err := jwt.Parse(header[7:], func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return model.User{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.User{}, false
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return model.User{}, false
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	admin, _ := claims["admin"].(bool)

	return model.User{ID: sub, Email: email, Name: name, IsAdmin: admin}, true
}
