package middleware

import (
	"net/http"
	"strings"

	"candiqr/internal/apierror"
	"candiqr/internal/model"
	"candiqr/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ClaimsKey = "claims"
	UserKey   = "current_user"
)

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token on every protected route, then re-fetches
// the user from the store so a deactivated account is rejected on its very
// next request — no revocation list needed. The three failure modes get
// distinct messages: missing token, invalid/expired token, and user gone or
// deactivated.
func JWTAuth(secret string, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Fail("Autentikasi diperlukan"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Fail("Token tidak valid atau kedaluwarsa"))
			return
		}

		uid, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Fail("Token tidak valid atau kedaluwarsa"))
			return
		}

		user, err := users.FindByID(c.Request.Context(), uid)
		if err != nil || !user.Active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Fail("User tidak ditemukan atau nonaktif"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(UserKey, user)
		c.Next()
	}
}

// GetClaims retrieves typed claims from the Gin context, or nil when the
// request never passed JWTAuth.
func GetClaims(c *gin.Context) *JWTClaims {
	v, _ := c.Get(ClaimsKey)
	claims, _ := v.(*JWTClaims)
	return claims
}

// GetUser retrieves the freshly loaded user from the Gin context, or nil.
func GetUser(c *gin.Context) *model.User {
	v, _ := c.Get(UserKey)
	user, _ := v.(*model.User)
	return user
}
