package middleware

import (
	"net/http"
	"strings"

	"diagramadoria/internal/domain"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

const (
	// IdentityKey - ключ, под которым аутентифицированный пользователь лежит в контексте gin
	IdentityKey string = "identity"
)

// authClaims - полезная нагрузка токена: идентификатор пользователя и его роль
type authClaims struct {
	UserID int    `json:"sub"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// AuthMiddleware проверяет JWT из заголовка Authorization и кладёт
// аутентифицированного пользователя в контекст запроса.
// Токены подписываются HS256 общим секретом.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			c.Abort()
			return
		}

		claims := &authClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		if claims.UserID == 0 || (claims.Role != string(domain.RoleStudent) && claims.Role != string(domain.RoleTeacher)) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			c.Abort()
			return
		}

		c.Set(IdentityKey, domain.Actor{
			ID:   claims.UserID,
			Role: domain.Role(claims.Role),
		})

		c.Next()
	}
}

// GetActor достаёт аутентифицированного пользователя из контекста gin.
func GetActor(c *gin.Context) (domain.Actor, bool) {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return domain.Actor{}, false
	}
	actor, ok := value.(domain.Actor)
	return actor, ok
}
