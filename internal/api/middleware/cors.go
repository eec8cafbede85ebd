package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// allowedOrigins - фронтенды, которым разрешены cross-origin запросы
var allowedOrigins = map[string]bool{
	"http://localhost:5173":  true,
	"http://localhost:4173":  true,
	"https://diagramadoria.vercel.app": true,
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowedOrigins[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
