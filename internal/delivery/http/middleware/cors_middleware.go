package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// defaultAllowOrigins is the fixed local development allow-list.
const defaultAllowOrigins = "http://localhost:3000, http://localhost:5173, http://127.0.0.1:5173, http://localhost"

func (m *Middleware) CorsMiddleware() fiber.Handler {
	allowOrigins := defaultAllowOrigins
	if m != nil && m.Config != nil {
		if v := m.Config.GetString("api.cors.origins"); v != "" {
			allowOrigins = v
		}
	}

	return cors.New(cors.Config{
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Content-Length, Accept-Encoding",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE",
		AllowOrigins:     allowOrigins,
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length, Content-Type",
	})
}
