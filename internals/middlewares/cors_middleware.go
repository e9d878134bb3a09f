package middlewares

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"schoolhub_backend/internals/configs"
)

var netlifyPattern = regexp.MustCompile(`^https://.*\.netlify\.app$`)

// CorsMiddleware allows the known frontend origins plus any *.netlify.app
// deployment preview.
func CorsMiddleware() fiber.Handler {
	allowed := []string{
		"http://localhost:3000",
		"http://localhost:3001",
	}
	if configs.FrontendURL != "" {
		allowed = append(allowed, configs.FrontendURL)
	}

	return cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			for _, o := range allowed {
				if origin == o {
					return true
				}
			}
			return netlifyPattern.MatchString(origin)
		},
		AllowMethods:     strings.Join([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}, ","),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
