package middleware

import (
	"jobhub-backend/internal/config"
	"jobhub-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"jobhub-backend/internal/pkg/logger"
)

// Setup configures the application-wide middleware stack.
func Setup(app *fiber.App, cfg *config.Config) {
	app.Use(recover.New())
	app.Use(requestid.New())

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	app.Use(helmet.New(helmet.Config{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	// Request log via the shared structured logger
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		logger.Get().Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Str("ip", c.IP()).
			Msg("request")
		return err
	})

	// Credentials may only be allowed against an explicit origin list;
	// the wildcard origin with credentials is rejected by Fiber.
	origins := cfg.AllowedOrigins()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: origins != "" && origins != "*",
	}))
}

// ErrorHandler is the global Fiber error handler: unexpected faults are
// logged and surfaced as structured 500 payloads, never swallowed.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	} else {
		logger.Get().Error().Err(err).
			Str("path", c.Path()).
			Msg("unhandled error")
	}

	return response.Error(c, code, message)
}
