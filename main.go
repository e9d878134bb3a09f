package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"schoolhub_backend/internals/configs"
	database "schoolhub_backend/internals/databases"
	middlewares "schoolhub_backend/internals/middlewares"
	routes "schoolhub_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		BodyLimit:             12 * 1024 * 1024, // headroom above the 10MB upload cap
	})

	middlewares.SetupMiddlewares(app)

	// The server still comes up without a database so /health can
	// report the outage instead of the process crash-looping.
	if err := database.ConnectDB(); err != nil {
		log.Printf("[ERROR] database connect: %v", err)
	} else {
		database.TunePool()
		if err := database.Migrate(database.DB); err != nil {
			log.Printf("[ERROR] migrate: %v", err)
		}
	}

	routes.SetupRoutes(app, database.DB)

	// Static SPA bundle. Unmatched GETs outside /api fall back to
	// index.html so client-side routes survive a refresh.
	app.Static("/", "./web")
	app.Use(func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodGet && !strings.HasPrefix(c.Path(), "/api") {
			return c.SendFile("./web/index.html")
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Route not found"})
	})

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "5000")

	go func() {
		log.Printf("[INFO] Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	database.Close()
}
