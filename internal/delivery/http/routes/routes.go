package routes

import (
	"log"

	"jobscout/internal/database"
	"jobscout/internal/delivery/http/handler"
	"jobscout/internal/delivery/http/middleware"
	v1 "jobscout/internal/delivery/http/routes/v1"
	"jobscout/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(app *fiber.App, db database.DB, cache usecase.RankCache, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())

	health := handler.NewHealthHandler(db)
	app.Get("/health", health.HandleHealth)

	v1.Register(app.Group("/v1"), db, cache, logger)
}
