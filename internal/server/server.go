// server.go
//
// Paint store inventory and point-of-sale service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of paintstore.
// paintstore is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// paintstore is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with paintstore.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package server

import (
	"strings"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/localnerve/paintstore/internal/config"
	"github.com/localnerve/paintstore/internal/handlers"
	"github.com/localnerve/paintstore/internal/middleware"
	"github.com/localnerve/paintstore/internal/services"
	"github.com/localnerve/paintstore/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "github.com/localnerve/paintstore/docs/api" // Swagger docs
)

// Deps are the collaborators the HTTP front is built from
type Deps struct {
	Config *config.Config
	DB     *gorm.DB
	Log    *logrus.Logger

	// Registerer and Gatherer default to the Prometheus globals
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewApp builds the fiber application with every route and middleware mounted
func NewApp(d Deps) *fiber.App {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	app := fiber.New(fiber.Config{
		AppName:               "paintstore",
		ErrorHandler:          utils.ErrorHandler(d.Log),
		DisableStartupMessage: true,
	})

	// Global middleware
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))

	accessLog := d.Log.WriterLevel(logrus.InfoLevel)
	app.Hooks().OnShutdown(accessLog.Close)
	app.Use(logger.New(logger.Config{
		Output:     accessLog,
		Format:     "${status} ${method} ${path} ${latency}\n",
		TimeFormat: "2006-01-02T15:04:05Z07:00",
	}))

	app.Use(compress.New())
	app.Use(corsMiddleware(d.Config))

	// Prometheus metrics
	prom := fiberprometheus.NewWithRegistry(d.Registerer, "paintstore", "http", "", nil)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	app.Use(prom.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	health := &handlers.HealthHandler{Config: d.Config, DB: d.DB}
	app.Get("/health", health.Health)

	registerAPI(app, d)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "[404] Resource Not Found")
	})

	return app
}

func registerAPI(app *fiber.App, d Deps) {
	tokens := services.NewTokenIssuer(d.Config.JWTSecret, d.Config.TokenTTL)

	catalog := &handlers.CatalogHandler{DB: d.DB}
	inventory := &handlers.InventoryHandler{DB: d.DB, Location: d.Config.Location, Log: d.Log}
	auth := &handlers.AuthHandler{DB: d.DB, Tokens: tokens}

	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	// Public catalog reads
	api.Get("/paint-classes", catalog.ListPaintClasses)
	api.Get("/items", catalog.ListItems)
	api.Get("/search", catalog.Search)

	// Store floor
	api.Post("/sell", middleware.AuthUser(tokens, d.DB), inventory.Sell)
	api.Get("/sales-history", middleware.AuthUser(tokens, d.DB), inventory.SalesHistory)

	// Admin catalog
	admin := api.Group("/admin", middleware.AuthAdmin(tokens, d.DB))
	admin.Post("/paint-classes", catalog.CreatePaintClass)
	admin.Put("/paint-classes/:name", catalog.RenamePaintClass)
	admin.Delete("/paint-classes/:name", catalog.DeletePaintClass)
	admin.Post("/products", catalog.CreateProduct)
	admin.Put("/products/:id", catalog.UpdateProduct)
	admin.Delete("/products/:id", catalog.DeleteProduct)

	// Auth
	api.Post("/auth/login", auth.Login)
	users := api.Group("/auth/users", middleware.AuthAdmin(tokens, d.DB))
	users.Post("/", auth.CreateUser)
	users.Get("/", auth.ListUsers)
	users.Delete("/:username", auth.DeleteUser)
}

// corsMiddleware allows the configured web origins directly and matches
// desktop-shell origins (app://, file://) exactly through AllowOriginsFunc.
func corsMiddleware(cfg *config.Config) fiber.Handler {
	web, other := cfg.SplitOrigins()

	shell := make(map[string]struct{}, len(other))
	for _, origin := range other {
		shell[strings.ToLower(origin)] = struct{}{}
	}

	return cors.New(cors.Config{
		AllowOrigins: strings.Join(web, ","),
		AllowOriginsFunc: func(origin string) bool {
			_, ok := shell[strings.ToLower(origin)]
			return ok
		},
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	})
}
