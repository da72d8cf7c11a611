// main.go
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

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/localnerve/paintstore/internal/config"
	"github.com/localnerve/paintstore/internal/database"
	"github.com/localnerve/paintstore/internal/logging"
	"github.com/localnerve/paintstore/internal/server"
	"github.com/localnerve/paintstore/internal/services"
	"github.com/sirupsen/logrus"

	_ "time/tzdata" // DISPLAY_TIMEZONE must resolve on hosts without zoneinfo
)

// @title Paintstore API
// @version 1.0.0
// @description Inventory and point-of-sale service for a paint store
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/paintstore
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token from /auth/login

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	logrus.SetLevel(log.GetLevel())
	logrus.SetFormatter(log.Formatter)

	// Connect to database
	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if cfg.SeedDefaults {
		if _, err := database.SeedPaintClasses(db, log); err != nil {
			log.Fatalf("Failed to seed paint classes: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	created, err := services.EnsureAdmin(ctx, db, cfg.AdminUsername, cfg.AdminPassword)
	cancel()
	if err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	if created {
		log.WithField("username", cfg.AdminUsername).Info("Created admin user")
	}

	app := server.NewApp(server.Deps{Config: cfg, DB: db, Log: log})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Gracefully shutting down...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	// Start server
	log.WithFields(logrus.Fields{
		"port":     cfg.Port,
		"database": cfg.DBType,
		"timezone": cfg.DisplayTimezone,
	}).Info("Starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Info("Server stopped")
}
