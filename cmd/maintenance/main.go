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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/localnerve/paintstore/internal/config"
	"github.com/localnerve/paintstore/internal/database"
	"github.com/localnerve/paintstore/internal/logging"
	"github.com/localnerve/paintstore/internal/models"
	"github.com/localnerve/paintstore/internal/services"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "paintstore-maintenance",
		Usage: "operator tasks against the paintstore database",
		Commands: []*cli.Command{
			{
				Name:  "clear-sales",
				Usage: "permanently delete every sales history record",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "skip the confirmation prompt"},
				},
				Action: clearSales,
			},
			{
				Name:  "create-user",
				Usage: "add a user to the directory",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true, EnvVars: []string{"NEW_USER_PASSWORD"}},
					&cli.StringFlag{Name: "role", Aliases: []string{"r"}, Value: models.RoleEmployee, Usage: "employee or admin"},
				},
				Action: createUser,
			},
			{
				Name:   "migrate",
				Usage:  "create or update tables and seed default paint classes",
				Action: migrate,
			},
		},
	}
}

// open loads configuration and connects to the configured store
func open() (*gorm.DB, *logrus.Logger, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Connect(cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		_ = database.Close(db)
		return nil, nil, nil, err
	}
	return db, log, cfg, nil
}

func clearSales(c *cli.Context) error {
	if !c.Bool("yes") && !confirm(os.Stdin, c.App.Writer, "This deletes the entire sales history and cannot be undone.") {
		return cli.Exit("aborted", 1)
	}

	db, log, _, err := open()
	if err != nil {
		return err
	}
	defer database.Close(db)

	deleted, err := services.ClearSalesHistory(context.Background(), db)
	if err != nil {
		return fmt.Errorf("clear sales history: %w", err)
	}

	log.WithField("deleted", deleted).Info("Sales history cleared")
	fmt.Fprintf(c.App.Writer, "Deleted %d sales records\n", deleted)
	return nil
}

func createUser(c *cli.Context) error {
	db, log, _, err := open()
	if err != nil {
		return err
	}
	defer database.Close(db)

	user, err := services.CreateUser(context.Background(), db, services.NewUser{
		Username: c.String("username"),
		Password: c.String("password"),
		Role:     c.String("role"),
	})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"username": user.Username, "role": user.Role}).Info("User created")
	return nil
}

func migrate(c *cli.Context) error {
	db, log, cfg, err := open()
	if err != nil {
		return err
	}
	defer database.Close(db)

	if cfg.SeedDefaults {
		if _, err := database.SeedPaintClasses(db, log); err != nil {
			return err
		}
	}

	log.Info("Migration complete")
	return nil
}

// confirm asks the operator to type "yes"
func confirm(in io.Reader, out io.Writer, warning string) bool {
	fmt.Fprintf(out, "%s\nType 'yes' to continue: ", warning)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}
