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
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/paintstore/internal/testhelpers"
	"github.com/sirupsen/logrus"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")

	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Start a throwaway network database for running paintstore against MariaDB, MySQL or Postgres.
DB_IMAGE names the image (for example mariadb:11) and DB_TYPE the flavor (mariadb, mysql, postgres).
The DB_* settings for the running container are printed; Ctrl-C removes it.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

example
  DB_IMAGE=mariadb:11 DB_TYPE=mariadb testcontainers
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		logrus.Infof("Loading environment variables from %s", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			logrus.Fatalf("Failed to load environment variables: %v", err)
		}
	}

	image := os.Getenv("DB_IMAGE")
	if image == "" {
		logrus.Fatal("DB_IMAGE is required")
	}
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "mariadb"
	}

	ctx := context.Background()
	store, err := testhelpers.StartStore(ctx, image, dbType)
	if err != nil {
		logrus.Fatalf("Failed to create test container: %v", err)
	}

	env := store.Env()
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s=%s\n", k, env[k])
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	sig := <-sigs
	logrus.Infof("Received signal: %v, terminating test container...", sig)
	if err := store.Terminate(ctx); err != nil {
		logrus.Errorf("Failed to terminate container: %v", err)
	}
}
