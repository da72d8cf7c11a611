// containers.go
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

package testhelpers

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Credentials used for every throwaway store container
const (
	ContainerDatabase = "paintstore"
	ContainerUser     = "paintstore"
	ContainerPassword = "paintstore-test"
)

// StoreContainer is a running network database for tests and local runs
type StoreContainer struct {
	Container testcontainers.Container
	DBType    string
	Host      string
	Port      string
}

// Terminate stops and removes the container
func (sc *StoreContainer) Terminate(ctx context.Context) error {
	if sc == nil || sc.Container == nil {
		return nil
	}
	return sc.Container.Terminate(ctx)
}

// Env returns the DB_* settings that point the service at this container
func (sc *StoreContainer) Env() map[string]string {
	return map[string]string{
		"DB_TYPE":     sc.DBType,
		"DB_HOST":     sc.Host,
		"DB_PORT":     sc.Port,
		"DB_DATABASE": ContainerDatabase,
		"DB_USER":     ContainerUser,
		"DB_PASSWORD": ContainerPassword,
	}
}

// StartStore runs image as a dbType store (mariadb, mysql or postgres) and waits for its port
func StartStore(ctx context.Context, image, dbType string) (*StoreContainer, error) {
	port, env, err := storeContainerEnv(dbType)
	if err != nil {
		return nil, err
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(port)},
			Env:          env,
			WaitingFor:   wait.ForListeningPort(port).WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", image, err)
	}

	sc := &StoreContainer{Container: container, DBType: dbType}

	host, err := container.Host(ctx)
	if err != nil {
		_ = sc.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	mapped, err := container.MappedPort(ctx, port)
	if err != nil {
		_ = sc.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	sc.Host = host
	sc.Port = mapped.Port()
	return sc, nil
}

func storeContainerEnv(dbType string) (nat.Port, map[string]string, error) {
	switch dbType {
	case "postgres", "postgresql":
		port, err := nat.NewPort("tcp", "5432")
		return port, map[string]string{
			"POSTGRES_DB":       ContainerDatabase,
			"POSTGRES_USER":     ContainerUser,
			"POSTGRES_PASSWORD": ContainerPassword,
		}, err
	case "mysql", "mariadb":
		port, err := nat.NewPort("tcp", "3306")
		return port, map[string]string{
			"MARIADB_DATABASE":      ContainerDatabase,
			"MARIADB_USER":          ContainerUser,
			"MARIADB_PASSWORD":      ContainerPassword,
			"MARIADB_ROOT_PASSWORD": ContainerPassword,
			"MYSQL_DATABASE":        ContainerDatabase,
			"MYSQL_USER":            ContainerUser,
			"MYSQL_PASSWORD":        ContainerPassword,
			"MYSQL_ROOT_PASSWORD":   ContainerPassword,
		}, err
	default:
		return "", nil, fmt.Errorf("no container recipe for database type %q", dbType)
	}
}
