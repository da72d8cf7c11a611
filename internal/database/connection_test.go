// connection_test.go
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

package database

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/localnerve/paintstore/internal/config"
	"github.com/localnerve/paintstore/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func openTestStore(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		DBType:        "sqlite",
		DBPath:        filepath.Join(t.TempDir(), "inventory.db"),
		DBBusyTimeout: 5 * time.Second,
		DBLogLevel:    "silent",
	}
	db, err := Connect(cfg, quietLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestConnectUnsupported(t *testing.T) {
	_, err := Connect(&config.Config{DBType: "oracle"}, quietLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database type")
}

func TestAutoMigrateIsRepeatable(t *testing.T) {
	db := openTestStore(t)
	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{"paint_classes", "products", "sales", "users"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasColumn(&models.Sale{}, "buyer_name"))
}

func TestSeedPaintClasses(t *testing.T) {
	db := openTestStore(t)

	created, err := SeedPaintClasses(db, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 4, created)

	var names []string
	require.NoError(t, db.Model(&models.PaintClass{}).Order("id").Pluck("name", &names).Error)
	assert.Equal(t, []string{"Solid Colors", "Metallic", "Pearl", "Matte"}, names)

	// second run leaves existing classes alone
	created, err = SeedPaintClasses(db, quietLogger())
	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestUniqueAndForeignKeyClassification(t *testing.T) {
	db := openTestStore(t)

	require.NoError(t, db.Create(&models.PaintClass{Name: "Matte"}).Error)
	err := db.Create(&models.PaintClass{Name: "Matte"}).Error
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err))
	assert.False(t, IsForeignKeyViolation(err))

	err = db.Create(&models.Product{Name: "Orphan", Stock: 1, PaintClassID: 999}).Error
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))
}

func TestDriverErrorClassification(t *testing.T) {
	assert.True(t, IsDuplicateKey(fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062})))
	assert.True(t, IsForeignKeyViolation(&mysql.MySQLError{Number: 1451}))
	assert.True(t, IsDuplicateKey(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsDuplicateKey(errors.New("disk I/O error")))
	assert.False(t, IsDuplicateKey(nil))
}
