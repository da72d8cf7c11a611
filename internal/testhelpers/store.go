// store.go
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
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/localnerve/paintstore/internal/config"
	"github.com/localnerve/paintstore/internal/database"
	"github.com/localnerve/paintstore/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TestSecret signs tokens in tests
const TestSecret = "test-secret-not-for-production"

// QuietLogger discards everything
func QuietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// TestConfig returns a config for a fresh store file under t.TempDir
func TestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Port:             "0",
		CORSAllowOrigins: "http://localhost:3000",
		DBType:           "sqlite",
		DBPath:           filepath.Join(t.TempDir(), "inventory.db"),
		DBBusyTimeout:    5 * time.Second,
		DBLogLevel:       "silent",
		JWTSecret:        TestSecret,
		TokenTTL:         time.Hour,
		DisplayTimezone:  "Africa/Nairobi",
		LogLevel:         "error",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Invalid test config: %v", err)
	}
	return cfg
}

// NewTestDB opens a migrated store for cfg, closed when the test ends
func NewTestDB(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()
	db, err := database.Connect(cfg, QuietLogger())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// CreateTestClass inserts a paint class
func CreateTestClass(t *testing.T, db *gorm.DB, name string) models.PaintClass {
	t.Helper()
	class := models.PaintClass{Name: name}
	if err := db.Create(&class).Error; err != nil {
		t.Fatalf("Failed to create paint class %s: %v", name, err)
	}
	return class
}

// CreateTestProduct inserts a product under className, creating the class if needed
func CreateTestProduct(t *testing.T, db *gorm.DB, name string, stock int64, className string) models.Product {
	t.Helper()
	var class models.PaintClass
	if err := db.Where(models.PaintClass{Name: className}).FirstOrCreate(&class).Error; err != nil {
		t.Fatalf("Failed to find paint class %s: %v", className, err)
	}

	product := models.Product{Name: name, Stock: stock, PaintClassID: class.ID}
	if err := db.Omit("PaintClass").Create(&product).Error; err != nil {
		t.Fatalf("Failed to create product %s: %v", name, err)
	}
	product.PaintClass = class
	return product
}

// Stock reads the current stock of product name
func Stock(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	var product models.Product
	if err := db.Where("name = ?", name).First(&product).Error; err != nil {
		t.Fatalf("Failed to find product %s: %v", name, err)
	}
	return product.Stock
}

// CountSales returns the number of rows in the sales ledger
func CountSales(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.Sale{}).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count sales: %v", err)
	}
	return count
}
