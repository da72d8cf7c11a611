// catalog_test.go
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

package handlers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/paintstore/internal/handlers"
	"github.com/localnerve/paintstore/internal/services"
	"github.com/localnerve/paintstore/internal/testhelpers"
	"github.com/localnerve/paintstore/internal/types"
	"github.com/localnerve/paintstore/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCatalog(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testhelpers.NewTestDB(t, testhelpers.TestConfig(t))

	app := newTestApp()
	handler := &handlers.CatalogHandler{DB: db}
	app.Get("/api/paint-classes", handler.ListPaintClasses)
	app.Get("/api/items", handler.ListItems)
	app.Get("/api/search", handler.Search)
	app.Post("/api/admin/paint-classes", handler.CreatePaintClass)
	app.Put("/api/admin/paint-classes/:name", handler.RenamePaintClass)
	app.Delete("/api/admin/paint-classes/:name", handler.DeletePaintClass)
	app.Post("/api/admin/products", handler.CreateProduct)
	app.Put("/api/admin/products/:id", handler.UpdateProduct)
	app.Delete("/api/admin/products/:id", handler.DeleteProduct)
	return app, db
}

// TestPaintClassRoutes tests create, rename and delete of a class with a space in its name
func TestPaintClassRoutes(t *testing.T) {
	app, _ := setupCatalog(t)

	resp, err := app.Test(testhelpers.JSONRequest(t, "POST", "/api/admin/paint-classes", map[string]string{"name": "Solid Colors"}, ""))
	require.NoError(t, err)
	testhelpers.AssertStatus(t, resp, fiber.StatusCreated)
	var created utils.SuccessResponseStruct
	testhelpers.ParseJSON(t, resp, &created)
	assert.True(t, created.Success)
	assert.NotZero(t, created.ID)

	resp, err = app.Test(testhelpers.JSONRequest(t, "POST", "/api/admin/paint-classes", map[string]string{"name": "Solid Colors"}, ""))
	require.NoError(t, err)
	testhelpers.AssertStatus(t, resp, fiber.StatusConflict)

	resp, err = app.Test(testhelpers.JSONRequest(t, "PUT", "/api/admin/paint-classes/Solid%20Colors", map[string]string{"name": "Solids"}, ""))
	require.NoError(t, err)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/paint-classes", nil))
	require.NoError(t, err)
	var names []string
	testhelpers.ParseJSON(t, resp, &names)
	assert.Equal(t, []string{"Solids"}, names)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/admin/paint-classes/Solid%20Colors", nil))
	require.NoError(t, err)
	testhelpers.AssertStatus(t, resp, fiber.StatusNotFound)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/admin/paint-classes/Solids", nil))
	require.NoError(t, err)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
}

func TestDeletePaintClassInUseRoute(t *testing.T) {
	app, db := setupCatalog(t)
	testhelpers.CreateTestProduct(t, db, "Red Gloss", 10, "Solid Colors")

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/admin/paint-classes/Solid%20Colors", nil))
	require.NoError(t, err)
	testhelpers.AssertStatus(t, resp, fiber.StatusConflict)

	var body utils.ErrorResponseStruct
	testhelpers.ParseJSON(t, resp, &body)
	assert.Equal(t, types.TypeConflict, body.Type)
	assert.Equal(t, "Cannot delete paint class that is being used by products", body.Message)
}

// TestProductRoutes tests the admin product endpoints and the public listings
func TestProductRoutes(t *testing.T) {
	app, db := setupCatalog(t)
	testhelpers.CreateTestClass(t, db, "Solid Colors")
	testhelpers.CreateTestClass(t, db, "Pearl")

	resp, err := app.Test(testhelpers.JSONRequest(t, "POST", "/api/admin/products", map[string]interface{}{
		"name": "Red Gloss", "stock": "10", "class": "Solid Colors",
	}, ""))
	require.NoError(t, err)
	testhelpers.AssertStatus(t, resp, fiber.StatusCreated)
	var created utils.SuccessResponseStruct
	testhelpers.ParseJSON(t, resp, &created)
	require.NotZero(t, created.ID)

	t.Run("missing stock", func(t *testing.T) {
		resp, err := app.Test(testhelpers.JSONRequest(t, "POST", "/api/admin/products", map[string]interface{}{
			"name": "Blue", "class": "Pearl",
		}, ""))
		require.NoError(t, err)
		testhelpers.AssertStatus(t, resp, fiber.StatusBadRequest)

		var body utils.ErrorResponseStruct
		testhelpers.ParseJSON(t, resp, &body)
		assert.Equal(t, "stock is required", body.Message)
	})

	t.Run("unknown class", func(t *testing.T) {
		resp, err := app.Test(testhelpers.JSONRequest(t, "POST", "/api/admin/products", map[string]interface{}{
			"name": "Blue", "stock": 1, "class": "Chrome",
		}, ""))
		require.NoError(t, err)
		testhelpers.AssertStatus(t, resp, fiber.StatusBadRequest)

		var body utils.ErrorResponseStruct
		testhelpers.ParseJSON(t, resp, &body)
		assert.Equal(t, "Invalid paint class", body.Message)
	})

	t.Run("update", func(t *testing.T) {
		resp, err := app.Test(testhelpers.JSONRequest(t, "PUT", "/api/admin/products/"+itoa(created.ID), map[string]interface{}{
			"stock": 4, "class": "Pearl",
		}, ""))
		require.NoError(t, err)
		testhelpers.AssertStatus(t, resp, fiber.StatusOK)

		resp, err = app.Test(httptest.NewRequest("GET", "/api/items", nil))
		require.NoError(t, err)
		var items []services.Item
		testhelpers.ParseJSON(t, resp, &items)
		assert.Equal(t, []services.Item{{ID: created.ID, Name: "Red Gloss", Stock: 4, Class: "Pearl"}}, items)
	})

	t.Run("update missing", func(t *testing.T) {
		resp, err := app.Test(testhelpers.JSONRequest(t, "PUT", "/api/admin/products/999", map[string]interface{}{"stock": 1}, ""))
		require.NoError(t, err)
		testhelpers.AssertStatus(t, resp, fiber.StatusNotFound)
	})

	t.Run("bad id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("DELETE", "/api/admin/products/abc", nil))
		require.NoError(t, err)
		testhelpers.AssertStatus(t, resp, fiber.StatusBadRequest)
	})

	t.Run("search", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/search?q=gloss", nil))
		require.NoError(t, err)
		var names []string
		testhelpers.ParseJSON(t, resp, &names)
		assert.Equal(t, []string{"Red Gloss"}, names)
	})

	t.Run("delete", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("DELETE", "/api/admin/products/"+itoa(created.ID), nil))
		require.NoError(t, err)
		testhelpers.AssertStatus(t, resp, fiber.StatusOK)

		resp, err = app.Test(httptest.NewRequest("DELETE", "/api/admin/products/"+itoa(created.ID), nil))
		require.NoError(t, err)
		testhelpers.AssertStatus(t, resp, fiber.StatusNotFound)
	})
}
