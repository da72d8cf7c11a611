// version_test.go
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

package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/paintstore/internal/middleware"
	"github.com/localnerve/paintstore/internal/testhelpers"
	"github.com/localnerve/paintstore/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionMiddleware(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler(testhelpers.QuietLogger())})
	app.Use(middleware.VersionMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("apiVersion").(string))
	})

	for _, requested := range []string{"", "1", "1.0", "v1.0.0"} {
		req := httptest.NewRequest("GET", "/", nil)
		if requested != "" {
			req.Header.Set("X-Api-Version", requested)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		testhelpers.AssertStatus(t, resp, fiber.StatusOK)
		assert.Equal(t, middleware.APIVersion, resp.Header.Get("X-Api-Version"), requested)
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Api-Version", "2.0.0")
	resp, err := app.Test(req)
	require.NoError(t, err)
	testhelpers.AssertStatus(t, resp, fiber.StatusBadRequest)
}
