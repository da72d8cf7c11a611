// main_test.go
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
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/paintstore/internal/services"
	"github.com/localnerve/paintstore/internal/testhelpers"
	"github.com/localnerve/paintstore/internal/utils"
)

func TestMain(m *testing.M) {
	services.PasswordParams.Memory = 8 * 1024
	services.PasswordParams.Threads = 1
	os.Exit(m.Run())
}

// newTestApp returns a bare fiber app with the production error handler
func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler(testhelpers.QuietLogger())})
}
