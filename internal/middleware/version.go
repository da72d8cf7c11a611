// version.go
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

package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/paintstore/internal/types"
)

// APIVersion is the only API version served
const APIVersion = "1.0.0"

const versionHeader = "X-Api-Version"

// VersionMiddleware accepts requests for API version 1 (1, 1.0 or 1.0.0, or no header)
// and echoes the served version on the response.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requested := strings.TrimPrefix(strings.TrimSpace(c.Get(versionHeader, APIVersion)), "v")

		switch requested {
		case "1", "1.0", APIVersion:
		default:
			return types.ValidationError(fmt.Sprintf("Unsupported API version %q", requested))
		}

		c.Set(versionHeader, APIVersion)
		c.Locals("apiVersion", APIVersion)
		return c.Next()
	}
}
