// common.go
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

package handlers

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/paintstore/internal/types"
)

// pathName returns the URL-decoded, trimmed path parameter key.
// Class names such as "Solid Colors" arrive percent-encoded.
func pathName(c *fiber.Ctx, key string) (string, error) {
	raw := c.Params(key)
	name, err := url.PathUnescape(raw)
	if err != nil {
		return "", types.ValidationError(fmt.Sprintf("Invalid %s %q", key, raw))
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", types.ValidationError(fmt.Sprintf("Missing %s", key))
	}
	return name, nil
}

// pathID returns the positive integer path parameter key
func pathID(c *fiber.Ctx, key string) (uint, error) {
	raw := c.Params(key)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, types.ValidationError(fmt.Sprintf("Invalid %s %q", key, raw))
	}
	return uint(id), nil
}

// flexPtr converts an optional FlexInt to an optional int64
func flexPtr(f *types.FlexInt) *int64 {
	if f == nil {
		return nil
	}
	v := f.Int64()
	return &v
}
