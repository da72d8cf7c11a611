// auth.go
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
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/paintstore/internal/models"
	"github.com/localnerve/paintstore/internal/services"
	"github.com/localnerve/paintstore/internal/types"
	"gorm.io/gorm"
)

// ClaimsKey is the fiber.Ctx Locals key holding the verified *services.Claims
const ClaimsKey = "claims"

// AuthAdmin allows only admins through
func AuthAdmin(tokens *services.TokenIssuer, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, tokens, db, []string{models.RoleAdmin})
	}
}

// AuthUser allows any signed-in employee or admin through
func AuthUser(tokens *services.TokenIssuer, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, tokens, db, []string{models.RoleEmployee, models.RoleAdmin})
	}
}

// authorize verifies the bearer token, then checks the role the user
// directory holds now rather than the one in the token.
func authorize(c *fiber.Ctx, tokens *services.TokenIssuer, db *gorm.DB, roles []string) error {
	token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return types.UnauthorizedError("Authorization bearer token required")
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		return types.UnauthorizedError("Invalid or expired token")
	}

	role, err := services.CurrentRole(c.UserContext(), db, claims.Username())
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return types.UnauthorizedError("Invalid or expired token")
		}
		return err
	}
	claims.Role = role

	if !hasRole(claims.Role, roles) {
		return types.ForbiddenError("Insufficient role for this operation")
	}

	c.Locals(ClaimsKey, claims)
	return c.Next()
}

// CurrentClaims returns the claims stored by AuthAdmin or AuthUser, if any
func CurrentClaims(c *fiber.Ctx) (*services.Claims, bool) {
	claims, ok := c.Locals(ClaimsKey).(*services.Claims)
	return claims, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func hasRole(role string, roles []string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
