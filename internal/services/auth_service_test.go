// auth_service_test.go
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

package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/localnerve/paintstore/internal/models"
	"github.com/localnerve/paintstore/internal/services"
	"github.com/localnerve/paintstore/internal/testhelpers"
	"github.com/localnerve/paintstore/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	ctx := context.Background()
	db := testhelpers.NewTestDB(t, testhelpers.TestConfig(t))

	_, err := services.CreateUser(ctx, db, services.NewUser{Username: "bob", Password: "pw123", Role: "manager"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrValidation))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUserDirectory(t *testing.T) {
	ctx := context.Background()
	db := testhelpers.NewTestDB(t, testhelpers.TestConfig(t))

	bob, err := services.CreateUser(ctx, db, services.NewUser{Username: " bob ", Password: "pw123", Role: models.RoleEmployee})
	require.NoError(t, err)
	assert.Equal(t, "bob", bob.Username)

	_, err = services.CreateUser(ctx, db, services.NewUser{Username: "bob", Password: "other", Role: models.RoleAdmin})
	assert.True(t, errors.Is(err, types.ErrConflict))

	_, err = services.CreateUser(ctx, db, services.NewUser{Username: "carol", Password: "", Role: models.RoleAdmin})
	assert.True(t, errors.Is(err, types.ErrValidation))

	var stored models.User
	require.NoError(t, db.Where("username = ?", "bob").First(&stored).Error)
	assert.NotEqual(t, "pw123", stored.Password)
	assert.True(t, strings.HasPrefix(stored.Password, "$argon2id$"))

	users, err := services.ListUsers(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, []services.UserView{{ID: bob.ID, Username: "bob", Role: "employee"}}, users)

	require.NoError(t, services.DeleteUser(ctx, db, "bob"))
	assert.True(t, errors.Is(services.DeleteUser(ctx, db, "bob"), types.ErrNotFound))
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	cfg := testhelpers.TestConfig(t)
	db := testhelpers.NewTestDB(t, cfg)
	tokens := services.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	_, err := services.CreateUser(ctx, db, services.NewUser{Username: "jane", Password: "s3cret", Role: models.RoleAdmin})
	require.NoError(t, err)

	res, err := services.Login(ctx, db, tokens, "jane", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, res.Role)

	claims, err := tokens.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "jane", claims.Username())
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(cfg.TokenTTL), claims.ExpiresAt.Time, time.Minute)

	_, wrongPassword := services.Login(ctx, db, tokens, "jane", "nope")
	_, unknownUser := services.Login(ctx, db, tokens, "ghost", "s3cret")
	for _, err := range []error{wrongPassword, unknownUser} {
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrInvalidCredentials))
		assert.Equal(t, types.InvalidCredentialsError().Error(), err.Error())
	}
}

func TestCurrentRole(t *testing.T) {
	ctx := context.Background()
	db := testhelpers.NewTestDB(t, testhelpers.TestConfig(t))

	_, err := services.CreateUser(ctx, db, services.NewUser{Username: "bob", Password: "pw", Role: models.RoleEmployee})
	require.NoError(t, err)

	role, err := services.CurrentRole(ctx, db, "bob")
	require.NoError(t, err)
	assert.Equal(t, models.RoleEmployee, role)

	require.NoError(t, services.DeleteUser(ctx, db, "bob"))
	_, err = services.CurrentRole(ctx, db, "bob")
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	db := testhelpers.NewTestDB(t, testhelpers.TestConfig(t))

	created, err := services.EnsureAdmin(ctx, db, "admin", "changeme")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = services.EnsureAdmin(ctx, db, "admin", "different")
	require.NoError(t, err)
	assert.False(t, created)

	created, err = services.EnsureAdmin(ctx, db, "admin", "")
	require.NoError(t, err)
	assert.False(t, created)

	users, err := services.ListUsers(ctx, db)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
}
