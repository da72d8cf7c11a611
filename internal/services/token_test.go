// token_test.go
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
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/localnerve/paintstore/internal/models"
	"github.com/localnerve/paintstore/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := services.NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue(&models.User{Username: "bob", Role: models.RoleEmployee})
	require.NoError(t, err)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "bob", claims.Username())
	assert.Equal(t, models.RoleEmployee, claims.Role)
}

func TestTokenRejected(t *testing.T) {
	issuer := services.NewTokenIssuer("secret", time.Hour)
	token, err := issuer.Issue(&models.User{Username: "bob", Role: models.RoleAdmin})
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := services.NewTokenIssuer("other", time.Hour).Verify(token)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		short := services.NewTokenIssuer("secret", -time.Minute)
		expired, err := short.Issue(&models.User{Username: "bob", Role: models.RoleAdmin})
		require.NoError(t, err)
		_, err = short.Verify(expired)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("unsigned", func(t *testing.T) {
		none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "bob", "role": "admin"})
		raw, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = issuer.Verify(raw)
		assert.Error(t, err)
	})

	t.Run("unknown role", func(t *testing.T) {
		odd, err := issuer.Issue(&models.User{Username: "bob", Role: "manager"})
		require.NoError(t, err)
		_, err = issuer.Verify(odd)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.Verify("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
	})
}
