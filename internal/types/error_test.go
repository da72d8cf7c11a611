// error_test.go
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

package types

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorIs(t *testing.T) {
	err := fmt.Errorf("selling: %w", InsufficientStockError("Not enough stock!"))

	assert.True(t, errors.Is(err, ErrInsufficientStock))
	assert.False(t, errors.Is(err, ErrConflict))

	var custom *CustomError
	if assert.True(t, errors.As(err, &custom)) {
		assert.Equal(t, http.StatusConflict, custom.Code)
		assert.Equal(t, "Not enough stock!", custom.Message)
	}
}

func TestTransactionErrorHidesCause(t *testing.T) {
	cause := errors.New("database is locked")
	err := TransactionError(cause)

	assert.NotContains(t, err.Message, "locked")
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrTransaction)
	assert.Equal(t, http.StatusInternalServerError, err.Code)
}

func TestInvalidCredentialsIsUndifferentiated(t *testing.T) {
	err := InvalidCredentialsError()
	assert.Equal(t, "Invalid credentials", err.Message)
	assert.Equal(t, TypeInvalidCredentials, err.Type)
	assert.Equal(t, http.StatusUnauthorized, err.Code)
}
