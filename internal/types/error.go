// error.go
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
)

// Error types reported to API callers
const (
	TypeValidation         = "validation"
	TypeNotFound           = "not_found"
	TypeConflict           = "conflict"
	TypeInsufficientStock  = "insufficient_stock"
	TypeInvalidCredentials = "invalid_credentials"
	TypeForbidden          = "forbidden"
	TypeTransaction        = "transaction"
)

// Sentinels for errors.Is matching by error type
var (
	ErrValidation         = &CustomError{Type: TypeValidation}
	ErrNotFound           = &CustomError{Type: TypeNotFound}
	ErrConflict           = &CustomError{Type: TypeConflict}
	ErrInsufficientStock  = &CustomError{Type: TypeInsufficientStock}
	ErrInvalidCredentials = &CustomError{Type: TypeInvalidCredentials}
	ErrForbidden          = &CustomError{Type: TypeForbidden}
	ErrTransaction        = &CustomError{Type: TypeTransaction}
)

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`

	cause error
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// Unwrap exposes the underlying cause, if any
func (e *CustomError) Unwrap() error {
	return e.cause
}

// Is matches any CustomError of the same Type
func (e *CustomError) Is(target error) bool {
	var t *CustomError
	if !errors.As(target, &t) {
		return false
	}
	return t.Type == e.Type
}

func ValidationError(message string) *CustomError {
	return &CustomError{Code: http.StatusBadRequest, Message: message, Type: TypeValidation}
}

func NotFoundError(message string) *CustomError {
	return &CustomError{Code: http.StatusNotFound, Message: message, Type: TypeNotFound}
}

func ConflictError(message string) *CustomError {
	return &CustomError{Code: http.StatusConflict, Message: message, Type: TypeConflict}
}

func InsufficientStockError(message string) *CustomError {
	return &CustomError{Code: http.StatusConflict, Message: message, Type: TypeInsufficientStock}
}

// InvalidCredentialsError never says which of username or password was wrong
func InvalidCredentialsError() *CustomError {
	return &CustomError{Code: http.StatusUnauthorized, Message: "Invalid credentials", Type: TypeInvalidCredentials}
}

func UnauthorizedError(message string) *CustomError {
	return &CustomError{Code: http.StatusUnauthorized, Message: message, Type: TypeInvalidCredentials}
}

func ForbiddenError(message string) *CustomError {
	return &CustomError{Code: http.StatusForbidden, Message: message, Type: TypeForbidden}
}

// TransactionError hides the store failure behind a generic message; the cause
// stays reachable through errors.Unwrap for logging.
func TransactionError(cause error) *CustomError {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Message: "The operation could not be completed",
		Type:    TypeTransaction,
		cause:   cause,
	}
}
