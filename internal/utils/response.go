// response.go
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

package utils

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/paintstore/internal/types"
	"github.com/sirupsen/logrus"
)

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Type      string `json:"type,omitempty"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
}

// SuccessResponseStruct defines the schema for mutation success responses
type SuccessResponseStruct struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      uint   `json:"id,omitempty"`
}

// ErrorResponse sends a standard error response
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(ErrorResponseStruct{
		Status:    status,
		Success:   false,
		Message:   message,
		Type:      errorType,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       c.OriginalURL(),
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, message, fiber.StatusNotFound, types.TypeNotFound)
}

// MutationSuccessResponse sends a success response for mutations
func MutationSuccessResponse(c *fiber.Ctx, status int, message string, id uint) error {
	return c.Status(status).JSON(SuccessResponseStruct{
		Success: true,
		Message: message,
		ID:      id,
	})
}

// ErrorHandler maps handler errors onto the error envelope.
// Anything outside the taxonomy is logged and reported as a generic 500.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var custom *types.CustomError
		if errors.As(err, &custom) {
			if custom.Code >= fiber.StatusInternalServerError {
				log.WithError(errors.Unwrap(custom)).WithFields(logrus.Fields{
					"method": c.Method(),
					"url":    c.OriginalURL(),
				}).Error("Request failed")
			}
			return ErrorResponse(c, custom.Message, custom.Code, custom.Type)
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ErrorResponse(c, fe.Message, fe.Code, typeForStatus(fe.Code))
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"url":    c.OriginalURL(),
		}).Error("Unhandled error")
		return ErrorResponse(c, "Internal Server Error", fiber.StatusInternalServerError, types.TypeTransaction)
	}
}

func typeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return types.TypeValidation
	case fiber.StatusUnauthorized:
		return types.TypeInvalidCredentials
	case fiber.StatusForbidden:
		return types.TypeForbidden
	case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
		return types.TypeNotFound
	case fiber.StatusConflict:
		return types.TypeConflict
	}
	if status >= fiber.StatusInternalServerError {
		return types.TypeTransaction
	}
	return ""
}
