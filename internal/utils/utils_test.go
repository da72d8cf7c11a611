// utils_test.go
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

package utils_test

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/paintstore/internal/types"
	"github.com/localnerve/paintstore/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count" validate:"gte=0"`
	Kind  string `json:"kind" validate:"omitempty,oneof=a b"`
}

func newApp() *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)

	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler(log)})
	app.Post("/widgets", func(c *fiber.Ctx) error {
		w, err := utils.ParseBody[widget](c)
		if err != nil {
			return err
		}
		return utils.MutationSuccessResponse(c, fiber.StatusCreated, "created "+w.Name, 7)
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("driver exploded: secret detail")
	})
	app.Get("/gone", func(c *fiber.Ctx) error {
		return types.NotFoundError("Widget not found")
	})
	app.Get("/fiber", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusMethodNotAllowed, "nope")
	})
	return app
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestParseBody(t *testing.T) {
	app := newApp()

	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{"valid", `{"name":"gizmo","count":2}`, 201, "created gizmo"},
		{"empty body", ``, 400, "Request body is required"},
		{"malformed", `{"name":`, 400, "Invalid request body: malformed JSON"},
		{"wrong type", `{"name":"gizmo","count":"two"}`, 400, "Invalid request body: count has the wrong type"},
		{"missing required", `{"count":1}`, 400, "name is required"},
		{"below minimum", `{"name":"gizmo","count":-1}`, 400, "count must be greater than or equal to 0"},
		{"not in set", `{"name":"gizmo","kind":"c"}`, 400, "kind must be one of: a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/widgets", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			body := decode(t, resp)
			assert.Equal(t, tt.message, body["message"])
			assert.Equal(t, tt.status < 400, body["success"])
		})
	}
}

func TestErrorHandler(t *testing.T) {
	app := newApp()

	tests := []struct {
		path    string
		status  int
		typ     string
		message string
	}{
		{"/boom", 500, types.TypeTransaction, "Internal Server Error"},
		{"/gone", 404, types.TypeNotFound, "Widget not found"},
		{"/fiber", 405, types.TypeNotFound, "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			body := decode(t, resp)
			assert.Equal(t, tt.typ, body["type"])
			assert.Equal(t, tt.message, body["message"])
			assert.Equal(t, tt.path, body["url"])
			assert.EqualValues(t, tt.status, body["status"])
			_, err = time.Parse(time.RFC3339, body["timestamp"].(string))
			assert.NoError(t, err)
		})
	}
}

func TestPingService(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()

	assert.NoError(t, utils.PingService("http://"+addr, time.Second))

	require.NoError(t, ln.Close())
	assert.Error(t, utils.PingService("http://"+addr, 200*time.Millisecond))
	assert.Error(t, utils.PingService("http://", time.Second))
}
