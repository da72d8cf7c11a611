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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/paintstore/internal/services"
	"github.com/localnerve/paintstore/internal/utils"
	"gorm.io/gorm"
)

// AuthHandler serves login and the user directory
type AuthHandler struct {
	DB     *gorm.DB
	Tokens *services.TokenIssuer
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"changeme"`
}

// CreateUserRequest is the body of POST /api/auth/users
type CreateUserRequest struct {
	Username string `json:"username" validate:"required" example:"bob"`
	Password string `json:"password" validate:"required" example:"pw123"`
	Role     string `json:"role" validate:"required,oneof=employee admin" example:"employee"`
}

// Login handles POST /api/auth/login
// @Summary Sign in
// @Description Exchange credentials for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} services.LoginResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	req, err := utils.ParseBody[LoginRequest](c)
	if err != nil {
		return err
	}

	result, err := services.Login(c.UserContext(), h.DB, h.Tokens, req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// CreateUser handles POST /api/auth/users
// @Summary Add a user
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateUserRequest true "User"
// @Success 201 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /auth/users [post]
func (h *AuthHandler) CreateUser(c *fiber.Ctx) error {
	req, err := utils.ParseBody[CreateUserRequest](c)
	if err != nil {
		return err
	}

	user, err := services.CreateUser(c.UserContext(), h.DB, services.NewUser{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return utils.MutationSuccessResponse(c, fiber.StatusCreated, "User created successfully", user.ID)
}

// ListUsers handles GET /api/auth/users
// @Summary List users
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {array} services.UserView
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /auth/users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	users, err := services.ListUsers(c.UserContext(), h.DB)
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// DeleteUser handles DELETE /api/auth/users/:username
// @Summary Delete a user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /auth/users/{username} [delete]
func (h *AuthHandler) DeleteUser(c *fiber.Ctx) error {
	username, err := pathName(c, "username")
	if err != nil {
		return err
	}

	if err := services.DeleteUser(c.UserContext(), h.DB, username); err != nil {
		return err
	}
	return utils.MutationSuccessResponse(c, fiber.StatusOK, "User deleted successfully", 0)
}
