// auth_service.go
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

package services

import (
	"context"
	"errors"
	"strings"

	"github.com/localnerve/paintstore/internal/database"
	"github.com/localnerve/paintstore/internal/models"
	"github.com/localnerve/paintstore/internal/types"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// LoginResult is returned for good credentials
type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// UserView is the directory listing of a user, without the password hash
type UserView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// NewUser creates a directory entry
type NewUser struct {
	Username string
	Password string
	Role     string
}

// Login checks username and password and issues an access token.
// Unknown users and wrong passwords fail the same way.
func Login(ctx context.Context, db *gorm.DB, tokens *TokenIssuer, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, types.InvalidCredentialsError()
	}

	var user models.User
	if err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.InvalidCredentialsError()
		}
		return nil, types.TransactionError(pkgerrors.Wrap(err, "load user"))
	}

	ok, err := VerifyPassword(password, user.Password)
	if err != nil {
		logrus.WithError(err).WithField("username", user.Username).Warn("Stored password hash is unreadable")
		return nil, types.InvalidCredentialsError()
	}
	if !ok {
		return nil, types.InvalidCredentialsError()
	}

	token, err := tokens.Issue(&user)
	if err != nil {
		return nil, types.TransactionError(err)
	}

	return &LoginResult{Token: token, Role: user.Role}, nil
}

// CreateUser adds a user with a hashed password
func CreateUser(ctx context.Context, db *gorm.DB, input NewUser) (*UserView, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" || input.Role == "" {
		return nil, types.ValidationError("Username, password and role are required")
	}
	if !models.ValidRole(input.Role) {
		return nil, types.ValidationError("Role must be employee or admin")
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, types.TransactionError(err)
	}

	user := models.User{Username: username, Password: hash, Role: input.Role}
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return types.ConflictError("Username already exists")
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		if database.IsDuplicateKey(err) {
			return nil, types.ConflictError("Username already exists")
		}
		return nil, classify(err)
	}

	return &UserView{ID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// ListUsers returns every user
func ListUsers(ctx context.Context, db *gorm.DB) ([]UserView, error) {
	users := []UserView{}
	if err := db.WithContext(ctx).Model(&models.User{}).
		Select("id", "username", "role").
		Order("id").
		Scan(&users).Error; err != nil {
		return nil, types.TransactionError(pkgerrors.Wrap(err, "list users"))
	}
	return users, nil
}

// DeleteUser removes username, reporting NotFound when there is no such user
func DeleteUser(ctx context.Context, db *gorm.DB, username string) error {
	result := db.WithContext(ctx).Where("username = ?", username).Delete(&models.User{})
	if result.Error != nil {
		return types.TransactionError(pkgerrors.Wrap(result.Error, "delete user"))
	}
	if result.RowsAffected == 0 {
		return types.NotFoundError("User not found")
	}
	return nil
}

// CurrentRole looks username up in the user directory and returns its role.
// A user deleted since sign-in gets NotFoundError.
func CurrentRole(ctx context.Context, db *gorm.DB, username string) (string, error) {
	var user models.User
	if err := db.WithContext(ctx).Select("role").Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", types.NotFoundError("User not found")
		}
		return "", types.TransactionError(pkgerrors.Wrap(err, "load user role"))
	}
	return user.Role, nil
}

// EnsureAdmin creates the bootstrap admin account when no user by that name exists.
// It reports whether a user was created.
func EnsureAdmin(ctx context.Context, db *gorm.DB, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, pkgerrors.Wrap(err, "check admin user")
	}
	if count > 0 {
		return false, nil
	}

	if _, err := CreateUser(ctx, db, NewUser{Username: username, Password: password, Role: models.RoleAdmin}); err != nil {
		if errors.Is(err, types.ErrConflict) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
