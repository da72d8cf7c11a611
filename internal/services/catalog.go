// catalog.go
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
	"gorm.io/gorm"
)

// Item is the API view of a product with its class name resolved
type Item struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Stock int64  `json:"stock"`
	Class string `json:"class"`
}

// ProductInput creates a product
type ProductInput struct {
	Name  string
	Stock int64
	Class string
}

// ProductUpdate changes any subset of a product's fields
type ProductUpdate struct {
	Name  *string
	Stock *int64
	Class *string
}

// ListPaintClasses returns every class name
func ListPaintClasses(ctx context.Context, db *gorm.DB) ([]string, error) {
	names := []string{}
	if err := db.WithContext(ctx).Model(&models.PaintClass{}).
		Order("id").Pluck("name", &names).Error; err != nil {
		return nil, types.TransactionError(pkgerrors.Wrap(err, "list paint classes"))
	}
	return names, nil
}

// CreatePaintClass adds a class with a unique name
func CreatePaintClass(ctx context.Context, db *gorm.DB, name string) (*models.PaintClass, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, types.ValidationError("Class name is required")
	}

	class := models.PaintClass{Name: name}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.PaintClass{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return types.ConflictError("Paint class name already exists")
		}
		return tx.Create(&class).Error
	})
	if err != nil {
		if database.IsDuplicateKey(err) {
			return nil, types.ConflictError("Paint class name already exists")
		}
		return nil, classify(err)
	}
	return &class, nil
}

// RenamePaintClass renames a class. Products reference classes by id, so every
// product of the class reports the new name as soon as this commits.
func RenamePaintClass(ctx context.Context, db *gorm.DB, currentName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return types.ValidationError("New class name is required")
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var class models.PaintClass
		if err := database.ForUpdate(tx).
			Where("name = ?", currentName).
			First(&class).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFoundError("Paint class not found")
			}
			return err
		}

		if class.Name == newName {
			return nil
		}

		var count int64
		if err := tx.Model(&models.PaintClass{}).
			Where("name = ? AND id <> ?", newName, class.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return types.ConflictError("Paint class name already exists")
		}

		return tx.Model(&class).Update("name", newName).Error
	})
	if err != nil {
		if database.IsDuplicateKey(err) {
			return types.ConflictError("Paint class name already exists")
		}
		return classify(err)
	}
	return nil
}

// DeletePaintClass removes a class that no product uses
func DeletePaintClass(ctx context.Context, db *gorm.DB, name string) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var class models.PaintClass
		if err := tx.Where("name = ?", name).First(&class).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFoundError("Paint class not found")
			}
			return err
		}

		var inUse int64
		if err := tx.Model(&models.Product{}).Where("paint_class_id = ?", class.ID).Count(&inUse).Error; err != nil {
			return err
		}
		if inUse > 0 {
			return types.ConflictError("Cannot delete paint class that is being used by products")
		}

		return tx.Delete(&class).Error
	})
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return types.ConflictError("Cannot delete paint class that is being used by products")
		}
		return classify(err)
	}
	return nil
}

// ListProducts returns every product with its class name
func ListProducts(ctx context.Context, db *gorm.DB) ([]Item, error) {
	var products []models.Product
	if err := db.WithContext(ctx).Preload("PaintClass").Order("id").Find(&products).Error; err != nil {
		return nil, types.TransactionError(pkgerrors.Wrap(err, "list products"))
	}

	items := make([]Item, 0, len(products))
	for _, p := range products {
		items = append(items, toItem(p))
	}
	return items, nil
}

// SearchProducts returns names of products whose name contains query, ignoring case
func SearchProducts(ctx context.Context, db *gorm.DB, query string) ([]string, error) {
	names := []string{}
	q := db.WithContext(ctx).Model(&models.Product{})
	if query = strings.TrimSpace(query); query != "" {
		q = q.Where(database.ContainsFold(db, "name", query))
	}
	if err := q.Order("name").Pluck("name", &names).Error; err != nil {
		return nil, types.TransactionError(pkgerrors.Wrap(err, "search products"))
	}
	return names, nil
}

// CreateProduct adds a product under an existing class
func CreateProduct(ctx context.Context, db *gorm.DB, input ProductInput) (*Item, error) {
	name := strings.TrimSpace(input.Name)
	className := strings.TrimSpace(input.Class)
	if name == "" || className == "" {
		return nil, types.ValidationError("Missing required fields")
	}
	if input.Stock < 0 {
		return nil, types.ValidationError("Stock cannot be negative")
	}

	var product models.Product
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		class, err := findClass(tx, className)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Product{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return types.ConflictError("Product name already exists")
		}

		product = models.Product{Name: name, Stock: input.Stock, PaintClassID: class.ID, PaintClass: *class}
		return tx.Omit("PaintClass").Create(&product).Error
	})
	if err != nil {
		if database.IsDuplicateKey(err) {
			return nil, types.ConflictError("Product name already exists")
		}
		return nil, classify(err)
	}

	item := toItem(product)
	return &item, nil
}

// UpdateProduct applies the non-nil fields of update to product id
func UpdateProduct(ctx context.Context, db *gorm.DB, id uint, update ProductUpdate) (*Item, error) {
	changes := map[string]interface{}{}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, types.ValidationError("Product name cannot be empty")
		}
		changes["name"] = name
	}
	if update.Stock != nil {
		if *update.Stock < 0 {
			return nil, types.ValidationError("Stock cannot be negative")
		}
		changes["stock"] = *update.Stock
	}

	var product models.Product
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := database.ForUpdate(tx).First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFoundError("Product not found")
			}
			return err
		}

		if update.Class != nil {
			class, err := findClass(tx, strings.TrimSpace(*update.Class))
			if err != nil {
				return err
			}
			changes["paint_class_id"] = class.ID
		}

		if name, ok := changes["name"]; ok && name != product.Name {
			var count int64
			if err := tx.Model(&models.Product{}).
				Where("name = ? AND id <> ?", name, product.ID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return types.ConflictError("Product name already exists")
			}
		}

		if len(changes) > 0 {
			if err := tx.Model(&product).Updates(changes).Error; err != nil {
				return err
			}
		}

		return tx.Preload("PaintClass").First(&product, id).Error
	})
	if err != nil {
		if database.IsDuplicateKey(err) {
			return nil, types.ConflictError("Product name already exists")
		}
		return nil, classify(err)
	}

	item := toItem(product)
	return &item, nil
}

// DeleteProduct removes product id. Its past sales stay in the ledger.
func DeleteProduct(ctx context.Context, db *gorm.DB, id uint) error {
	result := db.WithContext(ctx).Delete(&models.Product{}, id)
	if result.Error != nil {
		return types.TransactionError(pkgerrors.Wrap(result.Error, "delete product"))
	}
	if result.RowsAffected == 0 {
		return types.NotFoundError("Product not found")
	}
	return nil
}

func findClass(tx *gorm.DB, name string) (*models.PaintClass, error) {
	if name == "" {
		return nil, types.ValidationError("Invalid paint class")
	}
	var class models.PaintClass
	if err := tx.Where("name = ?", name).First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ValidationError("Invalid paint class")
		}
		return nil, err
	}
	return &class, nil
}

func toItem(p models.Product) Item {
	return Item{
		ID:    p.ID,
		Name:  p.Name,
		Stock: p.Stock,
		Class: p.PaintClass.Name,
	}
}
