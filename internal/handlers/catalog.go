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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/paintstore/internal/services"
	"github.com/localnerve/paintstore/internal/types"
	"github.com/localnerve/paintstore/internal/utils"
	"gorm.io/gorm"
)

// CatalogHandler serves products and paint classes
type CatalogHandler struct {
	DB *gorm.DB
}

// PaintClassRequest is the body for creating or renaming a paint class
type PaintClassRequest struct {
	Name string `json:"name" example:"Metallic"`
}

// CreateProductRequest is the body of POST /api/admin/products
type CreateProductRequest struct {
	Name  string         `json:"name" validate:"required" example:"Red Gloss"`
	Stock *types.FlexInt `json:"stock" validate:"required" swaggertype:"integer" example:"10"`
	Class string         `json:"class" validate:"required" example:"Solid Colors"`
}

// UpdateProductRequest is the body of PUT /api/admin/products/{id}; absent fields are left alone
type UpdateProductRequest struct {
	Name  *string        `json:"name,omitempty" example:"Crimson Gloss"`
	Stock *types.FlexInt `json:"stock,omitempty" swaggertype:"integer" example:"25"`
	Class *string        `json:"class,omitempty" example:"Pearl"`
}

// ListPaintClasses handles GET /api/paint-classes
// @Summary List paint classes
// @Tags Catalog
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /paint-classes [get]
func (h *CatalogHandler) ListPaintClasses(c *fiber.Ctx) error {
	names, err := services.ListPaintClasses(c.UserContext(), h.DB)
	if err != nil {
		return err
	}
	return c.JSON(names)
}

// CreatePaintClass handles POST /api/admin/paint-classes
// @Summary Add a paint class
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body PaintClassRequest true "Class"
// @Success 201 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /admin/paint-classes [post]
func (h *CatalogHandler) CreatePaintClass(c *fiber.Ctx) error {
	req, err := utils.ParseBody[PaintClassRequest](c)
	if err != nil {
		return err
	}

	class, err := services.CreatePaintClass(c.UserContext(), h.DB, req.Name)
	if err != nil {
		return err
	}
	return utils.MutationSuccessResponse(c, fiber.StatusCreated, "Paint class added successfully", class.ID)
}

// RenamePaintClass handles PUT /api/admin/paint-classes/:name
// @Summary Rename a paint class
// @Description Every product in the class reports the new name afterwards
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Current class name"
// @Param body body PaintClassRequest true "New name"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /admin/paint-classes/{name} [put]
func (h *CatalogHandler) RenamePaintClass(c *fiber.Ctx) error {
	current, err := pathName(c, "name")
	if err != nil {
		return err
	}
	req, err := utils.ParseBody[PaintClassRequest](c)
	if err != nil {
		return err
	}

	if err := services.RenamePaintClass(c.UserContext(), h.DB, current, req.Name); err != nil {
		return err
	}
	return utils.MutationSuccessResponse(c, fiber.StatusOK, "Paint class updated successfully", 0)
}

// DeletePaintClass handles DELETE /api/admin/paint-classes/:name
// @Summary Delete an unused paint class
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param name path string true "Class name"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /admin/paint-classes/{name} [delete]
func (h *CatalogHandler) DeletePaintClass(c *fiber.Ctx) error {
	name, err := pathName(c, "name")
	if err != nil {
		return err
	}

	if err := services.DeletePaintClass(c.UserContext(), h.DB, name); err != nil {
		return err
	}
	return utils.MutationSuccessResponse(c, fiber.StatusOK, "Paint class deleted successfully", 0)
}

// ListItems handles GET /api/items
// @Summary List products
// @Tags Catalog
// @Produce json
// @Success 200 {array} services.Item
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /items [get]
func (h *CatalogHandler) ListItems(c *fiber.Ctx) error {
	items, err := services.ListProducts(c.UserContext(), h.DB)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Search handles GET /api/search?q=
// @Summary Search product names
// @Tags Catalog
// @Produce json
// @Param q query string false "Case-insensitive substring"
// @Success 200 {array} string
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /search [get]
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	names, err := services.SearchProducts(c.UserContext(), h.DB, c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(names)
}

// CreateProduct handles POST /api/admin/products
// @Summary Add a product
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateProductRequest true "Product"
// @Success 201 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /admin/products [post]
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	req, err := utils.ParseBody[CreateProductRequest](c)
	if err != nil {
		return err
	}

	item, err := services.CreateProduct(c.UserContext(), h.DB, services.ProductInput{
		Name:  req.Name,
		Stock: req.Stock.Int64(),
		Class: req.Class,
	})
	if err != nil {
		return err
	}
	return utils.MutationSuccessResponse(c, fiber.StatusCreated, "Product added successfully", item.ID)
}

// UpdateProduct handles PUT /api/admin/products/:id
// @Summary Update a product
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param body body UpdateProductRequest true "Fields to change"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /admin/products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	req, err := utils.ParseBody[UpdateProductRequest](c)
	if err != nil {
		return err
	}

	_, err = services.UpdateProduct(c.UserContext(), h.DB, id, services.ProductUpdate{
		Name:  req.Name,
		Stock: flexPtr(req.Stock),
		Class: req.Class,
	})
	if err != nil {
		return err
	}
	return utils.MutationSuccessResponse(c, fiber.StatusOK, "Product updated successfully", 0)
}

// DeleteProduct handles DELETE /api/admin/products/:id
// @Summary Delete a product
// @Description Past sales of the product stay in the ledger
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := services.DeleteProduct(c.UserContext(), h.DB, id); err != nil {
		return err
	}
	return utils.MutationSuccessResponse(c, fiber.StatusOK, "Product deleted successfully", 0)
}
