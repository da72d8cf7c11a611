// inventory.go
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
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/paintstore/internal/middleware"
	"github.com/localnerve/paintstore/internal/models"
	"github.com/localnerve/paintstore/internal/services"
	"github.com/localnerve/paintstore/internal/types"
	"github.com/localnerve/paintstore/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// InventoryHandler serves the sell operation and the sales ledger
type InventoryHandler struct {
	DB       *gorm.DB
	Location *time.Location
	Log      *logrus.Logger
}

// SellRequest is the body of POST /api/sell
type SellRequest struct {
	Name      string        `json:"name" example:"Red Gloss"`
	Quantity  types.FlexInt `json:"quantity" swaggertype:"integer" example:"3"`
	BuyerName string        `json:"buyerName" example:"Jane"`
}

// SaleResponse is one sales ledger row, timestamp in the display time zone
type SaleResponse struct {
	ID            uint   `json:"id"`
	ItemName      string `json:"item_name"`
	Quantity      int64  `json:"quantity"`
	BuyerName     string `json:"buyer_name"`
	Timestamp     string `json:"timestamp" example:"2024-03-01T10:30:00+03:00"`
	PreviousStock int64  `json:"previous_stock"`
	NewStock      int64  `json:"new_stock"`
}

// Sell handles POST /api/sell
// @Summary Sell stock
// @Description Decrement a product's stock and record the sale in one transaction
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SellRequest true "Sale"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sell [post]
func (h *InventoryHandler) Sell(c *fiber.Ctx) error {
	req, err := utils.ParseBody[SellRequest](c)
	if err != nil {
		return err
	}

	result, err := services.Sell(c.UserContext(), h.DB, services.SellInput{
		Name:      req.Name,
		Quantity:  req.Quantity.Int64(),
		BuyerName: req.BuyerName,
	})
	if err != nil {
		return err
	}

	entry := h.logger().WithFields(logrus.Fields{
		"item":     result.Sale.ItemName,
		"quantity": result.Sale.Quantity,
		"buyer":    result.Sale.BuyerName,
	})
	if claims, ok := middleware.CurrentClaims(c); ok {
		entry = entry.WithField("username", claims.Username())
	}
	entry.Info("Sale recorded")

	return utils.MutationSuccessResponse(c, fiber.StatusOK, result.Message, 0)
}

// SalesHistory handles GET /api/sales-history
// @Summary List sales
// @Description List recorded sales, newest first. Dates without a zone are read in the display time zone.
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Earliest sale time (ISO 8601)"
// @Param end_date query string false "Latest sale time (ISO 8601); a bare date covers the whole day"
// @Param buyer_name query string false "Case-insensitive buyer name substring"
// @Success 200 {array} SaleResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sales-history [get]
func (h *InventoryHandler) SalesHistory(c *fiber.Ctx) error {
	filter := services.SalesFilter{Buyer: c.Query("buyer_name")}

	if v := c.Query("start_date"); v != "" {
		start, err := services.ParseSalesDate(v, h.Location, false)
		if err != nil {
			return err
		}
		filter.Start = &start
	}
	if v := c.Query("end_date"); v != "" {
		end, err := services.ParseSalesDate(v, h.Location, true)
		if err != nil {
			return err
		}
		filter.End = &end
	}

	sales, err := services.ListSalesHistory(c.UserContext(), h.DB, filter)
	if err != nil {
		return err
	}

	out := make([]SaleResponse, 0, len(sales))
	for _, sale := range sales {
		out = append(out, h.toSaleResponse(sale))
	}
	return c.JSON(out)
}

func (h *InventoryHandler) logger() *logrus.Logger {
	if h.Log == nil {
		return logrus.StandardLogger()
	}
	return h.Log
}

func (h *InventoryHandler) toSaleResponse(sale models.Sale) SaleResponse {
	loc := h.Location
	if loc == nil {
		loc = time.UTC
	}
	return SaleResponse{
		ID:            sale.ID,
		ItemName:      sale.ItemName,
		Quantity:      sale.Quantity,
		BuyerName:     sale.BuyerName,
		Timestamp:     sale.Timestamp.In(loc).Format(time.RFC3339),
		PreviousStock: sale.PreviousStock,
		NewStock:      sale.NewStock,
	}
}
