// ledger.go
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
	"fmt"
	"strings"
	"time"

	"github.com/localnerve/paintstore/internal/database"
	"github.com/localnerve/paintstore/internal/models"
	"github.com/localnerve/paintstore/internal/types"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"
)

// SellInput is a request to sell quantity units of the named product
type SellInput struct {
	Name      string
	Quantity  int64
	BuyerName string
}

// SellResult reports a committed sale
type SellResult struct {
	Message string
	Sale    models.Sale
}

// SalesFilter restricts a sales history listing. Nil bounds are open.
type SalesFilter struct {
	Start *time.Time
	End   *time.Time
	Buyer string
}

// Sell decrements stock and appends the audit record in one transaction.
// Either both writes commit or neither does; stock is never driven below zero.
func Sell(ctx context.Context, db *gorm.DB, input SellInput) (*SellResult, error) {
	name := strings.TrimSpace(input.Name)
	buyer := strings.TrimSpace(input.BuyerName)

	if buyer == "" {
		return nil, types.ValidationError("Buyer name is required!")
	}
	if name == "" {
		return nil, types.ValidationError("Item name is required")
	}
	if input.Quantity <= 0 {
		return nil, types.ValidationError("Quantity must be a positive whole number")
	}

	var sale models.Sale
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := database.ForUpdate(tx).
			Where("name = ?", name).
			First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFoundError("Item not found")
			}
			return pkgerrors.Wrap(err, "load product")
		}

		if input.Quantity > product.Stock {
			return types.InsufficientStockError("Not enough stock!")
		}

		previousStock := product.Stock
		newStock := previousStock - input.Quantity

		// The stock guard keeps the write correct even if another writer
		// got in between the read and the update.
		result := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", product.ID, input.Quantity).
			Update("stock", gorm.Expr("stock - ?", input.Quantity))
		if result.Error != nil {
			return pkgerrors.Wrap(result.Error, "decrement stock")
		}
		if result.RowsAffected == 0 {
			return types.InsufficientStockError("Not enough stock!")
		}

		sale = models.Sale{
			ItemName:      product.Name,
			Quantity:      input.Quantity,
			BuyerName:     buyer,
			Timestamp:     time.Now().UTC(),
			PreviousStock: previousStock,
			NewStock:      newStock,
		}
		if err := tx.Create(&sale).Error; err != nil {
			return pkgerrors.Wrap(err, "record sale")
		}

		return nil
	})
	if err != nil {
		recordRejectedSell(err)
		return nil, classify(err)
	}

	recordSale(sale)

	return &SellResult{
		Message: fmt.Sprintf("Sold %d units of %s to %s. New stock: %d",
			sale.Quantity, sale.ItemName, sale.BuyerName, sale.NewStock),
		Sale: sale,
	}, nil
}

// ListSalesHistory returns matching sales, newest first
func ListSalesHistory(ctx context.Context, db *gorm.DB, filter SalesFilter) ([]models.Sale, error) {
	if filter.Start != nil && filter.End != nil && filter.End.Before(*filter.Start) {
		return nil, types.ValidationError("end_date must not be before start_date")
	}

	query := db.WithContext(ctx).
		Clauses(hints.CommentBefore("select", "sales_history")).
		Model(&models.Sale{})

	// timestamp is a keyword in some dialects, so let GORM quote it
	tsColumn := clause.Column{Name: "timestamp"}
	if filter.Start != nil {
		query = query.Where(clause.Gte{Column: tsColumn, Value: filter.Start.UTC()})
	}
	if filter.End != nil {
		query = query.Where(clause.Lte{Column: tsColumn, Value: filter.End.UTC()})
	}
	if buyer := strings.TrimSpace(filter.Buyer); buyer != "" {
		query = query.Where(database.ContainsFold(db, "buyer_name", buyer))
	}

	sales := []models.Sale{}
	if err := query.Order(clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: tsColumn, Desc: true},
		{Column: clause.Column{Name: "id"}, Desc: true},
	}}).Find(&sales).Error; err != nil {
		return nil, types.TransactionError(pkgerrors.Wrap(err, "list sales"))
	}
	return sales, nil
}

// ClearSalesHistory deletes every sale record and returns how many were removed.
// It is an operator maintenance action and is not routed over HTTP.
func ClearSalesHistory(ctx context.Context, db *gorm.DB) (int64, error) {
	var deleted int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Sale{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, types.TransactionError(pkgerrors.Wrap(err, "clear sales history"))
	}
	return deleted, nil
}

// Accepted sales-history date layouts; naive layouts are read in the display zone
var salesDateLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

const dateOnlyLayout = "2006-01-02"

// ParseSalesDate parses a filter bound. Values without a zone are localized to loc.
// A date-only end bound covers the whole day.
func ParseSalesDate(value string, loc *time.Location, endOfDay bool) (time.Time, error) {
	value = strings.TrimSpace(value)
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}

	for _, layout := range salesDateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	if t, err := time.ParseInLocation(dateOnlyLayout, value, loc); err == nil {
		if endOfDay {
			return t.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
		}
		return t, nil
	}

	return time.Time{}, types.ValidationError(fmt.Sprintf("Invalid date %q, expected ISO 8601", value))
}

// classify passes taxonomy errors through and hides everything else behind a TransactionError
func classify(err error) error {
	var custom *types.CustomError
	if errors.As(err, &custom) {
		return custom
	}
	return types.TransactionError(err)
}
