// sale.go
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

package models

import (
	"time"
)

// DefaultBuyerName is stored for sales recorded before buyer names were captured
const DefaultBuyerName = "Unknown"

// Sale is an append-only audit record of a single sell transaction.
// It references the product by its name at the time of sale, never by id.
type Sale struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	ItemName      string    `gorm:"size:255;not null;index"`
	Quantity      int64     `gorm:"not null"`
	BuyerName     string    `gorm:"size:255;default:Unknown"`
	Timestamp     time.Time `gorm:"not null;index"`
	PreviousStock int64     `gorm:"not null"`
	NewStock      int64     `gorm:"not null"`
}

// TableName overrides the table name for Sale
func (Sale) TableName() string {
	return "sales"
}
