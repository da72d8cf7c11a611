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

package models

import (
	"time"
)

// PaintClass is a paint classification category (e.g. "Metallic")
type PaintClass struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"uniqueIndex;size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Product is a stocked item. Stock is never negative.
type Product struct {
	ID           uint       `gorm:"primaryKey;autoIncrement"`
	Name         string     `gorm:"uniqueIndex;size:255;not null"`
	Stock        int64      `gorm:"not null;default:0;check:chk_products_stock,stock >= 0"`
	PaintClassID uint       `gorm:"not null;index"`
	PaintClass   PaintClass `gorm:"foreignKey:PaintClassID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the table name for PaintClass
func (PaintClass) TableName() string {
	return "paint_classes"
}

// TableName overrides the table name for Product
func (Product) TableName() string {
	return "products"
}
