// seed.go
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

package database

import (
	"encoding/json"
	"fmt"

	"github.com/localnerve/paintstore/data"
	"github.com/localnerve/paintstore/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedPaintClasses inserts the embedded default paint classes when none exist yet.
// It returns the number of classes created.
func SeedPaintClasses(db *gorm.DB, log *logrus.Logger) (int, error) {
	var names []string
	if err := json.Unmarshal(data.DefaultPaintClasses, &names); err != nil {
		return 0, fmt.Errorf("failed to decode default paint classes: %w", err)
	}

	created := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.PaintClass{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		classes := make([]models.PaintClass, 0, len(names))
		for _, name := range names {
			classes = append(classes, models.PaintClass{Name: name})
		}
		if err := tx.Create(&classes).Error; err != nil {
			return err
		}
		created = len(classes)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if created > 0 {
		log.WithField("count", created).Info("Seeded default paint classes")
	}
	return created, nil
}
