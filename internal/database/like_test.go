// like_test.go
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
	"testing"

	"github.com/localnerve/paintstore/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		dialect string
		needle  string
		want    string
	}{
		{"sqlite", "Gloss", "%gloss%"},
		{"sqlite", "100%", "%100!%%"},
		{"postgres", "a_b", "%a!_b%"},
		{"mysql", "wow!", "%wow!!%"},
		{"sqlite", "[x]", "%[x]%"},
		{"sqlserver", "[x]", "%![x]%"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect+" "+tt.needle, func(t *testing.T) {
			assert.Equal(t, tt.want, containsPattern(tt.dialect, tt.needle))
		})
	}
}

func TestContainsFoldMatchesLiterally(t *testing.T) {
	db := openTestStore(t)

	class := models.PaintClass{Name: "Solid Colors"}
	require.NoError(t, db.Create(&class).Error)
	for _, name := range []string{"100% Acrylic", "1000 Acrylic", "Satin_Blue", "SatinXBlue", "Wow! Red"} {
		require.NoError(t, db.Omit("PaintClass").Create(&models.Product{Name: name, PaintClassID: class.ID}).Error)
	}

	search := func(needle string) []string {
		var names []string
		require.NoError(t, db.Model(&models.Product{}).
			Where(ContainsFold(db, "name", needle)).
			Order("name").
			Pluck("name", &names).Error)
		return names
	}

	assert.Equal(t, []string{"100% Acrylic"}, search("0%"))
	assert.Equal(t, []string{"Satin_Blue"}, search("satin_"))
	assert.Equal(t, []string{"Wow! Red"}, search("w!"))
	assert.Equal(t, []string{"100% Acrylic", "1000 Acrylic"}, search("acryl"))
}
