// like.go
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
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likeEscape works as a literal in every supported dialect; a backslash does not
const likeEscape = '!'

// ContainsFold matches rows whose column contains needle, ignoring case.
// Wildcards in needle match literally.
func ContainsFold(db *gorm.DB, column, needle string) clause.Expression {
	return clause.Expr{
		SQL:  "LOWER(?) LIKE ? ESCAPE '" + string(likeEscape) + "'",
		Vars: []interface{}{clause.Column{Name: column}, containsPattern(db.Dialector.Name(), needle)},
	}
}

func containsPattern(dialect, needle string) string {
	special := "%_" + string(likeEscape)
	if dialect == "sqlserver" {
		special += "["
	}

	var b strings.Builder
	b.WriteByte('%')
	for _, r := range strings.ToLower(needle) {
		if strings.ContainsRune(special, r) {
			b.WriteRune(likeEscape)
		}
		b.WriteRune(r)
	}
	b.WriteByte('%')
	return b.String()
}
