// locking.go
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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"
)

// ForUpdate locks the rows the query selects until the transaction ends.
// SQL Server has no FOR UPDATE, so it gets an UPDLOCK table hint instead.
func ForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlserver" {
		return tx.Clauses(tableHint("UPDLOCK, ROWLOCK"))
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// tableHint renders WITH (...) after the FROM table, the way hints.IndexHint
// places index hints. IndexHint quotes its keys, which SQL Server rejects here.
type tableHint string

func (h tableHint) ModifyStatement(stmt *gorm.Statement) {
	from := stmt.Clauses["FROM"]
	if from.AfterExpression == nil {
		from.AfterExpression = h
	} else {
		from.AfterExpression = hints.Exprs{from.AfterExpression, h}
	}
	stmt.Clauses["FROM"] = from
}

func (h tableHint) Build(builder clause.Builder) {
	builder.WriteString("WITH (")
	builder.WriteString(string(h))
	builder.WriteByte(')')
}
