package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/tunedeck/tunedeck/internal/query"
)

// filterScope applies spec to a query. columns maps the logical fields the
// repository supports to SQL column expressions.
func filterScope(spec query.FilterSpec, columns map[string]string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, eq := range spec.Equals {
			col, ok := columns[eq.Field]
			if !ok {
				db.AddError(fmt.Errorf("unsupported filter field %q", eq.Field))
				return db
			}
			db = db.Where(col+" = ?", eq.Value)
		}

		for _, f := range spec.Search {
			col, ok := columns[f.Field]
			if !ok {
				db.AddError(fmt.Errorf("unsupported search field %q", f.Field))
				return db
			}
			if f.CaseInsensitive {
				col = "LOWER(" + col + ")"
			}
			db = db.Where(col+` LIKE ? ESCAPE '\'`, f.LikePattern())
		}

		for _, o := range spec.Order {
			col, ok := columns[o.Field]
			if !ok {
				db.AddError(fmt.Errorf("unsupported order field %q", o.Field))
				return db
			}
			db = db.Order(orderExpr(db, col, o.Desc))
		}

		if spec.Limit > 0 {
			db = db.Limit(spec.Limit)
		}
		return db
	}
}

// orderExpr sorts by codepoint on every dialect. SQLite's default BINARY
// collation already does; Postgres needs the C collation.
func orderExpr(db *gorm.DB, col string, desc bool) string {
	expr := col
	if db.Dialector.Name() == "postgres" {
		expr += ` COLLATE "C"`
	}
	if desc {
		return expr + " DESC"
	}
	return expr + " ASC"
}
