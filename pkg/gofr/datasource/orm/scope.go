package orm

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gofr.dev/filterable/pkg/gofr/filter"
)

// Scope returns a gorm scope matching every condition of c, in field order.
//
//	db.Scopes(orm.Scope(component.Conditions())).Find(&products)
func Scope(c filter.Conditions) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		values := c.Values()

		for i, f := range c.Fields() {
			db = db.Where(clause.Eq{Column: clause.Column{Name: f}, Value: values[i]})
		}

		return db
	}
}

// Applier narrows *gorm.DB queries with filter conditions.
type Applier struct{}

func (Applier) Apply(db *gorm.DB, c filter.Conditions) *gorm.DB {
	return db.Scopes(Scope(c))
}
