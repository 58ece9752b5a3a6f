package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gofr.dev/filterable/pkg/gofr/filter"
)

func conditions(pairs ...string) filter.Conditions {
	var c filter.Conditions

	for i := 0; i+1 < len(pairs); i += 2 {
		c.Set(pairs[i], pairs[i+1])
	}

	return c
}

func TestWhereQuery(t *testing.T) {
	tests := []struct {
		desc     string
		dialect  string
		c        filter.Conditions
		expected string
		args     []any
	}{
		{"empty", DialectMySQL, conditions(), "", nil},
		{"mysql", DialectMySQL, conditions("location", "firstLocation", "type", "firstType"),
			"`location`=? AND `type`=?", []any{"firstLocation", "firstType"}},
		{"postgres", DialectPostgres, conditions("location", "firstLocation", "type", "firstType"),
			`"location"=$1 AND "type"=$2`, []any{"firstLocation", "firstType"}},
		{"quote in field", DialectMySQL, conditions("ty`pe", "hammer"), "`ty``pe`=?", []any{"hammer"}},
		{"quote in postgres field", DialectPostgres, conditions(`ty"pe`, "hammer"), `"ty""pe"=$1`, []any{"hammer"}},
	}

	for i, tc := range tests {
		where, args := WhereQuery(tc.dialect, tc.c)

		assert.Equal(t, tc.expected, where, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Equal(t, tc.args, args, "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestSelectWhereQuery(t *testing.T) {
	stmt, args := SelectWhereQuery(DialectPostgres, "products", conditions("type", "hammer"))

	assert.Equal(t, `SELECT * FROM "products" WHERE "type"=$1`, stmt)
	assert.Equal(t, []any{"hammer"}, args)

	stmt, args = SelectWhereQuery(DialectMySQL, "products", conditions())

	assert.Equal(t, "SELECT * FROM `products`", stmt)
	assert.Nil(t, args)
}

func TestApplier_Apply(t *testing.T) {
	tests := []struct {
		desc     string
		dialect  string
		query    Query
		c        filter.Conditions
		expected Query
	}{
		{"no conditions", DialectMySQL, Query{Text: "SELECT * FROM `products`"}, conditions(),
			Query{Text: "SELECT * FROM `products`"}},
		{"adds where", DialectMySQL, Query{Text: "SELECT * FROM `products`"}, conditions("type", "hammer"),
			Query{Text: "SELECT * FROM `products` WHERE `type`=?", Args: []any{"hammer"}, HasWhere: true}},
		{"extends where", DialectPostgres,
			Query{Text: `SELECT * FROM "products" where "deleted"=$1`, Args: []any{false}, HasWhere: true},
			conditions("type", "hammer", "location", "north"),
			Query{Text: `SELECT * FROM "products" where "deleted"=$1 AND "type"=$2 AND "location"=$3`,
				Args: []any{false, "hammer", "north"}, HasWhere: true}},
		{"where after newline", DialectMySQL,
			Query{Text: "SELECT * FROM `products`\nWHERE `deleted`=?", Args: []any{false}, HasWhere: true},
			conditions("type", "hammer"),
			Query{Text: "SELECT * FROM `products`\nWHERE `deleted`=? AND `type`=?",
				Args: []any{false, "hammer"}, HasWhere: true}},
		{"where inside subquery", DialectMySQL,
			Query{Text: "SELECT * FROM (SELECT * FROM `products` WHERE `deleted`=?) AS p", Args: []any{false}},
			conditions("type", "hammer"),
			Query{Text: "SELECT * FROM (SELECT * FROM `products` WHERE `deleted`=?) AS p WHERE `type`=?",
				Args: []any{false, "hammer"}, HasWhere: true}},
	}

	for i, tc := range tests {
		got := Applier{Dialect: tc.dialect}.Apply(tc.query, tc.c)

		assert.Equal(t, tc.expected, got, "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestApplier_DoesNotShareArgs(t *testing.T) {
	base := Query{Text: "SELECT * FROM `products` WHERE `deleted`=?", Args: make([]any, 1, 4), HasWhere: true}

	a := Applier{Dialect: DialectMySQL}.Apply(base, conditions("type", "hammer"))
	b := Applier{Dialect: DialectMySQL}.Apply(base, conditions("type", "saw"))

	assert.Equal(t, "hammer", a.Args[1])
	assert.Equal(t, "saw", b.Args[1])
}

func TestApplier_ChainedApplyExtendsWhere(t *testing.T) {
	a := Applier{Dialect: DialectMySQL}

	q := a.Apply(Query{Text: "SELECT * FROM `products`"}, conditions("type", "hammer"))
	q = a.Apply(q, conditions("location", "north"))

	assert.Equal(t, "SELECT * FROM `products` WHERE `type`=? AND `location`=?", q.Text)
	assert.Equal(t, []any{"hammer", "north"}, q.Args)
}
