package sql

import (
	"fmt"
	"strings"

	"gofr.dev/filterable/pkg/gofr/filter"
)

// WhereQuery returns the condition of a WHERE clause matching every field of c, in field order,
// and its arguments. It returns an empty string when c is empty.
//
//	WhereQuery("postgres", c) // "location"=$1 AND "type"=$2
func WhereQuery(dialect string, c filter.Conditions) (string, []any) {
	return whereQuery(dialect, c, 0)
}

// whereQuery numbers the bindvars after offset existing arguments.
func whereQuery(dialect string, c filter.Conditions, offset int) (string, []any) {
	if c.IsEmpty() {
		return "", nil
	}

	s := syntaxOf(dialect)
	fields := c.Fields()
	values := c.Values()

	clauses := make([]string, len(fields))
	args := make([]any, len(fields))

	for i, f := range fields {
		clauses[i] = fmt.Sprintf(`%s=%s`, s.identifier(f), s.bindVar(offset+i+1))
		args[i] = values[i]
	}

	return strings.Join(clauses, " AND "), args
}

func SelectQuery(dialect, tableName string) string {
	return fmt.Sprintf(`SELECT * FROM %s`, syntaxOf(dialect).identifier(tableName))
}

// SelectWhereQuery selects the rows of tableName matching c, or every row when c is empty.
func SelectWhereQuery(dialect, tableName string, c filter.Conditions) (string, []any) {
	stmt := SelectQuery(dialect, tableName)

	where, args := WhereQuery(dialect, c)
	if where == "" {
		return stmt, nil
	}

	return stmt + " WHERE " + where, args
}

// Query is a statement with its arguments, narrowed by Applier. HasWhere tells Applier that the
// outer statement already ends in a WHERE clause; the text itself is never inspected.
type Query struct {
	Text     string
	Args     []any
	HasWhere bool
}

// Applier appends filter conditions to a Query of Dialect. The conditions are added with AND when
// the query has a WHERE clause, with WHERE otherwise; they must come last in the statement.
//
//	q := filter.Apply(component, sql.Query{Text: "SELECT * FROM `products`"}, sql.Applier{Dialect: "mysql"})
type Applier struct {
	Dialect string
}

func (a Applier) Apply(query Query, c filter.Conditions) Query {
	where, args := whereQuery(a.Dialect, c, len(query.Args))
	if where == "" {
		return query
	}

	keyword := " WHERE "
	if query.HasWhere {
		keyword = " AND "
	}

	return Query{
		Text:     query.Text + keyword + where,
		Args:     append(append(make([]any, 0, len(query.Args)+len(args)), query.Args...), args...),
		HasWhere: true,
	}
}
