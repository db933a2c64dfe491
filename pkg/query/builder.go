// Package query builds parameterized SELECT statements from projection maps.
package query

import "fmt"

// Builder constructs SELECT statements over a projection.
type Builder struct {
	projection  *ProjectionMap
	defaultSort string
}

// NewBuilder creates a Builder for the given projection with a default sort field.
func NewBuilder(projection *ProjectionMap, defaultSort string) *Builder {
	return &Builder{
		projection:  projection,
		defaultSort: defaultSort,
	}
}

// BuildList returns a SELECT query over every row, ascending by the default sort.
func (b *Builder) BuildList() (string, []any) {
	sql := fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY %s ASC",
		b.projection.Columns(),
		b.projection.Table(),
		b.projection.Column(b.defaultSort),
	)
	return sql, nil
}

// BuildSingle returns a SELECT query for a single record by ID.
func (b *Builder) BuildSingle(idField string, id any) (string, []any) {
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		b.projection.Columns(),
		b.projection.Table(),
		b.projection.Column(idField),
	)
	return sql, []any{id}
}
