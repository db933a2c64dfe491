package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps view field names to qualified table columns.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	views   map[string]string
}

// NewProjectionMap creates a projection for schema.table aliased as alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		views:  make(map[string]string),
	}
}

// Project adds column under the view name.
func (p *ProjectionMap) Project(column, view string) *ProjectionMap {
	qualified := fmt.Sprintf("%s.%s", p.alias, column)
	p.columns = append(p.columns, qualified)
	p.views[view] = qualified
	return p
}

// Table returns the aliased table reference for FROM clauses.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Column resolves a view name to its qualified column. Unknown names are returned unchanged.
func (p *ProjectionMap) Column(view string) string {
	if col, ok := p.views[view]; ok {
		return col
	}
	return view
}

// Columns returns the projected columns as a SELECT list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columns, ", ")
}
