// Package query builds parameterized SQL statements against projected tables.
// A ProjectionMap binds view names used by handlers and filters to the
// qualified column names used in SQL.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps view field names to table-qualified column names.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	views   map[string]string
}

// NewProjectionMap creates a projection over schema.table aliased as alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		views:  make(map[string]string),
	}
}

// Project adds column to the projection under view name.
// Columns are selected in the order they are projected.
func (p *ProjectionMap) Project(column, view string) *ProjectionMap {
	qualified := fmt.Sprintf("%s.%s", p.alias, column)
	p.columns = append(p.columns, qualified)
	p.views[view] = qualified
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the FROM clause target, e.g. "public.documents d".
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Column resolves a view name to its qualified column.
// Unknown names are returned unchanged.
func (p *ProjectionMap) Column(view string) string {
	if col, ok := p.views[view]; ok {
		return col
	}
	return view
}

// Columns returns the comma-separated select list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columns, ", ")
}

// Lookup resolves a view name case-insensitively and reports whether it is projected.
func (p *ProjectionMap) Lookup(view string) (string, bool) {
	if col, ok := p.views[view]; ok {
		return col, true
	}
	for name, col := range p.views {
		if strings.EqualFold(name, view) {
			return col, true
		}
	}
	return "", false
}

// ColumnList returns a copy of the projected columns in order.
func (p *ProjectionMap) ColumnList() []string {
	list := make([]string, len(p.columns))
	copy(list, p.columns)
	return list
}
