package models

import "sort"

// Fields is a partial update: column name to new value. Only the listed columns are
// written; values may be plain values or gorm expressions.
type Fields map[string]any

// Columns returns the column names in a stable order.
func (f Fields) Columns() []string {
	cols := make([]string, 0, len(f))
	for c := range f {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// Set adds column=value and returns f for chaining.
func (f Fields) Set(column string, value any) Fields {
	f[column] = value
	return f
}
