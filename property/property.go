// Package property implements per-column code generation for bean
// accessors. A ScalarDescriptor binds one column to its owning table and
// a naming strategy, answers classification queries, and renders the
// getter/setter pair, default-value assignment, and JSON serialization
// fragment for that column.
package property

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shrek82/beangen/naming"
	"github.com/shrek82/beangen/schema"
	"github.com/shrek82/beangen/typemap"
)

// ErrNoDefault is returned when a default assignment is requested for a
// column that carries no default value. This is a caller error, not a
// schema data error.
var ErrNoDefault = errors.New("column has no default value")

// ErrBadDefault is returned when a column's default literal cannot be
// represented as a constant of the host type, e.g. an expression default
// on a numeric column.
var ErrBadDefault = errors.New("default literal does not match column type")

// ScalarDescriptor describes one scalar (non-relational) column of a
// table. It holds only read-only references and is safe for concurrent
// use; every method is a pure function of the bound metadata.
type ScalarDescriptor struct {
	table  *schema.Table
	column *schema.Column
	names  naming.Strategy
	mapper typemap.Mapper
}

// NewScalar binds a column to its owning table, naming strategy, and type
// mapper.
func NewScalar(table *schema.Table, column *schema.Column, names naming.Strategy, mapper typemap.Mapper) *ScalarDescriptor {
	return &ScalarDescriptor{
		table:  table,
		column: column,
		names:  names,
		mapper: mapper,
	}
}

// ColumnName returns the physical column name.
func (d *ScalarDescriptor) ColumnName() string {
	return d.column.Name
}

// HostType resolves the column's logical type to its Go host type.
func (d *ScalarDescriptor) HostType() (typemap.HostType, error) {
	ht, err := d.mapper.HostType(d.column.Type)
	if err != nil {
		return typemap.HostType{}, fmt.Errorf("column %s.%s: %w", d.table.Name, d.column.Name, err)
	}
	return ht, nil
}

// Nullable reports whether the generated accessor type admits nil.
// Auto-increment columns are nullable even when declared NOT NULL: the
// value is absent until the first persist assigns it.
func (d *ScalarDescriptor) Nullable() bool {
	return !d.column.NotNull || d.column.AutoIncrement
}

// IsCompulsory reports whether the property must be supplied at bean
// construction time: NOT NULL, not auto-increment, and no default.
func (d *ScalarDescriptor) IsCompulsory() bool {
	return d.column.NotNull && !d.column.AutoIncrement && !d.column.HasDefault()
}

// HasDefault reports whether the column carries a default value.
func (d *ScalarDescriptor) HasDefault() bool {
	return d.column.HasDefault()
}

// IsPrimaryKey reports whether the column is part of the owning table's
// primary key.
func (d *ScalarDescriptor) IsPrimaryKey() bool {
	return d.table.IsPrimaryKey(d.column.Name)
}

// ForeignKey always returns the none sentinel: scalar descriptors never
// carry a constraint. Foreign-key columns use a separate descriptor kind.
func (d *ScalarDescriptor) ForeignKey() schema.ForeignKey {
	return schema.ForeignKeyNone
}

// Names returns the identifiers derived from the column name.
func (d *ScalarDescriptor) Names() naming.Names {
	return d.names.Names(d.column.Name)
}

// isCurrentTimestamp matches the CURRENT_TIMESTAMP server directive,
// case-insensitively and with or without the trailing parentheses some
// drivers report.
func isCurrentTimestamp(literal string) bool {
	s := strings.TrimSpace(literal)
	s = strings.TrimSuffix(s, "()")
	return strings.EqualFold(s, "CURRENT_TIMESTAMP")
}

// normalizeDefault strips the decoration drivers add around default
// literals: a postgres cast suffix ("'guest'::character varying") and
// surrounding single quotes.
func normalizeDefault(literal string) string {
	s := strings.TrimSpace(literal)
	if idx := strings.Index(s, "::"); idx != -1 {
		s = strings.TrimSpace(s[:idx])
	}
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		s = s[1 : len(s)-1]
	}
	return s
}
