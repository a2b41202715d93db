package schema

import (
	"strings"
)

// LogicalType is the storage-level category of a column, independent of
// any particular driver's spelling of it.
type LogicalType int

const (
	TypeUnknown LogicalType = iota
	TypeInteger
	TypeFloat
	TypeDecimal
	TypeBool
	TypeString
	TypeText
	TypeBytes
	TypeDate
	TypeTime
	TypeDateTime
	TypeJSON
)

func (t LogicalType) String() string {
	switch t {
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeDecimal:
		return "decimal"
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	case TypeText:
		return "text"
	case TypeBytes:
		return "bytes"
	case TypeDate:
		return "date"
	case TypeTime:
		return "time"
	case TypeDateTime:
		return "datetime"
	case TypeJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Temporal reports whether the type carries a point-in-time or calendar value.
func (t LogicalType) Temporal() bool {
	return t == TypeDate || t == TypeTime || t == TypeDateTime
}

// Column represents one database column. It is read-only input to code
// generation; nothing in this module mutates it.
type Column struct {
	Name          string
	Type          LogicalType
	RawType       string // driver-reported type, e.g. "varchar(100)"
	NotNull       bool
	AutoIncrement bool
	Default       string // default literal as reported; "" means absent
	HasDefaultVal bool   // distinguishes absent from empty-string default
	Comment       string
}

// HasDefault reports whether the column carries a default value.
// Auto-increment does not count as a default.
func (c *Column) HasDefault() bool {
	return c.HasDefaultVal
}

// Table represents one database table with its columns in ordinal order.
type Table struct {
	Name        string
	Columns     []Column
	PrimaryKeys map[string]bool
}

// IsPrimaryKey reports whether the named column is part of the primary key.
func (t *Table) IsPrimaryKey(column string) bool {
	return t.PrimaryKeys[column]
}

// PKColumnNames returns the primary key column names in column order.
func (t *Table) PKColumnNames() []string {
	var names []string
	for _, c := range t.Columns {
		if t.PrimaryKeys[c.Name] {
			names = append(names, c.Name)
		}
	}
	return names
}

// ForeignKey describes a column-level foreign key constraint.
type ForeignKey struct {
	Name          string
	ParentTable   string
	ParentColumns []string
}

// ForeignKeyNone is the sentinel for columns without a foreign key.
// Scalar columns always report it; relational columns are handled by a
// separate descriptor kind.
var ForeignKeyNone = ForeignKey{}

// None reports whether the foreign key is the absent sentinel.
func (fk ForeignKey) None() bool {
	return fk.Name == "" && fk.ParentTable == ""
}

// ParseLogicalType normalizes a driver-reported type string into a
// LogicalType. Size and precision suffixes are stripped before matching,
// e.g. "VARCHAR(100)" -> TypeString, "decimal(10,2)" -> TypeDecimal.
func ParseLogicalType(rawType string) LogicalType {
	base := strings.ToUpper(strings.TrimSpace(rawType))
	if idx := strings.Index(base, "("); idx != -1 {
		base = strings.TrimSpace(base[:idx])
	}

	switch base {
	case "TINYINT", "SMALLINT", "MEDIUMINT", "INT", "INTEGER", "BIGINT",
		"INT2", "INT4", "INT8", "SERIAL", "BIGSERIAL", "SMALLSERIAL":
		return TypeInteger
	case "FLOAT", "DOUBLE", "REAL", "DOUBLE PRECISION", "FLOAT4", "FLOAT8":
		return TypeFloat
	case "DECIMAL", "NUMERIC":
		return TypeDecimal
	case "BOOL", "BOOLEAN", "BIT":
		return TypeBool
	case "CHAR", "VARCHAR", "NCHAR", "NVARCHAR", "CHARACTER", "CHARACTER VARYING", "UUID":
		return TypeString
	case "TEXT", "TINYTEXT", "MEDIUMTEXT", "LONGTEXT", "CLOB":
		return TypeText
	case "BLOB", "TINYBLOB", "MEDIUMBLOB", "LONGBLOB", "BINARY", "VARBINARY", "BYTEA":
		return TypeBytes
	case "DATE":
		return TypeDate
	case "TIME", "TIME WITH TIME ZONE", "TIME WITHOUT TIME ZONE":
		return TypeTime
	case "DATETIME", "TIMESTAMP", "TIMESTAMPTZ",
		"TIMESTAMP WITH TIME ZONE", "TIMESTAMP WITHOUT TIME ZONE":
		return TypeDateTime
	case "JSON", "JSONB":
		return TypeJSON
	default:
		return TypeUnknown
	}
}
