// Package bean is the small runtime generated code delegates to: a
// generic field store keyed by table and column name, plus the helpers
// generated constructors and serializers reference.
package bean

import (
	"fmt"
	"time"
)

// Bean is the generic field store embedded by every generated bean
// struct. Accessors delegate to Field and SetField with their table and
// column names baked in.
type Bean struct {
	fields map[string]any
}

func fieldKey(table, column string) string {
	return table + "." + column
}

// Field returns the stored value for a column, or nil when unset.
func (b *Bean) Field(table, column string) any {
	if b.fields == nil {
		return nil
	}
	return b.fields[fieldKey(table, column)]
}

// SetField stores a value for a column.
func (b *Bean) SetField(table, column string, v any) {
	if b.fields == nil {
		b.fields = make(map[string]any)
	}
	b.fields[fieldKey(table, column)] = v
}

// Ptr returns a pointer to v. Generated constructors use it to pass
// literal defaults to pointer-typed setters.
func Ptr[T any](v T) *T {
	return &v
}

// timeLayouts are the default-literal formats MustTime accepts.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"15:04:05",
	time.RFC3339,
}

// MustTime parses a fixed temporal default literal. It panics on
// malformed input: the literal comes from generated code, so a failure
// is a generation bug, not runtime data.
func MustTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	panic(fmt.Sprintf("bean: unparseable time literal %q", s))
}
