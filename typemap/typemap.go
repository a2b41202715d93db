// Package typemap maps logical column types to the Go types used in
// generated bean code. The mapping is a closed table over the schema
// package's LogicalType set; any gap surfaces as ErrUnsupportedType
// instead of a guessed fallback.
package typemap

import (
	"errors"
	"fmt"

	"github.com/shrek82/beangen/schema"
)

// ErrUnsupportedType is returned when a logical type has no host type
// mapping. Generation for the affected column must abort.
var ErrUnsupportedType = errors.New("unsupported column type")

// HostKind enumerates the Go value kinds generated code can hold.
type HostKind int

const (
	KindInt HostKind = iota
	KindFloat
	KindBool
	KindString
	KindBytes
	KindTime
)

// HostType is the Go-side type a column maps to.
type HostType struct {
	Kind HostKind
	Name string // Go type name, e.g. "int64", "time.Time"
}

// Nilable reports whether the bare Go type already admits nil, in which
// case nullable columns need no pointer qualifier.
func (h HostType) Nilable() bool {
	return h.Kind == KindBytes
}

// Render returns the Go type expression, pointer-qualified when the
// column is nullable and the base type cannot itself be nil.
func (h HostType) Render(nullable bool) string {
	if nullable && !h.Nilable() {
		return "*" + h.Name
	}
	return h.Name
}

// NeedsTimeImport reports whether the type references the time package.
func (h HostType) NeedsTimeImport() bool {
	return h.Kind == KindTime
}

// Mapper resolves logical types to host types.
type Mapper interface {
	HostType(t schema.LogicalType) (HostType, error)
}

// goMapper is the default mapping table for generated Go beans.
type goMapper struct{}

// Default returns the standard LogicalType -> Go type mapping.
func Default() Mapper {
	return goMapper{}
}

var goTypes = map[schema.LogicalType]HostType{
	schema.TypeInteger:  {Kind: KindInt, Name: "int64"},
	schema.TypeFloat:    {Kind: KindFloat, Name: "float64"},
	schema.TypeDecimal:  {Kind: KindFloat, Name: "float64"},
	schema.TypeBool:     {Kind: KindBool, Name: "bool"},
	schema.TypeString:   {Kind: KindString, Name: "string"},
	schema.TypeText:     {Kind: KindString, Name: "string"},
	schema.TypeJSON:     {Kind: KindString, Name: "string"},
	schema.TypeBytes:    {Kind: KindBytes, Name: "[]byte"},
	schema.TypeDate:     {Kind: KindTime, Name: "time.Time"},
	schema.TypeTime:     {Kind: KindTime, Name: "time.Time"},
	schema.TypeDateTime: {Kind: KindTime, Name: "time.Time"},
}

func (goMapper) HostType(t schema.LogicalType) (HostType, error) {
	ht, ok := goTypes[t]
	if !ok {
		return HostType{}, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
	return ht, nil
}
