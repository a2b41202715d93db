package beangen

import (
	"github.com/shrek82/beangen/gen"
	"github.com/shrek82/beangen/naming"
	"github.com/shrek82/beangen/property"
	"github.com/shrek82/beangen/schema"
	"github.com/shrek82/beangen/typemap"
)

// Re-export core types and functions
type Generator = gen.Generator
type ScalarDescriptor = property.ScalarDescriptor
type AccessorSpec = property.AccessorSpec
type Table = schema.Table
type Column = schema.Column
type NamingStrategy = naming.Strategy

var (
	New       = gen.New
	NewScalar = property.NewScalar
	NewSnake  = naming.NewSnake

	DefaultMapper    = typemap.Default
	ParseLogicalType = schema.ParseLogicalType

	ErrUnsupportedType = typemap.ErrUnsupportedType
	ErrNoDefault       = property.ErrNoDefault
)
