// Package naming turns raw column names into the identifier and JSON key
// names used by generated bean code.
package naming

import (
	"strings"
	"unicode"
)

// Names holds every identifier derived from one column.
type Names struct {
	Getter   string // accessor method, e.g. "GetCreatedAt"
	Setter   string // mutator method, e.g. "SetCreatedAt"
	Variable string // local/parameter identifier, e.g. "createdAt"
	JSONKey  string // serialization key, e.g. "createdAt"
}

// Strategy maps a column name to its derived identifiers. Implementations
// must be deterministic and must not map two distinct column names of one
// table to the same Names.
type Strategy interface {
	Names(column string) Names
}

// Snake is the default strategy for snake_case column names.
type Snake struct{}

// NewSnake returns the default snake_case naming strategy.
func NewSnake() Strategy {
	return Snake{}
}

func (Snake) Names(column string) Names {
	exported := snakeToCamel(column, true)
	variable := snakeToCamel(column, false)
	return Names{
		Getter:   "Get" + exported,
		Setter:   "Set" + exported,
		Variable: variable,
		JSONKey:  variable,
	}
}

// Exported converts a snake_case table or column name to an exported Go
// identifier, e.g. "user_profile" -> "UserProfile".
func Exported(s string) string {
	return snakeToCamel(s, true)
}

// snakeToCamel converts under_score names to CamelCase, keeping the
// common ID initialism uppercase. With upperFirst false the first part
// stays lowercase for variable names.
func snakeToCamel(s string, upperFirst bool) string {
	parts := strings.Split(s, "_")
	for i := range parts {
		if i == 0 && !upperFirst {
			continue
		}
		if parts[i] == "id" {
			parts[i] = "ID"
		} else if len(parts[i]) > 0 {
			runes := []rune(parts[i])
			runes[0] = unicode.ToUpper(runes[0])
			parts[i] = string(runes)
		}
	}
	return strings.Join(parts, "")
}
