// Package dialect reads table and column metadata from a live database,
// per driver. The resulting schema model is the read-only input to code
// generation; nothing here is touched at generated-code runtime.
package dialect

import (
	"database/sql"

	"github.com/shrek82/beangen/schema"
)

// Dialect represents the interface for database-specific schema
// introspection. Each database (MySQL, SQLite, etc.) must implement this
// interface to be supported.
type Dialect interface {
	// Tables lists the user table names in the connected database
	Tables(db *sql.DB) ([]string, error)
	// Table reads one table's columns (in ordinal order) and primary key
	Table(db *sql.DB, name string) (*schema.Table, error)
}

var dialects = make(map[string]Dialect)

// Register registers a new dialect for a given driver name
func Register(name string, d Dialect) {
	dialects[name] = d
}

// Get retrieves a registered dialect by driver name
func Get(name string) (Dialect, bool) {
	d, ok := dialects[name]
	return d, ok
}
