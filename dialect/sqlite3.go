package dialect

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/shrek82/beangen/schema"
)

// SQLite dialect implementation
type sqlite3 struct{}

func init() {
	Register("sqlite3", &sqlite3{})
}

func (d *sqlite3) Tables(db *sql.DB) ([]string, error) {
	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%'")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNames(rows)
}

func (d *sqlite3) Table(db *sql.DB, name string) (*schema.Table, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", name))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	t := &schema.Table{
		Name:        name,
		PrimaryKeys: make(map[string]bool),
	}

	for rows.Next() {
		var (
			cid       int
			colName   string
			dataType  string
			notnull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &colName, &dataType, &notnull, &dfltValue, &pk); err != nil {
			return nil, err
		}

		c := schema.Column{
			Name:          colName,
			Type:          schema.ParseLogicalType(dataType),
			RawType:       dataType,
			NotNull:       notnull == 1,
			Default:       dfltValue.String,
			HasDefaultVal: dfltValue.Valid,
		}

		// SQLite INTEGER PRIMARY KEY is a rowid alias and auto-assigns.
		if pk == 1 {
			t.PrimaryKeys[colName] = true
			if strings.Contains(strings.ToUpper(dataType), "INT") {
				c.AutoIncrement = true
			}
		}

		t.Columns = append(t.Columns, c)
	}
	return t, rows.Err()
}

func scanNames(rows *sql.Rows) ([]string, error) {
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
