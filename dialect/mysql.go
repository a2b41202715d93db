package dialect

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/shrek82/beangen/schema"
)

// MySQL dialect implementation
type mysql struct{}

func init() {
	Register("mysql", &mysql{})
}

func (d *mysql) Tables(db *sql.DB) ([]string, error) {
	rows, err := db.Query("SHOW TABLES")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNames(rows)
}

func (d *mysql) Table(db *sql.DB, name string) (*schema.Table, error) {
	rows, err := db.Query(fmt.Sprintf("SHOW FULL COLUMNS FROM `%s`", name))
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
			field      string
			typ        string
			collation  sql.NullString
			null       string
			key        string
			defaultVal sql.NullString
			extra      string
			privileges string
			comment    string
		)
		if err := rows.Scan(&field, &typ, &collation, &null, &key, &defaultVal, &extra, &privileges, &comment); err != nil {
			return nil, err
		}

		c := schema.Column{
			Name:          field,
			Type:          schema.ParseLogicalType(typ),
			RawType:       typ,
			NotNull:       null == "NO",
			AutoIncrement: strings.Contains(strings.ToLower(extra), "auto_increment"),
			Default:       defaultVal.String,
			HasDefaultVal: defaultVal.Valid,
			Comment:       comment,
		}

		if key == "PRI" {
			t.PrimaryKeys[field] = true
		}

		t.Columns = append(t.Columns, c)
	}
	return t, rows.Err()
}
