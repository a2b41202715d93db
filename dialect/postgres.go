package dialect

import (
	"database/sql"
	"strings"

	"github.com/shrek82/beangen/schema"
)

// PostgreSQL dialect implementation
type postgres struct{}

func init() {
	Register("postgres", &postgres{})
}

func (d *postgres) Tables(db *sql.DB) ([]string, error) {
	rows, err := db.Query("SELECT tablename FROM pg_catalog.pg_tables WHERE schemaname != 'pg_catalog' AND schemaname != 'information_schema'")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNames(rows)
}

func (d *postgres) Table(db *sql.DB, name string) (*schema.Table, error) {
	rows, err := db.Query(`
		SELECT
			c.column_name,
			c.data_type,
			c.is_nullable,
			c.is_identity,
			c.column_default,
			COALESCE(d.description, '') as comment
		FROM information_schema.columns c
		LEFT JOIN pg_catalog.pg_stat_user_tables t ON c.table_name = t.relname
		LEFT JOIN pg_catalog.pg_description d ON t.relid = d.objoid AND c.ordinal_position = d.objsubid
		WHERE c.table_name = $1 AND c.table_schema = 'public'
		ORDER BY c.ordinal_position`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	t := &schema.Table{
		Name:        name,
		PrimaryKeys: make(map[string]bool),
	}

	for rows.Next() {
		var colName, dataType, isNullable, isIdentity, comment string
		var columnDefault sql.NullString
		if err := rows.Scan(&colName, &dataType, &isNullable, &isIdentity, &columnDefault, &comment); err != nil {
			return nil, err
		}

		c := schema.Column{
			Name:          colName,
			Type:          schema.ParseLogicalType(dataType),
			RawType:       dataType,
			NotNull:       isNullable == "NO",
			AutoIncrement: isIdentity == "YES",
			Default:       columnDefault.String,
			HasDefaultVal: columnDefault.Valid,
			Comment:       comment,
		}

		// Serial columns auto-assign through a sequence default rather
		// than an identity flag. Their nextval default is not a bean
		// default value.
		if strings.Contains(strings.ToLower(c.Default), "nextval") {
			c.AutoIncrement = true
			c.Default = ""
			c.HasDefaultVal = false
		}

		t.Columns = append(t.Columns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := d.primaryKeys(db, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (d *postgres) primaryKeys(db *sql.DB, t *schema.Table) error {
	rows, err := db.Query(`
		SELECT kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		WHERE tc.constraint_type = 'PRIMARY KEY'
			AND tc.table_name = $1 AND tc.table_schema = 'public'`, t.Name)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var colName string
		if err := rows.Scan(&colName); err != nil {
			return err
		}
		t.PrimaryKeys[colName] = true
	}
	return rows.Err()
}
