package schema

import (
	"testing"
)

func TestParseLogicalType(t *testing.T) {
	cases := []struct {
		raw  string
		want LogicalType
	}{
		{"INT", TypeInteger},
		{"integer", TypeInteger},
		{"BIGINT", TypeInteger},
		{"int4", TypeInteger},
		{"VARCHAR(100)", TypeString},
		{"character varying", TypeString},
		{"decimal(10,2)", TypeDecimal},
		{"DOUBLE PRECISION", TypeFloat},
		{"BOOLEAN", TypeBool},
		{"text", TypeText},
		{"BYTEA", TypeBytes},
		{"longblob", TypeBytes},
		{"DATE", TypeDate},
		{"timestamp with time zone", TypeDateTime},
		{"DATETIME", TypeDateTime},
		{"jsonb", TypeJSON},
		{"geometry", TypeUnknown},
		{"", TypeUnknown},
	}
	for _, c := range cases {
		if got := ParseLogicalType(c.raw); got != c.want {
			t.Errorf("%q: expected %s, got %s", c.raw, c.want, got)
		}
	}
}

func TestTemporal(t *testing.T) {
	for _, lt := range []LogicalType{TypeDate, TypeTime, TypeDateTime} {
		if !lt.Temporal() {
			t.Errorf("%s should be temporal", lt)
		}
	}
	for _, lt := range []LogicalType{TypeInteger, TypeString, TypeBytes, TypeUnknown} {
		if lt.Temporal() {
			t.Errorf("%s should not be temporal", lt)
		}
	}
}

func TestTablePrimaryKeys(t *testing.T) {
	tbl := &Table{
		Name: "orders",
		Columns: []Column{
			{Name: "order_id"},
			{Name: "line_no"},
			{Name: "amount"},
		},
		PrimaryKeys: map[string]bool{"order_id": true, "line_no": true},
	}

	if !tbl.IsPrimaryKey("order_id") || !tbl.IsPrimaryKey("line_no") {
		t.Error("composite key members should report primary key")
	}
	if tbl.IsPrimaryKey("amount") {
		t.Error("amount is not part of the primary key")
	}

	names := tbl.PKColumnNames()
	if len(names) != 2 || names[0] != "order_id" || names[1] != "line_no" {
		t.Errorf("expected [order_id line_no], got %v", names)
	}
}

func TestColumnHasDefault(t *testing.T) {
	withDefault := Column{Name: "role", Default: "guest", HasDefaultVal: true}
	if !withDefault.HasDefault() {
		t.Error("column with default literal should report a default")
	}

	emptyDefault := Column{Name: "note", Default: "", HasDefaultVal: true}
	if !emptyDefault.HasDefault() {
		t.Error("empty-string default is still a default")
	}

	auto := Column{Name: "id", AutoIncrement: true}
	if auto.HasDefault() {
		t.Error("auto-increment must not count as a default")
	}
}

func TestForeignKeyNone(t *testing.T) {
	if !ForeignKeyNone.None() {
		t.Error("sentinel should report none")
	}
	fk := ForeignKey{Name: "fk_orders_user", ParentTable: "users", ParentColumns: []string{"id"}}
	if fk.None() {
		t.Error("real constraint should not report none")
	}
}
