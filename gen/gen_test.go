package gen

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shrek82/beangen/logger"
	"github.com/shrek82/beangen/schema"
	"github.com/shrek82/beangen/typemap"
)

func usersTable() *schema.Table {
	return &schema.Table{
		Name: "users",
		Columns: []schema.Column{
			{Name: "id", Type: schema.TypeInteger, RawType: "bigint", NotNull: true, AutoIncrement: true},
			{Name: "name", Type: schema.TypeString, RawType: "varchar(100)", NotNull: true},
			{Name: "age", Type: schema.TypeInteger, RawType: "int", Default: "18", HasDefaultVal: true},
			{Name: "created_at", Type: schema.TypeDateTime, RawType: "timestamp", NotNull: true, Default: "CURRENT_TIMESTAMP", HasDefaultVal: true},
		},
		PrimaryKeys: map[string]bool{"id": true},
	}
}

func TestRenderTable(t *testing.T) {
	g := New("models", "")
	src, err := g.RenderTable(usersTable())
	if err != nil {
		t.Fatalf("failed to render table: %v", err)
	}

	t.Run("Header", func(t *testing.T) {
		if !strings.HasPrefix(src, "// Code generated by beangen. DO NOT EDIT.") {
			t.Errorf("missing generated-code header:\n%s", src)
		}
		if !strings.Contains(src, "package models") {
			t.Errorf("missing package clause:\n%s", src)
		}
	})

	t.Run("Imports", func(t *testing.T) {
		if !strings.Contains(src, "\t\"time\"") {
			t.Errorf("temporal column requires the time import:\n%s", src)
		}
		if !strings.Contains(src, "\t\"github.com/shrek82/beangen/bean\"") {
			t.Errorf("generated beans import the bean runtime:\n%s", src)
		}
	})

	t.Run("Struct", func(t *testing.T) {
		if !strings.Contains(src, "type User struct {\n\tbean.Bean\n}") {
			t.Errorf("expected User struct embedding bean.Bean:\n%s", src)
		}
		if !strings.Contains(src, "func (b *User) TableName() string {\n\treturn \"users\"\n}") {
			t.Errorf("expected TableName method:\n%s", src)
		}
	})

	t.Run("Constructor", func(t *testing.T) {
		// Only the compulsory column is a parameter; defaults are applied
		// inside the body.
		if !strings.Contains(src, "func NewUser(name string) *User {") {
			t.Errorf("expected constructor taking only compulsory properties:\n%s", src)
		}
		if !strings.Contains(src, "b.SetName(name)") {
			t.Errorf("constructor must assign compulsory properties:\n%s", src)
		}
		if !strings.Contains(src, "b.SetAge(bean.Ptr(int64(18)))") {
			t.Errorf("constructor must apply literal defaults:\n%s", src)
		}
		if !strings.Contains(src, "b.SetCreatedAt(time.Now().UTC())") {
			t.Errorf("constructor must apply the current-timestamp default:\n%s", src)
		}
		if strings.Contains(src, "CURRENT_TIMESTAMP") {
			t.Errorf("server directive leaked into generated code:\n%s", src)
		}
	})

	t.Run("Accessors", func(t *testing.T) {
		for _, sig := range []string{
			"func (b *User) GetID() *int64 {",
			"func (b *User) SetID(v *int64) {",
			"func (b *User) GetName() string {",
			"func (b *User) SetName(v string) {",
			"func (b *User) GetAge() *int64 {",
			"func (b *User) GetCreatedAt() time.Time {",
		} {
			if !strings.Contains(src, sig) {
				t.Errorf("missing accessor %q:\n%s", sig, src)
			}
		}
	})

	t.Run("WriteJSON", func(t *testing.T) {
		if !strings.Contains(src, "func (b *User) WriteJSON(m *bean.OrderedMap) {") {
			t.Errorf("missing WriteJSON method:\n%s", src)
		}
		if !strings.Contains(src, `m.Set("id", b.GetID())`) {
			t.Errorf("missing id serialization:\n%s", src)
		}
		if !strings.Contains(src, `m.Set("createdAt", b.GetCreatedAt().Format(time.RFC3339))`) {
			t.Errorf("missing RFC 3339 formatting for created_at:\n%s", src)
		}
	})
}

func TestRenderTableTimeImportOnlyWhenUsed(t *testing.T) {
	g := New("models", "")

	t.Run("StringDefaultMentioningTime", func(t *testing.T) {
		// A string default whose value happens to contain "time." must
		// not pull in the time import.
		table := &schema.Table{
			Name: "notes",
			Columns: []schema.Column{
				{Name: "id", Type: schema.TypeInteger, RawType: "integer", NotNull: true, AutoIncrement: true},
				{Name: "label", Type: schema.TypeString, RawType: "varchar(50)", NotNull: true, Default: "lunchtime.", HasDefaultVal: true},
			},
			PrimaryKeys: map[string]bool{"id": true},
		}
		src, err := g.RenderTable(table)
		if err != nil {
			t.Fatalf("failed to render table: %v", err)
		}
		if strings.Contains(src, "\t\"time\"") {
			t.Errorf("time imported without a temporal column:\n%s", src)
		}
		if !strings.Contains(src, `b.SetLabel("lunchtime.")`) {
			t.Errorf("string default not applied:\n%s", src)
		}
	})

	t.Run("TemporalColumn", func(t *testing.T) {
		src, err := g.RenderTable(usersTable())
		if err != nil {
			t.Fatalf("failed to render table: %v", err)
		}
		if !strings.Contains(src, "\t\"time\"") {
			t.Errorf("temporal column requires the time import:\n%s", src)
		}
	})
}

func TestRenderTableUnsupportedColumn(t *testing.T) {
	g := New("models", "")
	bad := &schema.Table{
		Name: "shapes",
		Columns: []schema.Column{
			{Name: "id", Type: schema.TypeInteger, NotNull: true, AutoIncrement: true},
			{Name: "outline", Type: schema.TypeUnknown, RawType: "geometry", NotNull: true},
		},
		PrimaryKeys: map[string]bool{"id": true},
	}
	if _, err := g.RenderTable(bad); !errors.Is(err, typemap.ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestRunContinuesPastFailingTable(t *testing.T) {
	dir := t.TempDir()
	g := New("models", dir)
	g.Log.SetLevel(logger.LogLevelSilent)

	bad := &schema.Table{
		Name:    "shapes",
		Columns: []schema.Column{{Name: "outline", Type: schema.TypeUnknown, NotNull: true}},
	}
	err := g.Run([]*schema.Table{bad, usersTable()})
	if !errors.Is(err, typemap.ErrUnsupportedType) {
		t.Errorf("expected the failing table's error to surface, got %v", err)
	}

	if _, statErr := os.Stat(filepath.Join(dir, "users.go")); statErr != nil {
		t.Errorf("remaining tables must still generate: %v", statErr)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "shapes.go")); !os.IsNotExist(statErr) {
		t.Error("failing table must not produce a file")
	}
}

func TestWriteTableRespectsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	g := New("models", dir)
	g.Log.SetLevel(logger.LogLevelSilent)

	fileName := filepath.Join(dir, "users.go")
	if err := os.WriteFile(fileName, []byte("// hand-edited\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := g.WriteTable(usersTable()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "// hand-edited\n" {
		t.Error("existing file must be kept without overwrite")
	}

	g.Overwrite = true
	if _, err := g.WriteTable(usersTable()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err = os.ReadFile(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "type User struct {") {
		t.Error("overwrite must replace the existing file")
	}
}
