// Package gen assembles per-column property descriptors into complete
// generated bean source files, one file per table.
package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/shrek82/beangen/logger"
	"github.com/shrek82/beangen/naming"
	"github.com/shrek82/beangen/property"
	"github.com/shrek82/beangen/schema"
	"github.com/shrek82/beangen/typemap"
)

// Bean file template
const beanTemplate = `// Code generated by beangen. DO NOT EDIT.

package {{.Package}}

import (
{{- if .NeedsTime}}
	"time"

{{- end}}
	"github.com/shrek82/beangen/bean"
)

// {{.BeanType}} is the bean for the {{.TableName}} table.
type {{.BeanType}} struct {
	bean.Bean
}

// TableName returns the physical table name.
func (b *{{.BeanType}}) TableName() string {
	return "{{.TableName}}"
}

// New{{.BeanType}} constructs a {{.BeanType}} with every compulsory
// property set and every column default applied.
func New{{.BeanType}}({{.CtorParams}}) *{{.BeanType}} {
	b := &{{.BeanType}}{}
{{- range .CtorAssigns}}
	{{.}}
{{- end}}
{{- range .Defaults}}
	{{.}}
{{- end}}
	return b
}

{{range .Accessors}}{{.}}
{{end -}}
// WriteJSON writes every property of b into m in column order.
func (b *{{.BeanType}}) WriteJSON(m *bean.OrderedMap) {
{{- range .Serializers}}
{{.}}
{{- end}}
}
`

var beanTmpl = template.Must(template.New("bean").Parse(beanTemplate))

// beanData is the data fed to the bean file template.
type beanData struct {
	Package     string
	BeanType    string
	TableName   string
	NeedsTime   bool
	CtorParams  string
	CtorAssigns []string
	Defaults    []string
	Accessors   []string
	Serializers []string
}

// Generator renders bean files for tables.
type Generator struct {
	Package   string
	OutDir    string
	Overwrite bool
	Names     naming.Strategy
	Mapper    typemap.Mapper
	Log       logger.Logger
}

// New returns a Generator with the default naming strategy, type mapping,
// and logger.
func New(pkg string, outDir string) *Generator {
	return &Generator{
		Package: pkg,
		OutDir:  outDir,
		Names:   naming.NewSnake(),
		Mapper:  typemap.Default(),
		Log:     logger.NewStdLogger(),
	}
}

// BeanType returns the generated struct name for a table.
func (g *Generator) BeanType(table string) string {
	return naming.Exported(table)
}

// Descriptors returns one scalar descriptor per column, in ordinal order.
func (g *Generator) Descriptors(t *schema.Table) []*property.ScalarDescriptor {
	descs := make([]*property.ScalarDescriptor, len(t.Columns))
	for i := range t.Columns {
		descs[i] = property.NewScalar(t, &t.Columns[i], g.Names, g.Mapper)
	}
	return descs
}

// RenderTable renders the complete bean source file for one table.
// Any column whose logical type has no host mapping aborts the whole
// table with the wrapped typemap.ErrUnsupportedType.
func (g *Generator) RenderTable(t *schema.Table) (string, error) {
	beanType := g.BeanType(t.Name)
	data := beanData{
		Package:   g.Package,
		BeanType:  beanType,
		TableName: t.Name,
	}

	var params []string
	for _, d := range g.Descriptors(t) {
		ht, err := d.HostType()
		if err != nil {
			return "", err
		}
		if ht.NeedsTimeImport() {
			data.NeedsTime = true
		}

		accessors, err := d.RenderAccessorPair(beanType)
		if err != nil {
			return "", err
		}
		data.Accessors = append(data.Accessors, accessors)

		serializer, err := d.RenderSerializationFragment(beanType)
		if err != nil {
			return "", err
		}
		data.Serializers = append(data.Serializers, indent(serializer))

		if d.IsCompulsory() {
			names := d.Names()
			params = append(params, names.Variable+" "+ht.Render(false))
			data.CtorAssigns = append(data.CtorAssigns, fmt.Sprintf("b.%s(%s)", names.Setter, names.Variable))
		}
		if d.HasDefault() {
			dspec, err := d.DefaultSpec()
			if err != nil {
				return "", err
			}
			if dspec.UsesTime {
				data.NeedsTime = true
			}
			assign, err := dspec.Render()
			if err != nil {
				return "", err
			}
			data.Defaults = append(data.Defaults, assign)
		}
	}
	data.CtorParams = strings.Join(params, ", ")

	var sb strings.Builder
	if err := beanTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteTable renders a table's bean file and writes it under OutDir,
// returning the file path. Existing files are kept unless Overwrite is
// set.
func (g *Generator) WriteTable(t *schema.Table) (string, error) {
	start := time.Now()

	src, err := g.RenderTable(t)
	if err != nil {
		return "", err
	}

	fileName := filepath.Join(g.OutDir, strings.ToLower(t.Name)+".go")
	if _, err := os.Stat(fileName); err == nil && !g.Overwrite {
		g.Log.Warn("file %s exists, skipping (use overwrite to replace)", fileName)
		return fileName, nil
	}

	if err := os.MkdirAll(g.OutDir, 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(fileName, []byte(src), 0644); err != nil {
		return "", err
	}

	g.Log.Gen(t.Name, fileName, time.Since(start))
	return fileName, nil
}

// Run generates bean files for every table. A failing table is reported
// and skipped; the remaining tables still generate. The last error is
// returned so callers can exit non-zero.
func (g *Generator) Run(tables []*schema.Table) error {
	var lastErr error
	for _, t := range tables {
		if _, err := g.WriteTable(t); err != nil {
			g.Log.Error("table %s: %v", t.Name, err)
			lastErr = err
		}
	}
	return lastErr
}

// indent prefixes every line of a fragment with one tab for embedding in
// a method body.
func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "\t" + line
		}
	}
	return strings.Join(lines, "\n")
}
