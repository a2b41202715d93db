package property

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/shrek82/beangen/typemap"
)

// AccessorSpec is the intermediate representation one column renders
// through. Templates consume it; tests can assert on it directly instead
// of parsing emitted text.
type AccessorSpec struct {
	BeanType   string // generated struct name, e.g. "User"
	GetterName string
	SetterName string
	Type       string // rendered Go type, pointer-qualified if nullable
	Nullable   bool
	Temporal   bool
	Table      string
	Column     string
	JSONKey    string
}

// DefaultSpec is the IR for one default-value assignment.
type DefaultSpec struct {
	SetterName string
	ValueExpr  string // Go expression passed to the setter
	UsesTime   bool   // the expression references the time package
}

// Accessor templates. The getter and setter signatures share Type so the
// pair stays exactly symmetric.
const accessorTemplate = `// {{.GetterName}} returns the value of the {{.Column}} column.
func (b *{{.BeanType}}) {{.GetterName}}() {{.Type}} {
	v, _ := b.Field("{{.Table}}", "{{.Column}}").({{.Type}})
	return v
}

// {{.SetterName}} sets the value of the {{.Column}} column.
func (b *{{.BeanType}}) {{.SetterName}}(v {{.Type}}) {
	b.SetField("{{.Table}}", "{{.Column}}", v)
}
`

const defaultAssignTemplate = `b.{{.SetterName}}({{.ValueExpr}})`

// Serialization templates. Temporal values render as RFC 3339 strings;
// nullable temporals guard against nil and write an explicit nil.
const serializeTemplate = `m.Set("{{.JSONKey}}", b.{{.GetterName}}())`

const serializeTimeTemplate = `m.Set("{{.JSONKey}}", b.{{.GetterName}}().Format(time.RFC3339))`

const serializeNullableTimeTemplate = `if v := b.{{.GetterName}}(); v != nil {
	m.Set("{{.JSONKey}}", v.Format(time.RFC3339))
} else {
	m.Set("{{.JSONKey}}", nil)
}`

var (
	accessorTmpl              = template.Must(template.New("accessor").Parse(accessorTemplate))
	defaultAssignTmpl         = template.Must(template.New("default").Parse(defaultAssignTemplate))
	serializeTmpl             = template.Must(template.New("serialize").Parse(serializeTemplate))
	serializeTimeTmpl         = template.Must(template.New("serializeTime").Parse(serializeTimeTemplate))
	serializeNullableTimeTmpl = template.Must(template.New("serializeNullableTime").Parse(serializeNullableTimeTemplate))
)

// AccessorSpec builds the IR for this column's accessors on the named
// bean type.
func (d *ScalarDescriptor) AccessorSpec(beanType string) (AccessorSpec, error) {
	ht, err := d.HostType()
	if err != nil {
		return AccessorSpec{}, err
	}
	names := d.Names()
	return AccessorSpec{
		BeanType:   beanType,
		GetterName: names.Getter,
		SetterName: names.Setter,
		Type:       ht.Render(d.Nullable()),
		Nullable:   d.Nullable(),
		Temporal:   ht.Kind == typemap.KindTime,
		Table:      d.table.Name,
		Column:     d.column.Name,
		JSONKey:    names.JSONKey,
	}, nil
}

// RenderAccessorPair renders the getter and setter for this column as
// methods on the named bean type. Both delegate to the bean runtime's
// field primitives with the column and table names baked in as literals.
func (d *ScalarDescriptor) RenderAccessorPair(beanType string) (string, error) {
	spec, err := d.AccessorSpec(beanType)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := accessorTmpl.Execute(&sb, spec); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// DefaultSpec builds the IR for this column's default assignment.
// Returns ErrNoDefault when the column carries no default.
func (d *ScalarDescriptor) DefaultSpec() (DefaultSpec, error) {
	if !d.HasDefault() {
		return DefaultSpec{}, fmt.Errorf("column %s.%s: %w", d.table.Name, d.column.Name, ErrNoDefault)
	}
	ht, err := d.HostType()
	if err != nil {
		return DefaultSpec{}, err
	}

	expr, err := d.defaultValueExpr(ht)
	if err != nil {
		return DefaultSpec{}, err
	}
	if d.Nullable() && !ht.Nilable() {
		expr = "bean.Ptr(" + expr + ")"
	}
	return DefaultSpec{
		SetterName: d.Names().Setter,
		ValueExpr:  expr,
		UsesTime:   isCurrentTimestamp(d.column.Default) || ht.Kind == typemap.KindTime,
	}, nil
}

// defaultValueExpr turns the column's default literal into a Go value
// expression for the bare (non-pointer) host type.
func (d *ScalarDescriptor) defaultValueExpr(ht typemap.HostType) (string, error) {
	literal := d.column.Default

	// CURRENT_TIMESTAMP is a server directive, not a representable
	// constant; construct the timestamp at assignment time instead.
	if isCurrentTimestamp(literal) {
		return "time.Now().UTC()", nil
	}

	value := normalizeDefault(literal)
	switch ht.Kind {
	case typemap.KindString:
		return strconv.Quote(value), nil
	case typemap.KindBytes:
		return "[]byte(" + strconv.Quote(value) + ")", nil
	case typemap.KindTime:
		// Fixed temporal literal, e.g. '2020-01-01 00:00:00'.
		return "bean.MustTime(" + strconv.Quote(value) + ")", nil
	case typemap.KindBool:
		switch strings.ToLower(value) {
		case "1", "true", "t", "yes", "on":
			return "true", nil
		default:
			return "false", nil
		}
	case typemap.KindInt:
		// Converted so the literal stays assignable when wrapped in
		// bean.Ptr, whose type argument would otherwise infer as int.
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return "", fmt.Errorf("column %s.%s: %w: %q is not an integer literal",
				d.table.Name, d.column.Name, ErrBadDefault, literal)
		}
		return fmt.Sprintf("%s(%d)", ht.Name, n), nil
	case typemap.KindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return "", fmt.Errorf("column %s.%s: %w: %q is not a numeric literal",
				d.table.Name, d.column.Name, ErrBadDefault, literal)
		}
		return fmt.Sprintf("%s(%s)", ht.Name, strconv.FormatFloat(f, 'g', -1, 64)), nil
	default:
		return value, nil
	}
}

// Render renders the default-assignment statement for this spec.
func (s DefaultSpec) Render() (string, error) {
	var sb strings.Builder
	if err := defaultAssignTmpl.Execute(&sb, s); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderDefaultAssignment renders the constructor statement applying the
// column's default value through its setter.
func (d *ScalarDescriptor) RenderDefaultAssignment() (string, error) {
	spec, err := d.DefaultSpec()
	if err != nil {
		return "", err
	}
	return spec.Render()
}

// RenderSerializationFragment renders the statement writing this
// property into an ordered string-keyed map under its JSON key.
func (d *ScalarDescriptor) RenderSerializationFragment(beanType string) (string, error) {
	spec, err := d.AccessorSpec(beanType)
	if err != nil {
		return "", err
	}

	tmpl := serializeTmpl
	if spec.Temporal {
		if spec.Nullable {
			tmpl = serializeNullableTimeTmpl
		} else {
			tmpl = serializeTimeTmpl
		}
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, spec); err != nil {
		return "", err
	}
	return sb.String(), nil
}
