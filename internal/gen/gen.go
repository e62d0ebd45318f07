// Package gen renders Go source code for defined unions.
//
// The output is the ecosystem shape for discriminated unions: a sealed
// interface per union, one struct per kind, and a match function with one
// handler parameter per kind so the Go compiler enforces exhaustiveness in
// generated call sites. Unions with a raw mapping additionally get RawValue
// methods and a FromRaw decoder.
package gen

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/sirkon/gotify"
	"golang.org/x/tools/imports"

	"github.com/funvibe/variant/pkg/variant"
)

// Generator produces Go source for union definitions.
type Generator struct {
	pkg      string
	gotifier *gotify.Gotify
}

// New creates a generator emitting code into the given package name.
func New(pkg string) *Generator {
	return &Generator{pkg: pkg, gotifier: gotify.New(nil)}
}

// Generate renders one Go source file covering all given unions, formatted
// and with imports fixed.
func (g *Generator) Generate(unions []*variant.Union) ([]byte, error) {
	models := make([]unionModel, 0, len(unions))
	for _, u := range unions {
		m, err := g.buildModel(u)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, fileModel{Package: g.pkg, Unions: models}); err != nil {
		return nil, fmt.Errorf("rendering: %w", err)
	}

	src, err := imports.Process("variants.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return src, nil
}

type fileModel struct {
	Package string
	Unions  []unionModel
}

type unionModel struct {
	Name      string // Go name of the sealed interface
	UnionName string // name as registered
	Kinds     []kindModel
	HasRaw    bool
	RawGoType string
}

type kindModel struct {
	KindName string // name as declared
	TypeName string // Go name of the kind struct
	Param    string // handler parameter name in the match function
	Fields   []fieldModel
	HasRaw   bool
	RawLit   string // Go literal of the raw value
}

type fieldModel struct {
	Name   string
	GoType string
}

func (g *Generator) buildModel(u *variant.Union) (unionModel, error) {
	name := g.gotifier.Public(u.Name())
	m := unionModel{
		Name:      name,
		UnionName: u.Name(),
		HasRaw:    u.HasRawMapping(),
	}
	if m.HasRaw {
		switch u.RawScalarType() {
		case variant.RawInt:
			m.RawGoType = "int64"
		case variant.RawFloat:
			m.RawGoType = "float64"
		case variant.RawString:
			m.RawGoType = "string"
		}
	}

	for _, k := range u.Kinds() {
		km := kindModel{
			KindName: k.Name(),
			TypeName: name + g.gotifier.Public(k.Name()),
			Param:    "on" + g.gotifier.Public(k.Name()),
		}
		for _, f := range k.Fields() {
			goType, err := g.goType(u, f.Type)
			if err != nil {
				return unionModel{}, fmt.Errorf("union %s: kind %s: field %s: %w", u.Name(), k.Name(), f.Name, err)
			}
			km.Fields = append(km.Fields, fieldModel{
				Name:   g.gotifier.Public(f.Name),
				GoType: goType,
			})
		}
		if raw, err := k.Raw(); err == nil {
			km.HasRaw = true
			km.RawLit = rawLiteral(raw)
		}
		m.Kinds = append(m.Kinds, km)
	}
	return m, nil
}

// goType maps a payload field type to the generated Go type. Union-typed
// fields become the sealed interface, which also provides the indirection
// recursive payloads need.
func (g *Generator) goType(u *variant.Union, ft variant.FieldType) (string, error) {
	switch t := ft.(type) {
	case variant.ScalarType:
		switch t {
		case variant.Int:
			return "int64", nil
		case variant.Float:
			return "float64", nil
		case variant.String:
			return "string", nil
		case variant.Bool:
			return "bool", nil
		}
	case variant.SelfType:
		return g.gotifier.Public(u.Name()), nil
	case variant.UnionRefType:
		return g.gotifier.Public(t.Name), nil
	}
	return "", fmt.Errorf("unsupported field type %s", ft)
}

func rawLiteral(raw variant.Raw) string {
	switch raw.Scalar() {
	case variant.RawInt:
		return strconv.FormatInt(raw.Int(), 10)
	case variant.RawFloat:
		return strconv.FormatFloat(raw.Float(), 'g', -1, 64)
	default:
		return strconv.Quote(raw.Text())
	}
}
