// Package schema loads declarative union definitions from YAML.
//
// A schema file declares one or more unions and is applied to a
// variant.Registry at startup. Applying runs the ordinary Define path, so
// every definition-time check (duplicate kinds, missing base cases, raw
// mapping consistency) fires exactly as it would for unions defined in code.
//
// Example:
//
//	unions:
//	  - name: Trade
//	    kinds:
//	      - name: Buy
//	        fields:
//	          - {name: stock, type: String}
//	          - {name: amount, type: Int}
//	      - name: Sell
//	        fields:
//	          - {name: stock, type: String}
//	          - {name: amount, type: Int}
//	  - name: Suit
//	    raw: string
//	    kinds:
//	      - {name: Hearts, raw: hearts}
//	      - {name: Spades, raw: spades}
package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/variant/pkg/variant"
)

// File is the top-level schema document.
type File struct {
	// Unions lists the union declarations in definition order. Order
	// matters: a union may reference any union declared before it (or
	// itself, for recursion).
	Unions []UnionDecl `yaml:"unions"`
}

// UnionDecl declares one closed union type.
type UnionDecl struct {
	// Name is the union's registry name. Required.
	Name string `yaml:"name"`

	// Raw declares a raw-value mapping for the union's unit kinds.
	// One of "int", "float", "string". Empty means no mapping.
	Raw string `yaml:"raw,omitempty"`

	// AutoRaw assigns ordinal integer raw values to unit kinds that omit
	// an explicit one, continuing from the last explicit value. Implies
	// an integer raw mapping; mutually exclusive with raw: float/string.
	AutoRaw bool `yaml:"auto_raw,omitempty"`

	// Kinds lists the union's kinds. Required, at least one.
	Kinds []KindDecl `yaml:"kinds"`
}

// KindDecl declares one kind of a union.
type KindDecl struct {
	// Name is the kind name, unique within the union. Required.
	Name string `yaml:"name"`

	// Fields is the payload shape. Empty declares a unit kind.
	Fields []FieldDecl `yaml:"fields,omitempty"`

	// Raw is the kind's raw value literal. Only allowed on unit kinds of
	// unions with a raw mapping; its YAML type must match the mapping.
	Raw *yaml.Node `yaml:"raw,omitempty"`
}

// FieldDecl declares one payload field.
type FieldDecl struct {
	// Name is the field name, unique within the kind. Required.
	Name string `yaml:"name"`

	// Type is the field type: Int, Float, String, Bool, Self, or the
	// name of a union declared earlier in the registry. Required.
	Type string `yaml:"type"`
}

// Parse reads a schema document from raw YAML. The path is used only to
// qualify error messages.
func Parse(data []byte, path string) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := f.validate(path); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses a schema file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	return Parse(data, path)
}

// validate checks the document shape. Anything the registry itself verifies
// (duplicate names, base cases, raw consistency) is left to Apply.
func (f *File) validate(path string) error {
	if len(f.Unions) == 0 {
		return fmt.Errorf("%s: schema declares no unions", path)
	}
	for i, u := range f.Unions {
		if u.Name == "" {
			return fmt.Errorf("%s: union %d has no name", path, i)
		}
		switch u.Raw {
		case "", "int", "float", "string":
		default:
			return fmt.Errorf("%s: union %s: raw must be int, float or string, got %q", path, u.Name, u.Raw)
		}
		if u.AutoRaw && u.Raw != "" && u.Raw != "int" {
			return fmt.Errorf("%s: union %s: auto_raw requires an integer raw mapping", path, u.Name)
		}
		if len(u.Kinds) == 0 {
			return fmt.Errorf("%s: union %s declares no kinds", path, u.Name)
		}
		for _, k := range u.Kinds {
			if k.Name == "" {
				return fmt.Errorf("%s: union %s: kind with no name", path, u.Name)
			}
			for _, fd := range k.Fields {
				if fd.Name == "" {
					return fmt.Errorf("%s: union %s: kind %s: field with no name", path, u.Name, k.Name)
				}
				if fd.Type == "" {
					return fmt.Errorf("%s: union %s: kind %s: field %s has no type", path, u.Name, k.Name, fd.Name)
				}
			}
		}
	}
	return nil
}

// Apply defines every union of the document in the registry, in declaration
// order. Returns the defined unions; on the first failure the remaining
// declarations are skipped and already-defined unions stay registered.
func (f *File) Apply(reg *variant.Registry) ([]*variant.Union, error) {
	var defined []*variant.Union
	for _, decl := range f.Unions {
		u, err := applyUnion(reg, decl)
		if err != nil {
			return defined, err
		}
		defined = append(defined, u)
	}
	return defined, nil
}

func applyUnion(reg *variant.Registry, decl UnionDecl) (*variant.Union, error) {
	var opts []variant.DefineOption
	scalar := variant.RawInt
	switch {
	case decl.AutoRaw:
		opts = append(opts, variant.WithAutoRaw())
	case decl.Raw != "":
		switch decl.Raw {
		case "int":
			scalar = variant.RawInt
		case "float":
			scalar = variant.RawFloat
		case "string":
			scalar = variant.RawString
		}
		opts = append(opts, variant.WithRawKind(scalar))
	}

	kinds := make([]variant.KindSpec, 0, len(decl.Kinds))
	for _, k := range decl.Kinds {
		spec := variant.KindSpec{Name: k.Name}
		for _, fd := range k.Fields {
			spec.Fields = append(spec.Fields, variant.FieldSpec{
				Name: fd.Name,
				Type: fieldType(fd.Type),
			})
		}
		if k.Raw != nil {
			raw, err := decodeRaw(k.Raw, scalar)
			if err != nil {
				return nil, fmt.Errorf("union %s: kind %s: %w", decl.Name, k.Name, err)
			}
			spec.Raw = &raw
		}
		kinds = append(kinds, spec)
	}

	return reg.Define(decl.Name, kinds, opts...)
}

// fieldType resolves a schema type name. Unknown names become union
// references, so the registry reports them as UnknownUnion if they match
// nothing defined earlier.
func fieldType(name string) variant.FieldType {
	if t, ok := variant.ScalarTypeByName(name); ok {
		return t
	}
	if name == "Self" {
		return variant.Self()
	}
	return variant.Ref(name)
}

func decodeRaw(node *yaml.Node, scalar variant.RawScalar) (variant.Raw, error) {
	switch scalar {
	case variant.RawInt:
		var v int64
		if err := node.Decode(&v); err != nil {
			return variant.Raw{}, fmt.Errorf("raw value is not an integer: %w", err)
		}
		return variant.IntRaw(v), nil
	case variant.RawFloat:
		var v float64
		if err := node.Decode(&v); err != nil {
			return variant.Raw{}, fmt.Errorf("raw value is not a float: %w", err)
		}
		return variant.FloatRaw(v), nil
	default:
		var v string
		if err := node.Decode(&v); err != nil {
			return variant.Raw{}, fmt.Errorf("raw value is not a string: %w", err)
		}
		return variant.StringRaw(v), nil
	}
}
