// Package variant implements a tagged-union modeling and matching engine.
//
// A Registry holds closed union types, each a fixed ordered set of named
// kinds. A kind carries zero or more typed payload fields; a kind with no
// fields is a unit kind and may map to a primitive raw value. Instances are
// built with Construct, dispatched with a compiled Matcher, and compared with
// an Equivalence that the caller seeds with leaf equality.
//
// The package handles:
//   - Defining closed unions, including recursive ones (Self/Ref field types)
//   - Constructing immutable Variant instances with shape validation
//   - Exhaustiveness-checked dispatch, verified once at Compile time
//   - Structural equality with caller-supplied leaf comparisons
//   - Raw-value encode/decode for unit kinds
//
// Definitions are write-once: after a successful Define the union is never
// mutated, so concurrent reads need no locking. Define itself is expected to
// run during startup, before the registry is shared.
package variant

import (
	"fmt"

	"github.com/google/uuid"
)

// FieldSpec names and types one payload field of a kind.
type FieldSpec struct {
	Name string
	Type FieldType
}

// KindSpec declares one kind of a union.
type KindSpec struct {
	Name string

	// Fields is the payload shape. Empty (or nil) declares a unit kind.
	Fields []FieldSpec

	// Raw is the optional raw value for a unit kind. Only meaningful for
	// unions defined with a raw mapping, and rejected on kinds with fields.
	Raw *Raw
}

// Registry is a write-once collection of union definitions.
type Registry struct {
	unions map[string]*Union
	order  []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{unions: make(map[string]*Union)}
}

type defineConfig struct {
	hasRaw    bool
	rawScalar RawScalar
	autoRaw   bool
}

// DefineOption adjusts a single Define call.
type DefineOption func(*defineConfig)

// WithRawKind declares that the union maps its unit kinds to raw values of
// the given scalar type.
func WithRawKind(scalar RawScalar) DefineOption {
	return func(c *defineConfig) {
		c.hasRaw = true
		c.rawScalar = scalar
	}
}

// WithAutoRaw declares an integer raw mapping in which unit kinds without an
// explicit raw value receive the previous value plus one, starting from zero.
func WithAutoRaw() DefineOption {
	return func(c *defineConfig) {
		c.hasRaw = true
		c.rawScalar = RawInt
		c.autoRaw = true
	}
}

// Define registers a closed union type. The kind order is preserved and
// becomes part of the union's identity. On any error the registry is left
// unchanged; no partially-defined union is ever visible.
func (r *Registry) Define(name string, kinds []KindSpec, opts ...DefineOption) (*Union, error) {
	if name == "" {
		return nil, &DefinitionError{Union: name, Reason: "union name must not be empty"}
	}
	if _, ok := r.unions[name]; ok {
		return nil, &DuplicateUnionError{Union: name}
	}
	if len(kinds) == 0 {
		return nil, &DefinitionError{Union: name, Reason: "union must declare at least one kind"}
	}

	var cfg defineConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	u := &Union{
		name:      name,
		registry:  r,
		byName:    make(map[string]*Kind, len(kinds)),
		hasRaw:    cfg.hasRaw,
		rawScalar: cfg.rawScalar,
	}
	if cfg.hasRaw {
		u.byRaw = make(map[Raw]*Kind, len(kinds))
	}

	nextAuto := int64(0)
	hasBaseCase := false

	for i, spec := range kinds {
		if spec.Name == "" {
			return nil, &DefinitionError{Union: name, Reason: fmt.Sprintf("kind %d has no name", i)}
		}
		if _, ok := u.byName[spec.Name]; ok {
			return nil, &DuplicateKindError{Union: name, Kind: spec.Name}
		}

		k := &Kind{
			union:  u,
			name:   spec.Name,
			index:  i,
			fields: append([]FieldSpec(nil), spec.Fields...),
		}

		recursive, err := r.validateFields(name, spec)
		if err != nil {
			return nil, err
		}
		if !recursive {
			hasBaseCase = true
		}

		if err := assignRaw(u, k, spec, &cfg, &nextAuto); err != nil {
			return nil, err
		}

		u.kinds = append(u.kinds, k)
		u.byName[spec.Name] = k
	}

	if !hasBaseCase {
		return nil, &NoBaseCaseError{Union: name}
	}

	r.unions[name] = u
	r.order = append(r.order, name)
	return u, nil
}

// validateFields checks one kind's field list and reports whether the kind
// references its own union (directly or via Ref to the same name).
func (r *Registry) validateFields(unionName string, spec KindSpec) (recursive bool, err error) {
	seen := make(map[string]bool, len(spec.Fields))
	for _, f := range spec.Fields {
		if f.Name == "" {
			return false, &DefinitionError{
				Union:  unionName,
				Reason: fmt.Sprintf("kind %s: field with no name", spec.Name),
			}
		}
		if seen[f.Name] {
			return false, &DefinitionError{
				Union:  unionName,
				Reason: fmt.Sprintf("kind %s: duplicate field %s", spec.Name, f.Name),
			}
		}
		seen[f.Name] = true

		switch t := f.Type.(type) {
		case ScalarType:
			if _, ok := ScalarTypeByName(t.Name); !ok {
				return false, &DefinitionError{
					Union:  unionName,
					Reason: fmt.Sprintf("kind %s: field %s: unknown scalar type %s", spec.Name, f.Name, t.Name),
				}
			}
		case SelfType:
			recursive = true
		case UnionRefType:
			if t.Name == unionName {
				recursive = true
				break
			}
			// Cross-union references must already be defined; they are
			// well-founded by induction over definition order.
			if _, ok := r.unions[t.Name]; !ok {
				return false, &UnknownUnionError{Union: t.Name}
			}
		case nil:
			return false, &DefinitionError{
				Union:  unionName,
				Reason: fmt.Sprintf("kind %s: field %s has no type", spec.Name, f.Name),
			}
		default:
			return false, &DefinitionError{
				Union:  unionName,
				Reason: fmt.Sprintf("kind %s: field %s: unsupported field type %s", spec.Name, f.Name, f.Type),
			}
		}
	}
	return recursive, nil
}

// assignRaw validates and records the raw value of one kind, honoring the
// auto-increment mode for unit kinds without an explicit value.
func assignRaw(u *Union, k *Kind, spec KindSpec, cfg *defineConfig, nextAuto *int64) error {
	if !cfg.hasRaw {
		if spec.Raw != nil {
			return &DefinitionError{
				Union:  u.name,
				Reason: fmt.Sprintf("kind %s declares a raw value but the union has no raw mapping", spec.Name),
			}
		}
		return nil
	}

	var raw Raw
	switch {
	case spec.Raw != nil:
		if len(spec.Fields) > 0 {
			return &DefinitionError{
				Union:  u.name,
				Reason: fmt.Sprintf("kind %s: raw values are only allowed on unit kinds", spec.Name),
			}
		}
		if spec.Raw.Scalar() != cfg.rawScalar {
			return &DefinitionError{
				Union: u.name,
				Reason: fmt.Sprintf("kind %s: raw value %s is %s, union raw type is %s",
					spec.Name, *spec.Raw, spec.Raw.Scalar(), cfg.rawScalar),
			}
		}
		raw = *spec.Raw
	case cfg.autoRaw && len(spec.Fields) == 0:
		raw = IntRaw(*nextAuto)
	default:
		// Fielded kinds (and, without auto mode, unmarked unit kinds)
		// simply carry no raw value.
		return nil
	}

	if prev, ok := u.byRaw[raw]; ok {
		return &DefinitionError{
			Union:  u.name,
			Reason: fmt.Sprintf("kinds %s and %s share raw value %s", prev.name, spec.Name, raw),
		}
	}
	if raw.Scalar() == RawInt {
		*nextAuto = raw.Int() + 1
	}
	k.raw = &raw
	u.byRaw[raw] = k
	return nil
}

// Lookup returns the union registered under name.
func (r *Registry) Lookup(name string) (*Union, error) {
	u, ok := r.unions[name]
	if !ok {
		return nil, &UnknownUnionError{Union: name}
	}
	return u, nil
}

// Unions lists the registered union names in definition order.
func (r *Registry) Unions() []string {
	return append([]string(nil), r.order...)
}

// fingerprintSpace namespaces union fingerprints so they never collide with
// other UUIDv5 domains an application might use.
var fingerprintSpace = uuid.MustParse("8f3c1d52-9b41-5a0e-b7c6-2d85a1f0e943")

func fingerprint(signature string) uuid.UUID {
	return uuid.NewSHA1(fingerprintSpace, []byte(signature))
}
