package variant

import (
	"strings"

	"github.com/google/uuid"
)

// Union is one closed, immutable union type. All fields are fixed at Define
// time; every method is safe for unsynchronized concurrent use.
type Union struct {
	name     string
	registry *Registry
	kinds    []*Kind
	byName   map[string]*Kind

	hasRaw    bool
	rawScalar RawScalar
	byRaw     map[Raw]*Kind
}

// Name returns the union's registered name.
func (u *Union) Name() string { return u.name }

// Kinds lists the union's kinds in declaration order.
func (u *Union) Kinds() []*Kind {
	return append([]*Kind(nil), u.kinds...)
}

// Kind resolves a kind by name.
func (u *Union) Kind(name string) (*Kind, error) {
	k, ok := u.byName[name]
	if !ok {
		return nil, &UnknownKindError{Union: u.name, Kind: name}
	}
	return k, nil
}

// HasRawMapping reports whether the union declared a raw-value mapping.
func (u *Union) HasRawMapping() bool { return u.hasRaw }

// RawScalarType returns the scalar type of the union's raw mapping. Valid
// only when HasRawMapping reports true.
func (u *Union) RawScalarType() RawScalar { return u.rawScalar }

// FromRaw decodes a raw scalar back to the unit kind it encodes.
func (u *Union) FromRaw(raw Raw) (*Kind, error) {
	if !u.hasRaw {
		return nil, &NoRawValueMappingError{Union: u.name}
	}
	k, ok := u.byRaw[raw]
	if !ok {
		return nil, &UnknownRawValueError{Union: u.name, Raw: raw}
	}
	return k, nil
}

// Fingerprint returns a deterministic UUID derived from the union's complete
// shape: its name, kind order, field names and types, and raw mapping. Two
// processes that defined the same union get the same fingerprint; any change
// to the shape changes it.
func (u *Union) Fingerprint() uuid.UUID {
	var sb strings.Builder
	sb.WriteString("union ")
	sb.WriteString(u.name)
	if u.hasRaw {
		sb.WriteString(" raw=")
		sb.WriteString(u.rawScalar.String())
	}
	for _, k := range u.kinds {
		sb.WriteString(";")
		sb.WriteString(k.name)
		if k.raw != nil {
			sb.WriteString("=")
			sb.WriteString(k.raw.String())
		}
		for _, f := range k.fields {
			sb.WriteString(",")
			sb.WriteString(f.Name)
			sb.WriteString(":")
			sb.WriteString(f.Type.String())
		}
	}
	return fingerprint(sb.String())
}

// Kind is one declared case of a union.
type Kind struct {
	union  *Union
	name   string
	index  int
	fields []FieldSpec
	raw    *Raw
}

// Name returns the kind's declared name.
func (k *Kind) Name() string { return k.name }

// Union returns the union the kind belongs to.
func (k *Kind) Union() *Union { return k.union }

// Index returns the kind's position in the union's declaration order.
func (k *Kind) Index() int { return k.index }

// Fields returns the kind's declared payload shape.
func (k *Kind) Fields() []FieldSpec {
	return append([]FieldSpec(nil), k.fields...)
}

// IsUnit reports whether the kind carries no payload.
func (k *Kind) IsUnit() bool { return len(k.fields) == 0 }

// Raw returns the kind's raw value.
func (k *Kind) Raw() (Raw, error) {
	if !k.union.hasRaw {
		return Raw{}, &NoRawValueMappingError{Union: k.union.name}
	}
	if k.raw == nil {
		return Raw{}, &NoRawValueMappingError{Union: k.union.name, Kind: k.name}
	}
	return *k.raw, nil
}
