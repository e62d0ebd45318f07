package variant

import (
	"fmt"
	"strconv"
	"strings"
)

// Variant is one immutable instance of a union: a kind plus its payload.
// Variants have value semantics: the payload is normalized at construction
// and never mutated, so copying a Variant copies everything that matters.
type Variant struct {
	kind   *Kind
	fields []any
}

// Construct builds a Variant of the named kind, validating the payload
// against the kind's declared shape.
func (u *Union) Construct(kind string, fieldValues ...any) (Variant, error) {
	k, err := u.Kind(kind)
	if err != nil {
		return Variant{}, err
	}
	return k.Construct(fieldValues...)
}

// Construct builds a Variant of this kind from the given payload values.
//
// Accepted leaf representations: int or int64 for Int, float64 for Float,
// string for String, bool for Bool, and a Variant of the referenced union
// for Self/Ref fields. Integers are normalized to int64.
func (k *Kind) Construct(fieldValues ...any) (Variant, error) {
	if len(fieldValues) != len(k.fields) {
		return Variant{}, &ShapeMismatchError{
			Union: k.union.name,
			Kind:  k.name,
			Reason: fmt.Sprintf("wrong payload arity: want %d field(s), got %d",
				len(k.fields), len(fieldValues)),
		}
	}

	var payload []any
	if len(fieldValues) > 0 {
		payload = make([]any, len(fieldValues))
	}
	for i, f := range k.fields {
		v, err := normalizeField(k, f, fieldValues[i])
		if err != nil {
			return Variant{}, err
		}
		payload[i] = v
	}

	return Variant{kind: k, fields: payload}, nil
}

// normalizeField checks one payload value against its declared field type and
// returns the canonical representation.
func normalizeField(k *Kind, f FieldSpec, value any) (any, error) {
	mismatch := func(got string) error {
		return &ShapeMismatchError{
			Union:  k.union.name,
			Kind:   k.name,
			Reason: fmt.Sprintf("field %s: want %s, got %s", f.Name, f.Type, got),
		}
	}

	switch t := f.Type.(type) {
	case ScalarType:
		switch t.Name {
		case Int.Name:
			switch v := value.(type) {
			case int:
				return int64(v), nil
			case int64:
				return v, nil
			}
		case Float.Name:
			if v, ok := value.(float64); ok {
				return v, nil
			}
		case String.Name:
			if v, ok := value.(string); ok {
				return v, nil
			}
		case Bool.Name:
			if v, ok := value.(bool); ok {
				return v, nil
			}
		}
		return nil, mismatch(describeValue(value))

	case SelfType:
		v, ok := value.(Variant)
		if !ok || v.kind == nil {
			return nil, mismatch(describeValue(value))
		}
		if v.kind.union != k.union {
			return nil, mismatch("variant of union " + v.kind.union.name)
		}
		return v, nil

	case UnionRefType:
		v, ok := value.(Variant)
		if !ok || v.kind == nil {
			return nil, mismatch(describeValue(value))
		}
		if v.kind.union.name != t.Name {
			return nil, mismatch("variant of union " + v.kind.union.name)
		}
		return v, nil
	}

	return nil, mismatch(describeValue(value))
}

func describeValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case Variant:
		if v.kind == nil {
			return "zero variant"
		}
		return "variant of union " + v.kind.union.name
	default:
		return fmt.Sprintf("%T", value)
	}
}

// IsZero reports whether v is the zero Variant (no kind, no payload).
func (v Variant) IsZero() bool { return v.kind == nil }

// Kind returns the variant's kind. Nil for the zero Variant.
func (v Variant) Kind() *Kind { return v.kind }

// KindName returns the variant's kind name, or "" for the zero Variant.
func (v Variant) KindName() string {
	if v.kind == nil {
		return ""
	}
	return v.kind.name
}

// Union returns the union the variant belongs to. Nil for the zero Variant.
func (v Variant) Union() *Union {
	if v.kind == nil {
		return nil
	}
	return v.kind.union
}

// Fields returns a copy of the payload in declaration order.
func (v Variant) Fields() []any {
	return append([]any(nil), v.fields...)
}

// Field returns the payload value stored under the given field name.
func (v Variant) Field(name string) (any, error) {
	if v.kind == nil {
		return nil, fmt.Errorf("zero variant has no fields")
	}
	for i, f := range v.kind.fields {
		if f.Name == name {
			return v.fields[i], nil
		}
	}
	return nil, &ShapeMismatchError{
		Union:  v.kind.union.name,
		Kind:   v.kind.name,
		Reason: fmt.Sprintf("no field named %s", name),
	}
}

// String renders the variant as KindName or KindName(field, ...).
func (v Variant) String() string {
	if v.kind == nil {
		return "<zero variant>"
	}
	if len(v.fields) == 0 {
		return v.kind.name
	}
	var sb strings.Builder
	sb.WriteString(v.kind.name)
	sb.WriteByte('(')
	for i, f := range v.fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		switch fv := f.(type) {
		case string:
			sb.WriteString(strconv.Quote(fv))
		case Variant:
			sb.WriteString(fv.String())
		default:
			fmt.Fprintf(&sb, "%v", fv)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// Slot is a single mutable cell holding one Variant, modeling self-replacing
// transitions ("become the other case"). The slot applies construct-level
// validation on every Set but holds no lock: a slot shared between
// goroutines needs the application's own mutual exclusion.
type Slot struct {
	union *Union
	value Variant
}

// NewSlot creates a slot bound to initial's union, holding initial.
func NewSlot(initial Variant) (*Slot, error) {
	if initial.IsZero() {
		return nil, fmt.Errorf("slot requires a non-zero initial variant")
	}
	return &Slot{union: initial.Union(), value: initial}, nil
}

// Get returns the variant currently held.
func (s *Slot) Get() Variant { return s.value }

// Set replaces the slot's kind and payload as one logical step. It succeeds
// exactly when Construct would; on failure the slot is unchanged.
func (s *Slot) Set(kind string, fieldValues ...any) error {
	v, err := s.union.Construct(kind, fieldValues...)
	if err != nil {
		return err
	}
	s.value = v
	return nil
}
