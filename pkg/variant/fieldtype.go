package variant

// FieldType is the interface for payload field types.
type FieldType interface {
	String() string

	// fieldType restricts implementations to this package. The set of
	// payload field types is closed just like the unions built from them.
	fieldType()
}

// ScalarType represents a leaf payload type (Int, Float, String, Bool).
type ScalarType struct {
	Name string
}

func (t ScalarType) String() string { return t.Name }
func (t ScalarType) fieldType()     {}

// Leaf payload types.
var (
	Int    = ScalarType{Name: "Int"}
	Float  = ScalarType{Name: "Float"}
	String = ScalarType{Name: "String"}
	Bool   = ScalarType{Name: "Bool"}
)

// SelfType marks a field holding a value of the union under definition.
type SelfType struct{}

func (t SelfType) String() string { return "Self" }
func (t SelfType) fieldType()     {}

// Self returns the field type for a recursive reference to the enclosing union.
func Self() FieldType { return SelfType{} }

// UnionRefType marks a field holding a value of another (or the same) union,
// named rather than inlined so definitions stay finite.
type UnionRefType struct {
	Name string
}

func (t UnionRefType) String() string { return t.Name }
func (t UnionRefType) fieldType()     {}

// Ref returns the field type for a value of the named union. The union must
// already be defined in the registry when the referring union is defined,
// except when it names the union under definition (equivalent to Self).
func Ref(name string) FieldType { return UnionRefType{Name: name} }

// ScalarTypeByName resolves a scalar type name (Int, Float, String, Bool).
func ScalarTypeByName(name string) (ScalarType, bool) {
	switch name {
	case Int.Name:
		return Int, true
	case Float.Name:
		return Float, true
	case String.Name:
		return String, true
	case Bool.Name:
		return Bool, true
	}
	return ScalarType{}, false
}
