package variant

import (
	"fmt"
	"strings"
)

// DuplicateUnionError indicates a union name was defined twice in one registry.
type DuplicateUnionError struct {
	Union string
}

func (e *DuplicateUnionError) Error() string {
	return fmt.Sprintf("union already defined: %s", e.Union)
}

// UnknownUnionError indicates a lookup for a union name the registry does not hold.
type UnknownUnionError struct {
	Union string
}

func (e *UnknownUnionError) Error() string {
	return fmt.Sprintf("unknown union: %s", e.Union)
}

// DuplicateKindError indicates two kinds in one union declaration share a name.
type DuplicateKindError struct {
	Union string
	Kind  string
}

func (e *DuplicateKindError) Error() string {
	return fmt.Sprintf("union %s: duplicate kind %s", e.Union, e.Kind)
}

// UnknownKindError indicates a reference to a kind name not in the union.
type UnknownKindError struct {
	Union string
	Kind  string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("union %s: unknown kind %s", e.Union, e.Kind)
}

// ShapeMismatchError indicates a payload whose arity or field types disagree
// with the kind's declared shape.
type ShapeMismatchError struct {
	Union  string
	Kind   string
	Reason string
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("union %s: kind %s: %s", e.Union, e.Kind, e.Reason)
}

// NonExhaustiveMatchError indicates a handler set that omits kinds and
// supplies no default. Missing lists the uncovered kinds in declaration order.
type NonExhaustiveMatchError struct {
	Union   string
	Missing []string
}

func (e *NonExhaustiveMatchError) Error() string {
	return fmt.Sprintf("union %s: non-exhaustive match, missing kinds: %s",
		e.Union, strings.Join(e.Missing, ", "))
}

// UnknownRawValueError indicates a raw scalar that maps to no kind in the union.
type UnknownRawValueError struct {
	Union string
	Raw   Raw
}

func (e *UnknownRawValueError) Error() string {
	return fmt.Sprintf("union %s: no kind with raw value %s", e.Union, e.Raw)
}

// NoRawValueMappingError indicates a raw-value operation on a union (or kind)
// that declared no raw mapping.
type NoRawValueMappingError struct {
	Union string
	Kind  string // empty for union-level operations
}

func (e *NoRawValueMappingError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("union %s: kind %s has no raw value", e.Union, e.Kind)
	}
	return fmt.Sprintf("union %s: no raw value mapping declared", e.Union)
}

// NoBaseCaseError indicates a recursive union in which every kind references
// the union itself, so no finite value could ever be constructed.
type NoBaseCaseError struct {
	Union string
}

func (e *NoBaseCaseError) Error() string {
	return fmt.Sprintf("union %s: recursive union has no base-case kind", e.Union)
}

// DefinitionError indicates a malformed union declaration that matches no more
// specific failure: an empty kind set, a bad field type, a raw literal on a
// kind with fields, a raw literal of the wrong scalar type, or two kinds
// sharing one raw value.
type DefinitionError struct {
	Union  string
	Reason string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("union %s: %s", e.Union, e.Reason)
}
