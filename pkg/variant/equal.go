package variant

// LeafComparer decides equality of two payload values of one scalar type.
// Both values are already normalized (int64, float64, string, bool).
type LeafComparer func(t ScalarType, a, b any) bool

// DefaultLeaves compares scalar leaves with Go equality. Note that this makes
// Float comparison exact; callers needing tolerance supply their own comparer.
func DefaultLeaves(t ScalarType, a, b any) bool {
	return a == b
}

// Equivalence is an explicit equality relation over one union's variants.
// The engine supplies the recursive traversal; the caller supplies only the
// leaf comparisons. No implicit structural equality exists: comparing
// variants requires constructing an Equivalence first.
type Equivalence struct {
	union *Union
	leaf  LeafComparer
}

// NewEquivalence defines equality for the union's variants. A nil leaf
// comparer falls back to DefaultLeaves.
func (u *Union) NewEquivalence(leaf LeafComparer) *Equivalence {
	if leaf == nil {
		leaf = DefaultLeaves
	}
	return &Equivalence{union: u, leaf: leaf}
}

// Equal reports whether a and b share the same kind and every payload field
// compares equal pairwise. Nested variants recurse with the same leaf
// comparer, following whichever union the nested field belongs to. Variants
// of different kinds, or outside this equivalence's union, are never equal.
func (e *Equivalence) Equal(a, b Variant) bool {
	if a.kind == nil || b.kind == nil {
		return false
	}
	if a.kind.union != e.union || b.kind.union != e.union {
		return false
	}
	return e.variantsEqual(a, b)
}

func (e *Equivalence) variantsEqual(a, b Variant) bool {
	if a.kind != b.kind {
		return false
	}
	for i, f := range a.kind.fields {
		switch t := f.Type.(type) {
		case ScalarType:
			if !e.leaf(t, a.fields[i], b.fields[i]) {
				return false
			}
		default:
			// Self and Ref fields hold variants; construction guarantees it.
			av := a.fields[i].(Variant)
			bv := b.fields[i].(Variant)
			if !e.variantsEqual(av, bv) {
				return false
			}
		}
	}
	return true
}
