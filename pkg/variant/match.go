package variant

// Handler consumes a matched variant and produces the match result.
type Handler[R any] func(v Variant) R

// MatchBuilder collects per-kind handlers for one union. Compile verifies
// exhaustiveness once; the resulting Matcher dispatches without re-checking.
type MatchBuilder[R any] struct {
	union    *Union
	handlers map[string]Handler[R]
	fallback Handler[R]
	err      error
}

// NewMatchBuilder starts a handler set for the given union.
func NewMatchBuilder[R any](u *Union) *MatchBuilder[R] {
	return &MatchBuilder[R]{
		union:    u,
		handlers: make(map[string]Handler[R]),
	}
}

// Case registers the handler for one kind. Registering an unknown kind, or
// the same kind twice, is recorded and surfaced by Compile.
func (b *MatchBuilder[R]) Case(kind string, h Handler[R]) *MatchBuilder[R] {
	if b.err != nil {
		return b
	}
	if _, ok := b.union.byName[kind]; !ok {
		b.err = &UnknownKindError{Union: b.union.name, Kind: kind}
		return b
	}
	if _, ok := b.handlers[kind]; ok {
		b.err = &DuplicateKindError{Union: b.union.name, Kind: kind}
		return b
	}
	b.handlers[kind] = h
	return b
}

// Default registers the wildcard handler, satisfying exhaustiveness for every
// kind not explicitly covered.
func (b *MatchBuilder[R]) Default(h Handler[R]) *MatchBuilder[R] {
	b.fallback = h
	return b
}

// Compile verifies the handler set covers every kind of the union and builds
// the dispatch table. The exhaustiveness check is a set difference between
// the union's kinds and the registered handlers; the remainder is reported in
// the NonExhaustiveMatch error, in declaration order.
func (b *MatchBuilder[R]) Compile() (*Matcher[R], error) {
	if b.err != nil {
		return nil, b.err
	}

	table := make([]Handler[R], len(b.union.kinds))
	var missing []string
	for _, k := range b.union.kinds {
		h, ok := b.handlers[k.name]
		if !ok {
			h = b.fallback
		}
		if h == nil {
			missing = append(missing, k.name)
			continue
		}
		table[k.index] = h
	}
	if len(missing) > 0 {
		return nil, &NonExhaustiveMatchError{Union: b.union.name, Missing: missing}
	}

	return &Matcher[R]{union: b.union, table: table}, nil
}

// Matcher is a compiled, exhaustiveness-checked dispatch table for one union.
// Safe for unsynchronized concurrent use.
type Matcher[R any] struct {
	union *Union
	table []Handler[R]
}

// Union returns the union the matcher dispatches over.
func (m *Matcher[R]) Union() *Union { return m.union }

// Match dispatches v to exactly one handler and returns its result. A zero
// variant, or a variant of a different union, fails with UnknownKind.
func (m *Matcher[R]) Match(v Variant) (R, error) {
	var zero R
	if v.kind == nil {
		return zero, &UnknownKindError{Union: m.union.name, Kind: ""}
	}
	if v.kind.union != m.union {
		return zero, &UnknownKindError{Union: m.union.name, Kind: v.kind.name}
	}
	return m.table[v.kind.index](v), nil
}
