package variant

import (
	"errors"
	"testing"
)

func TestConstructShape(t *testing.T) {
	r := New()
	u := defineTrade(t, r)

	tests := []struct {
		name   string
		kind   string
		fields []any
		ok     bool
	}{
		{"correct payload", "Buy", []any{"APPL", 500}, true},
		{"int64 accepted", "Buy", []any{"APPL", int64(500)}, true},
		{"wrong arity", "Buy", []any{"APPL"}, false},
		{"extra field", "Buy", []any{"APPL", 500, true}, false},
		{"wrong type", "Buy", []any{"APPL", "500"}, false},
		{"swapped fields", "Buy", []any{500, "APPL"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := u.Construct(tt.kind, tt.fields...)
			if tt.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if v.KindName() != tt.kind {
					t.Errorf("kind = %q, want %q", v.KindName(), tt.kind)
				}
				return
			}
			var sm *ShapeMismatchError
			if !errors.As(err, &sm) {
				t.Fatalf("expected ShapeMismatchError, got %v", err)
			}
		})
	}
}

func TestConstructUnknownKind(t *testing.T) {
	r := New()
	u := defineTrade(t, r)

	_, err := u.Construct("Hold")
	var unk *UnknownKindError
	if !errors.As(err, &unk) {
		t.Fatalf("expected UnknownKindError, got %v", err)
	}
	if unk.Kind != "Hold" {
		t.Errorf("unk.Kind = %q, want Hold", unk.Kind)
	}
}

func TestVariantAccessors(t *testing.T) {
	r := New()
	u := defineTrade(t, r)

	v, err := u.Construct("Buy", "APPL", 500)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	stock, err := v.Field("stock")
	if err != nil {
		t.Fatalf("field stock: %v", err)
	}
	if stock != "APPL" {
		t.Errorf("stock = %v, want APPL", stock)
	}

	amount, err := v.Field("amount")
	if err != nil {
		t.Fatalf("field amount: %v", err)
	}
	if amount != int64(500) {
		t.Errorf("amount = %v (%T), want int64(500)", amount, amount)
	}

	if _, err := v.Field("price"); err == nil {
		t.Error("expected error for unknown field")
	}

	if got := v.String(); got != `Buy("APPL", 500)` {
		t.Errorf("String() = %q", got)
	}

	// Fields() hands out a copy: mutating it must not touch the variant.
	fields := v.Fields()
	fields[0] = "MSFT"
	again, _ := v.Field("stock")
	if again != "APPL" {
		t.Error("payload mutated through Fields() copy")
	}
}

func defineTree(t *testing.T, r *Registry) *Union {
	t.Helper()
	u, err := r.Define("Tree", []KindSpec{
		{Name: "Empty"},
		{Name: "Node", Fields: []FieldSpec{
			{Name: "value", Type: Int},
			{Name: "left", Type: Self()},
			{Name: "right", Type: Self()},
		}},
	})
	if err != nil {
		t.Fatalf("define Tree: %v", err)
	}
	return u
}

func TestRecursiveConstruction(t *testing.T) {
	r := New()
	u := defineTree(t, r)

	empty, err := u.Construct("Empty")
	if err != nil {
		t.Fatalf("construct Empty: %v", err)
	}

	// Depth 3, built bottom-up.
	leaf, err := u.Construct("Node", 1, empty, empty)
	if err != nil {
		t.Fatalf("construct leaf: %v", err)
	}
	mid, err := u.Construct("Node", 2, leaf, empty)
	if err != nil {
		t.Fatalf("construct mid: %v", err)
	}
	root, err := u.Construct("Node", 3, mid, leaf)
	if err != nil {
		t.Fatalf("construct root: %v", err)
	}

	sum, err := NewMatchBuilder[int64](u).
		Case("Empty", func(Variant) int64 { return 0 }).
		Case("Node", func(v Variant) int64 { return 1 }).
		Compile()
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	got, err := sum.Match(root)
	if err != nil {
		t.Fatalf("match root: %v", err)
	}
	if got != 1 {
		t.Errorf("match root = %d, want 1", got)
	}

	// A variant of another union is rejected for a Self field.
	other := defineTrade(t, r)
	buy, _ := other.Construct("Buy", "APPL", 1)
	_, err = u.Construct("Node", 1, buy, empty)
	var sm *ShapeMismatchError
	if !errors.As(err, &sm) {
		t.Fatalf("expected ShapeMismatchError, got %v", err)
	}
}

func TestSlotToggle(t *testing.T) {
	r := New()
	u, err := r.Define("Power", []KindSpec{
		{Name: "Off"}, {Name: "Low"}, {Name: "High"},
	})
	if err != nil {
		t.Fatalf("define Power: %v", err)
	}

	next := map[string]string{"Off": "Low", "Low": "High", "High": "Off"}

	for start := range next {
		start := start
		t.Run(start, func(t *testing.T) {
			initial, err := u.Construct(start)
			if err != nil {
				t.Fatalf("construct %s: %v", start, err)
			}
			slot, err := NewSlot(initial)
			if err != nil {
				t.Fatalf("new slot: %v", err)
			}

			// Three transitions walk the full cycle back to the start.
			for i := 0; i < 3; i++ {
				if err := slot.Set(next[slot.Get().KindName()]); err != nil {
					t.Fatalf("transition %d: %v", i, err)
				}
			}
			if got := slot.Get().KindName(); got != start {
				t.Errorf("after 3 transitions: %s, want %s", got, start)
			}
		})
	}
}

func TestSlotSetValidates(t *testing.T) {
	r := New()
	u := defineTrade(t, r)
	initial, _ := u.Construct("Buy", "APPL", 500)
	slot, err := NewSlot(initial)
	if err != nil {
		t.Fatalf("new slot: %v", err)
	}

	var sm *ShapeMismatchError
	if err := slot.Set("Sell", "APPL"); !errors.As(err, &sm) {
		t.Fatalf("expected ShapeMismatchError, got %v", err)
	}
	// Failed Set leaves the slot untouched.
	if got := slot.Get().String(); got != `Buy("APPL", 500)` {
		t.Errorf("slot changed on failed Set: %s", got)
	}

	if err := slot.Set("Sell", "APPL", 250); err != nil {
		t.Fatalf("valid Set: %v", err)
	}
	if got := slot.Get().KindName(); got != "Sell" {
		t.Errorf("kind = %q, want Sell", got)
	}
}
