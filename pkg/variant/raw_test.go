package variant

import (
	"errors"
	"testing"
)

func TestRawRoundTrip(t *testing.T) {
	r := New()
	hearts := StringRaw("hearts")
	spades := StringRaw("spades")
	u, err := r.Define("Suit", []KindSpec{
		{Name: "Hearts", Raw: &hearts},
		{Name: "Spades", Raw: &spades},
	}, WithRawKind(RawString))
	if err != nil {
		t.Fatalf("define Suit: %v", err)
	}

	// fromRaw(rawOf(k)) == k for every unit kind.
	for _, k := range u.Kinds() {
		raw, err := k.Raw()
		if err != nil {
			t.Fatalf("raw of %s: %v", k.Name(), err)
		}
		back, err := u.FromRaw(raw)
		if err != nil {
			t.Fatalf("from raw %s: %v", raw, err)
		}
		if back != k {
			t.Errorf("round trip of %s returned %s", k.Name(), back.Name())
		}
	}

	_, err = u.FromRaw(StringRaw("clubs"))
	var unk *UnknownRawValueError
	if !errors.As(err, &unk) {
		t.Fatalf("expected UnknownRawValueError, got %v", err)
	}
}

func TestNoRawMapping(t *testing.T) {
	r := New()
	u := defineTrade(t, r)

	_, err := u.FromRaw(IntRaw(1))
	var noRaw *NoRawValueMappingError
	if !errors.As(err, &noRaw) {
		t.Fatalf("expected NoRawValueMappingError, got %v", err)
	}

	buy, _ := u.Kind("Buy")
	if _, err := buy.Raw(); !errors.As(err, &noRaw) {
		t.Fatalf("expected NoRawValueMappingError, got %v", err)
	}
}

func TestAutoRaw(t *testing.T) {
	r := New()
	four := IntRaw(4)
	u, err := r.Define("Rank", []KindSpec{
		{Name: "Two"},              // auto: 0
		{Name: "Three"},            // auto: 1
		{Name: "Four", Raw: &four}, // explicit: 4
		{Name: "Five"},             // continues: 5
	}, WithAutoRaw())
	if err != nil {
		t.Fatalf("define Rank: %v", err)
	}

	want := map[string]int64{"Two": 0, "Three": 1, "Four": 4, "Five": 5}
	for name, wantRaw := range want {
		k, err := u.Kind(name)
		if err != nil {
			t.Fatalf("kind %s: %v", name, err)
		}
		raw, err := k.Raw()
		if err != nil {
			t.Fatalf("raw of %s: %v", name, err)
		}
		if raw.Int() != wantRaw {
			t.Errorf("raw of %s = %d, want %d", name, raw.Int(), wantRaw)
		}
	}
}

func TestRawDefinitionErrors(t *testing.T) {
	one := IntRaw(1)
	text := StringRaw("one")

	tests := []struct {
		name  string
		kinds []KindSpec
		opts  []DefineOption
	}{
		{
			name: "raw without mapping",
			kinds: []KindSpec{
				{Name: "A", Raw: &one},
				{Name: "B"},
			},
		},
		{
			name: "raw on fielded kind",
			kinds: []KindSpec{
				{Name: "A", Fields: []FieldSpec{{Name: "x", Type: Int}}, Raw: &one},
				{Name: "B"},
			},
			opts: []DefineOption{WithRawKind(RawInt)},
		},
		{
			name: "raw scalar mismatch",
			kinds: []KindSpec{
				{Name: "A", Raw: &text},
				{Name: "B"},
			},
			opts: []DefineOption{WithRawKind(RawInt)},
		},
		{
			name: "duplicate raw value",
			kinds: []KindSpec{
				{Name: "A", Raw: &one},
				{Name: "B", Raw: &one},
			},
			opts: []DefineOption{WithRawKind(RawInt)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			_, err := r.Define("U", tt.kinds, tt.opts...)
			var def *DefinitionError
			if !errors.As(err, &def) {
				t.Fatalf("expected DefinitionError, got %v", err)
			}
		})
	}
}
