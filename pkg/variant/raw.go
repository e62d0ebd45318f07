package variant

import (
	"fmt"
	"strconv"
)

// RawScalar identifies the primitive scalar a union's raw values are drawn from.
type RawScalar int

const (
	RawInt RawScalar = iota
	RawFloat
	RawString
)

func (s RawScalar) String() string {
	switch s {
	case RawInt:
		return "Int"
	case RawFloat:
		return "Float"
	case RawString:
		return "String"
	}
	return fmt.Sprintf("RawScalar(%d)", int(s))
}

// Raw is one raw value: a primitive scalar encoding of a unit kind.
// Raw values are comparable and usable as map keys.
type Raw struct {
	scalar RawScalar
	i      int64
	f      float64
	s      string
}

// IntRaw builds an integer raw value.
func IntRaw(v int64) Raw { return Raw{scalar: RawInt, i: v} }

// FloatRaw builds a floating-point raw value.
func FloatRaw(v float64) Raw { return Raw{scalar: RawFloat, f: v} }

// StringRaw builds a text raw value.
func StringRaw(v string) Raw { return Raw{scalar: RawString, s: v} }

// Scalar reports which primitive the raw value carries.
func (r Raw) Scalar() RawScalar { return r.scalar }

// Int returns the integer payload. Valid only when Scalar() == RawInt.
func (r Raw) Int() int64 { return r.i }

// Float returns the floating-point payload. Valid only when Scalar() == RawFloat.
func (r Raw) Float() float64 { return r.f }

// Text returns the string payload. Valid only when Scalar() == RawString.
func (r Raw) Text() string { return r.s }

func (r Raw) String() string {
	switch r.scalar {
	case RawInt:
		return strconv.FormatInt(r.i, 10)
	case RawFloat:
		return strconv.FormatFloat(r.f, 'g', -1, 64)
	case RawString:
		return strconv.Quote(r.s)
	}
	return "<invalid raw>"
}
