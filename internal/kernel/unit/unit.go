// Package unit implements the kernel's fixed-point length and ratio
// algebra: Unit (1/1000 mm), Fill/FillPerMille ratio weights, and the
// Mm/Pt/Em typographic aliases with their conversions.
package unit

import "math"

// Unit is an integer length at 1/1000 mm granularity. Zero value is zero length.
type Unit int64

// Zero is the additive identity.
func Zero() Unit { return Unit(0) }

// Infinity is the sentinel used by Wrap/PageBreak marker nodes to force a line break.
func Infinity() Unit { return Unit(math.MaxInt64 / 2) }

func (u Unit) IsZero() bool { return u == 0 }

func (u Unit) Add(rhs Unit) Unit { return u + rhs }
func (u Unit) Sub(rhs Unit) Unit { return u - rhs }

// MulScalar rounds toward zero.
func (u Unit) MulScalar(rhs float64) Unit {
	return Unit(int64(float64(u) * rhs))
}

// DivScalar divides by rhs clamped to at least 1e-6, so zero and negative
// divisors degrade to a huge result with u's own sign rather than dividing
// by zero.
func (u Unit) DivScalar(rhs float64) Unit {
	return Unit(int64(float64(u) / math.Max(rhs, 1.0e-6)))
}

// MulRatio multiplies u by num/den, rounding half away from zero.
func (u Unit) MulRatio(num, den Fill) Unit {
	divisor := int64(den)
	if divisor == 0 {
		return Zero()
	}
	sign := int64(0)
	switch {
	case u > 0:
		sign = 1
	case u < 0:
		sign = -1
	}
	rounding := sign * divisor / 2
	return Unit((int64(u)*int64(num) + rounding) / divisor)
}

// AddUnit adds two optional units: nil+nil stays nil, a single present
// operand wins unchanged.
func AddUnit(l, r *Unit) *Unit {
	switch {
	case l == nil && r == nil:
		return nil
	case l == nil:
		v := *r
		return &v
	case r == nil:
		v := *l
		return &v
	default:
		v := *l + *r
		return &v
	}
}

// SubUnit mirrors AddUnit for subtraction; a missing left operand is treated as zero.
func SubUnit(l, r *Unit) *Unit {
	switch {
	case l == nil && r == nil:
		return nil
	case l == nil:
		v := Zero() - *r
		return &v
	case r == nil:
		v := *l
		return &v
	default:
		v := *l - *r
		return &v
	}
}

// Fill is a non-negative integer ratio weight used for grow/shrink distribution
// and for parent-relative percentages (as FillPerMille, thousandths).
type Fill uint64

// FillPerMille is Fill used as a percentage denominator of 1000.
type FillPerMille = Fill

func NewFill(v uint64) Fill { return Fill(v) }

func FillNone() Fill { return 0 }
func FillEqual() Fill { return 1 }
func FillFull() Fill { return 1000 }
func FillMille() Fill { return 1000 }

func (f Fill) Add(rhs Fill) Fill { return f + rhs }

// Sub saturates at zero; a weight never goes negative.
func (f Fill) Sub(rhs Fill) Fill {
	if rhs > f {
		rhs = f
	}
	return f - rhs
}

// MulScalar saturates at zero for negative multipliers.
func (f Fill) MulScalar(rhs float64) Fill {
	if rhs < 0 {
		rhs = 0
	}
	return Fill(uint64(float64(f) * rhs))
}

// DivScalar divides by rhs clamped to at least 1e-3; zero and negative
// divisors degrade to a huge positive result, never a negative weight.
func (f Fill) DivScalar(rhs float64) Fill {
	return Fill(uint64(float64(f) / math.Max(rhs, 1.0e-3)))
}

// AddFill mirrors AddUnit for Fill-typed optionals.
func AddFill(l, r *Fill) *Fill {
	switch {
	case l == nil && r == nil:
		return nil
	case l == nil:
		v := *r
		return &v
	case r == nil:
		v := *l
		return &v
	default:
		v := *l + *r
		return &v
	}
}

// SubFill mirrors SubUnit for Fill-typed optionals, saturating at zero.
func SubFill(l, r *Fill) *Fill {
	switch {
	case l == nil && r == nil:
		return nil
	case l == nil:
		v := Fill(0).Sub(*r)
		return &v
	case r == nil:
		v := *l
		return &v
	default:
		v := l.Sub(*r)
		return &v
	}
}

// Mm is a length in millimeters.
type Mm float64

// Pt is a length in typographic points (1pt = 1/72 inch).
type Pt float64

// Em is a font-relative length; multiplied by point size to get physical units.
type Em float64

func (e Em) IsZero() bool { return e == 0 }

func (e Em) Add(rhs Em) Em { return e + rhs }
func (e Em) Sub(rhs Em) Em { return e - rhs }
func (e Em) MulScalar(f float64) Em { return Em(float64(e) * f) }

// MulPt scales a point size by this Em ratio, yielding a physical Pt length.
func (e Em) MulPt(pt Pt) Pt { return Pt(float64(e) * float64(pt)) }

// UnitFromMm rounds millimeters to the nearest micro-unit.
func UnitFromMm(mm Mm) Unit { return Unit(math.Round(float64(mm) * 1000.0)) }

// MmFromUnit converts a Unit back to millimeters.
func MmFromUnit(u Unit) Mm { return Mm(float64(u) / 1000.0) }

// MmFromPt converts points to millimeters (1pt = 1/72 inch = 25.4/72 mm).
func MmFromPt(pt Pt) Mm { return Mm(float64(pt) * 25.4 / 72.0) }

// PtFromMm converts millimeters to points.
func PtFromMm(mm Mm) Pt { return Pt(float64(mm) * 72.0 / 25.4) }

// UnitFromPt converts points to a Unit via millimeters, so the single
// rounding step happens at the Unit boundary.
func UnitFromPt(pt Pt) Unit { return UnitFromMm(MmFromPt(pt)) }

// PtFromUnit converts a Unit back to points via millimeters.
func PtFromUnit(u Unit) Pt { return PtFromMm(MmFromUnit(u)) }
