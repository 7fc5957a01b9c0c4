// Package dimension implements the kernel's one-axis sizing records:
// MaybeDim, Dim and FlexDim, and their resolution rules against a parent
// or content size.
package dimension

import "github.com/solenne-labs/pagekit/internal/kernel/unit"

// dimKind tags the three Dim/MaybeDim basis shapes.
type dimKind int

const (
	kindNone dimKind = iota
	kindContent
	kindFixed
	kindParent
)

// MaybeDim is a Dim basis with an additional "unset" state, used for
// optional min/max bounds.
type MaybeDim struct {
	kind dimKind
	size *unit.Unit
	fill unit.FillPerMille
}

// MaybeDimNone is the unset bound.
func MaybeDimNone() MaybeDim { return MaybeDim{kind: kindNone} }

// MaybeDimFixed is an explicit bound length.
func MaybeDimFixed(u unit.Unit) MaybeDim { v := u; return MaybeDim{kind: kindFixed, size: &v} }

// MaybeDimParent is a percentage-of-parent bound, unresolved until ResolveParented runs.
func MaybeDimParent(fill unit.FillPerMille) MaybeDim {
	return MaybeDim{kind: kindParent, fill: fill}
}

func (m MaybeDim) IsParented() bool { return m.kind == kindParent }

func (m MaybeDim) ParentFill() unit.FillPerMille {
	if m.kind == kindParent {
		return m.fill
	}
	return unit.FillNone()
}

// Size returns the resolved length, or nil if unset or unresolved.
func (m MaybeDim) Size() *unit.Unit { return m.size }

func (m *MaybeDim) SetSize(u unit.Unit) {
	v := u
	m.kind = kindFixed
	m.size = &v
	m.fill = 0
}

// Resolve fills a pending Parent(fill, nil) slot; no-op otherwise.
func (m *MaybeDim) Resolve(size unit.Unit) {
	if m.kind == kindParent && m.size == nil {
		v := size
		m.size = &v
	}
}

// Or returns m if set (non-None), else other.
func (m MaybeDim) Or(other MaybeDim) MaybeDim {
	if m.kind == kindNone {
		return other
	}
	return m
}

// Add is None-propagating addition: a missing side leaves the other unchanged.
func (m MaybeDim) Add(rhs MaybeDim) MaybeDim {
	l, r := m.Size(), rhs.Size()
	switch {
	case l == nil && r == nil:
		return MaybeDimNone()
	case l == nil:
		return rhs
	case r == nil:
		return m
	default:
		return MaybeDimFixed(*l + *r)
	}
}

// Sub is None-propagating subtraction; a missing left operand negates the right.
func (m MaybeDim) Sub(rhs MaybeDim) MaybeDim {
	l, r := m.Size(), rhs.Size()
	switch {
	case l == nil && r == nil:
		return MaybeDimNone()
	case l == nil:
		return MaybeDimFixed(unit.Zero() - *r)
	case r == nil:
		return m
	default:
		return MaybeDimFixed(*l - *r)
	}
}

// Dim is the primary basis of a dimension: content-determined, fixed, or a
// parent-relative percentage.
type Dim struct {
	kind dimKind
	size *unit.Unit
	fill unit.FillPerMille
}

// DimContent is a basis resolved from the content during measure.
func DimContent() Dim { return Dim{kind: kindContent} }

// DimFixed is an explicit length.
func DimFixed(u unit.Unit) Dim { v := u; return Dim{kind: kindFixed, size: &v} }

// DimParent is a percentage-of-parent basis, unresolved until ResolveParented runs.
func DimParent(fill unit.FillPerMille) Dim { return Dim{kind: kindParent, fill: fill} }

// DimFromMaybe converts a MaybeDim into a Dim (None becomes unresolved Content).
func DimFromMaybe(m MaybeDim) Dim {
	switch m.kind {
	case kindNone:
		return DimContent()
	case kindFixed:
		return DimFixed(*m.size)
	case kindParent:
		d := Dim{kind: kindParent, fill: m.fill}
		d.size = m.size
		return d
	default:
		return DimContent()
	}
}

func (d Dim) IsFixed() bool { return d.kind == kindFixed }
func (d Dim) IsContent() bool { return d.kind == kindContent }
func (d Dim) IsParented() bool { return d.kind == kindParent }

// IsResolved reports whether Size() yields a concrete length.
func (d Dim) IsResolved() bool { return d.size != nil || d.kind == kindFixed }

func (d Dim) ParentFill() unit.FillPerMille {
	if d.kind == kindParent {
		return d.fill
	}
	return unit.FillNone()
}

// Size returns the resolved length, or nil for pending Content(None)/Parent(_, None).
func (d Dim) Size() *unit.Unit {
	if d.kind == kindFixed {
		// Fixed always carries a concrete size; guard against zero-value structs.
		if d.size == nil {
			z := unit.Zero()
			return &z
		}
	}
	return d.size
}

func (d *Dim) SetSize(u unit.Unit) {
	v := u
	d.size = &v
}

// Resolve fills a pending Content(None) or Parent(fill, None) slot.
func (d *Dim) Resolve(size unit.Unit) {
	if d.kind == kindParent && d.size == nil {
		v := size
		d.size = &v
		return
	}
	if d.kind == kindContent && d.size == nil {
		v := size
		d.size = &v
	}
}

func (d Dim) MinOf(r Dim) Dim {
	l, rr := d.Size(), r.Size()
	switch {
	case l == nil && rr == nil:
		return DimContent()
	case l == nil:
		return r
	case rr == nil:
		return d
	default:
		if *l < *rr {
			return DimFixed(*l)
		}
		return DimFixed(*rr)
	}
}

func (d Dim) MaxOf(r Dim) Dim {
	l, rr := d.Size(), r.Size()
	switch {
	case l == nil && rr == nil:
		return DimContent()
	case l == nil:
		return r
	case rr == nil:
		return d
	default:
		if *l > *rr {
			return DimFixed(*l)
		}
		return DimFixed(*rr)
	}
}

func (d Dim) Add(r Dim) Dim {
	l, rr := d.Size(), r.Size()
	switch {
	case l == nil && rr == nil:
		return DimContent()
	case l == nil:
		return r
	case rr == nil:
		return d
	default:
		return DimFixed(*l + *rr)
	}
}

func (d Dim) Sub(r Dim) Dim {
	l, rr := d.Size(), r.Size()
	switch {
	case l == nil && rr == nil:
		return DimContent()
	case l == nil:
		return DimFixed(unit.Zero() - *rr)
	case rr == nil:
		return d
	default:
		return DimFixed(*l - *rr)
	}
}

// Or returns d if set (not a pending Content(None)), else other.
func (d Dim) Or(other Dim) Dim {
	if d.kind == kindContent && d.size == nil {
		return other
	}
	return d
}

// FlexDim is the one-axis sizing record: basis, clamps, and grow/shrink weights.
type FlexDim struct {
	Base   Dim
	Min    MaybeDim
	Max    MaybeDim
	Grow   *unit.Fill
	Shrink *unit.Fill
}

// FlexDimNone / FlexDimContent are the zero-value content-sized dimension.
func FlexDimNone() FlexDim { return FlexDim{Base: DimContent()} }
func FlexDimContent() FlexDim { return FlexDim{Base: DimContent()} }

func FlexDimParented(fill unit.FillPerMille) FlexDim { return FlexDim{Base: DimParent(fill)} }

func FlexDimFixed(size unit.Unit) FlexDim { return FlexDim{Base: DimFixed(size)} }

// FlexDimFromGrow builds a dimension whose base is zero and which grows by fill:
// the shape used by Fill nodes.
func FlexDimFromGrow(fill unit.Fill) FlexDim {
	g := fill
	return FlexDim{Base: DimFixed(unit.Zero()), Grow: &g}
}

func (f FlexDim) WithMin(min MaybeDim) FlexDim {
	f.SetMin(min)
	return f
}

func (f FlexDim) WithMax(max MaybeDim) FlexDim {
	f.SetMax(max)
	return f
}

func (f FlexDim) WithGrow(fill unit.Fill) FlexDim {
	f.SetGrow(fill)
	return f
}

func (f FlexDim) WithShrink(fill unit.Fill) FlexDim {
	f.SetShrink(fill)
	return f
}

// CompleteWithStyle fills any still-unset slot from style-derived defaults,
// the mechanism behind "only previously-unset dim slots have been populated"
// (apply_style).
func (f *FlexDim) CompleteWithStyle(base Dim, min, max MaybeDim, grow, shrink *unit.Fill) {
	f.Base = f.Base.Or(base)
	f.Min = f.Min.Or(min)
	f.Max = f.Max.Or(max)
	if f.Grow == nil {
		f.Grow = grow
	}
	if f.Shrink == nil {
		f.Shrink = shrink
	}
}

func (f FlexDim) IsFixed() bool { return f.Base.IsFixed() }
func (f FlexDim) IsParented() bool { return f.Base.IsParented() }
func (f FlexDim) IsContent() bool { return f.Base.IsContent() }

func (f FlexDim) IsContentFixed() bool {
	return f.Base.IsContent() && f.Grow == nil && f.Shrink == nil
}

func (f FlexDim) IsDyn() bool { return f.Grow != nil || f.Shrink != nil }

func (f FlexDim) IsContentOrDyn() bool { return f.IsContent() || f.IsDyn() }

func (f FlexDim) IsResolved() bool { return f.Base.IsResolved() }

// SetBase clamps the new base into [min, max] when both sides are known and
// resolved; the last setter call wins any conflict.
func (f *FlexDim) SetBase(base Dim) {
	if bs, ms := base.Size(), f.Min.Size(); bs != nil && ms != nil && *bs < *ms {
		base = DimFromMaybe(f.Min)
	}
	if bs, xs := base.Size(), f.Max.Size(); bs != nil && xs != nil && *bs > *xs {
		base = DimFromMaybe(f.Max)
	}
	f.Base = base
}

// SetMin raises base and max if they fall below the new min.
func (f *FlexDim) SetMin(min MaybeDim) {
	if base, ms := f.Base.Size(), min.Size(); base != nil && ms != nil && *base < *ms {
		f.Base = DimFromMaybe(min)
	}
	if xs, ms := f.Max.Size(), min.Size(); xs != nil && ms != nil && *xs < *ms {
		f.Max = min
	}
	f.Min = min
}

// SetMax lowers base and min if they exceed the new max.
func (f *FlexDim) SetMax(max MaybeDim) {
	if base, xs := f.Base.Size(), max.Size(); base != nil && xs != nil && *base > *xs {
		f.Base = DimFromMaybe(max)
	}
	if ms, xs := f.Min.Size(), max.Size(); ms != nil && xs != nil && *ms > *xs {
		f.Min = max
	}
	f.Max = max
}

// ResolveContent fills a pending Content(None) base from an aggregated content size.
func (f *FlexDim) ResolveContent(contentSize unit.Unit) {
	if f.Base.IsContent() {
		f.Base.Resolve(contentSize)
	}
}

// ResolveParented replaces unresolved Parent(fill, None) forms in base/min/max by
// parentSize*fill/1000, re-clamping base against the final min/max, in the order
// min, then max, then base. Each step only fills still-unresolved slots.
func (f *FlexDim) ResolveParented(parentSize unit.Unit) {
	if f.Min.IsParented() {
		min := parentSize.MulRatio(f.Min.ParentFill(), unit.FillMille())
		if xs := f.Max.Size(); xs != nil && *xs < min {
			f.Max.Resolve(min)
		}
		if bs := f.Base.Size(); bs != nil && *bs < min {
			f.Base.Resolve(min)
		}
		f.Min.Resolve(min)
	}

	if f.Max.IsParented() {
		max := parentSize.MulRatio(f.Max.ParentFill(), unit.FillMille())
		if ms := f.Min.Size(); ms != nil && *ms > max {
			f.Min.Resolve(max)
		}
		if bs := f.Base.Size(); bs != nil && *bs > max {
			f.Base.Resolve(max)
		}
		f.Max.Resolve(max)
	}

	if f.Base.IsParented() {
		base := parentSize.MulRatio(f.Base.ParentFill(), unit.FillMille())
		if ms := f.Min.Size(); ms != nil && *ms > base {
			f.Base.Resolve(*ms)
		}
		if xs := f.Max.Size(); xs != nil && *xs < base {
			f.Base.Resolve(*xs)
		}
		f.Base.Resolve(base)
	}
}

func (f *FlexDim) SetGrow(fill unit.Fill) { v := fill; f.Grow = &v }
func (f *FlexDim) SetShrink(fill unit.Fill) { v := fill; f.Shrink = &v }

// BaseSize returns the resolved base length, defaulting to zero if unresolved.
func (f FlexDim) BaseSize() unit.Unit {
	if s := f.Base.Size(); s != nil {
		return *s
	}
	return unit.Zero()
}

// SizeAvailable returns room (clamped to min/max) for content-typed bases,
// else delegates to SizeFilled.
func (f FlexDim) SizeAvailable(room unit.Unit) unit.Unit {
	if f.IsContent() {
		v := room
		if xs := f.Max.Size(); xs != nil && v > *xs {
			v = *xs
		}
		if ms := f.Min.Size(); ms != nil && v < *ms {
			v = *ms
		}
		return v
	}
	return f.SizeFilled(room)
}

// SizeFilled grows to room (clamped to max) when room > base and grow is set,
// or shrinks to room (clamped to min) when room < base and shrink is set.
func (f FlexDim) SizeFilled(room unit.Unit) unit.Unit {
	size := f.BaseSize()
	switch {
	case size < room:
		switch {
		case f.Grow == nil:
			return size
		case f.Max.Size() == nil:
			return room
		default:
			max := *f.Max.Size()
			if room < max {
				return room
			}
			return max
		}
	case size == room:
		return size
	default: // size > room
		switch {
		case f.Shrink == nil:
			return size
		case f.Min.Size() == nil:
			return room
		default:
			min := *f.Min.Size()
			if room > min {
				return room
			}
			return min
		}
	}
}

// SizeDistributed adds a proportional share of slack to base (grow share when
// slack > 0, shrink share when slack < 0), then resolves via SizeFilled.
func (f FlexDim) SizeDistributed(slack unit.Unit, sumGrow, sumShrink *unit.Fill) unit.Unit {
	size := f.BaseSize()
	switch {
	case slack < unit.Zero():
		if f.Shrink != nil && sumShrink != nil {
			return f.SizeFilled(size + slack.MulRatio(*f.Shrink, *sumShrink))
		}
		return size
	case slack == unit.Zero():
		return size
	default:
		if f.Grow != nil && sumGrow != nil {
			return f.SizeFilled(size + slack.MulRatio(*f.Grow, *sumGrow))
		}
		return size
	}
}

func (f FlexDim) MinOf(rhs FlexDim) FlexDim {
	f.Base = f.Base.MinOf(rhs.Base)
	return f
}

func (f FlexDim) MaxOf(rhs FlexDim) FlexDim {
	f.Base = f.Base.MaxOf(rhs.Base)
	return f
}

// Add combines two FlexDims component-wise (base/min/max additive, grow/shrink
// additive-with-None-propagation).
func (f FlexDim) Add(rhs FlexDim) FlexDim {
	f.Base = f.Base.Add(rhs.Base)
	f.Min = f.Min.Add(rhs.Min)
	f.Max = f.Max.Add(rhs.Max)
	f.Grow = unit.AddFill(f.Grow, rhs.Grow)
	f.Shrink = unit.AddFill(f.Shrink, rhs.Shrink)
	return f
}

// AddUnit extends only the base by a fixed amount.
func (f FlexDim) AddUnit(rhs unit.Unit) FlexDim {
	f.Base.SetSize(f.BaseSize() + rhs)
	return f
}

// Sub combines two FlexDims component-wise, re-clamping min/max against the
// resulting base afterward; min is never raised through max here, nor the
// reverse, unlike the SetMin/SetMax setters.
func (f FlexDim) Sub(rhs FlexDim) FlexDim {
	f.Base = f.Base.Sub(rhs.Base)
	f.Min = f.Min.Sub(rhs.Min)
	f.Max = f.Max.Sub(rhs.Max)
	f.Grow = unit.SubFill(f.Grow, rhs.Grow)
	f.Shrink = unit.SubFill(f.Shrink, rhs.Shrink)

	if base, min := f.Base.Size(), f.Min.Size(); base != nil && min != nil && *min > *base {
		f.Min.SetSize(*base)
	}
	if base, max := f.Base.Size(), f.Max.Size(); base != nil && max != nil && *max < *base {
		f.Max.SetSize(*base)
	}
	return f
}

func (f FlexDim) SubUnit(rhs unit.Unit) FlexDim {
	f.Base.SetSize(f.BaseSize() - rhs)
	return f
}

// MulScalar scales base/min/max/grow/shrink by rhs (clamped to non-negative).
func (f FlexDim) MulScalar(rhs float64) FlexDim {
	if rhs < 0 {
		rhs = 0
	}
	f.Base.SetSize(f.BaseSize().MulScalar(rhs))
	if ms := f.Min.Size(); ms != nil {
		f.Min.SetSize(ms.MulScalar(rhs))
	}
	if xs := f.Max.Size(); xs != nil {
		f.Max.SetSize(xs.MulScalar(rhs))
	}
	if f.Grow != nil {
		f.Grow = ptrFill(f.Grow.MulScalar(rhs))
	}
	if f.Shrink != nil {
		f.Shrink = ptrFill(f.Shrink.MulScalar(rhs))
	}
	return f
}

// DivScalar divides base/min/max/grow/shrink by rhs (clamped away from zero).
func (f FlexDim) DivScalar(rhs float64) FlexDim {
	if rhs < 1.0e-6 {
		rhs = 1.0e-6
	}
	f.Base.SetSize(f.BaseSize().DivScalar(rhs))
	if ms := f.Min.Size(); ms != nil {
		f.Min.SetSize(ms.DivScalar(rhs))
	}
	if xs := f.Max.Size(); xs != nil {
		f.Max.SetSize(xs.DivScalar(rhs))
	}
	if f.Grow != nil {
		f.Grow = ptrFill(f.Grow.DivScalar(rhs))
	}
	if f.Shrink != nil {
		f.Shrink = ptrFill(f.Shrink.DivScalar(rhs))
	}
	return f
}

func ptrFill(f unit.Fill) *unit.Fill { return &f }

// DimAutoOrParent is the subset of Dim a Fill node's size() builder accepts:
// either leave it auto (content) or pin it to a parent percentage.
type DimAutoOrParent = Dim
