// Package geometry implements Offset, Size and Quad: the two-axis geometry
// records the layout kernel positions and sizes nodes with.
package geometry

import (
	"github.com/solenne-labs/pagekit/internal/kernel/dimension"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

// Offset is a two-axis position, in kernel Units.
type Offset struct {
	X, Y unit.Unit
}

func ZeroOffset() Offset { return Offset{} }

func NewOffset(x, y unit.Unit) Offset { return Offset{X: x, Y: y} }

func (o *Offset) XAdvance(amount unit.Unit) { o.X += amount }
func (o *Offset) YAdvance(amount unit.Unit) { o.Y += amount }

func (o Offset) Add(rhs Offset) Offset { return Offset{X: o.X + rhs.X, Y: o.Y + rhs.Y} }
func (o Offset) Sub(rhs Offset) Offset { return Offset{X: o.X - rhs.X, Y: o.Y - rhs.Y} }

// AddSize returns the offset advanced by a Size's resolved width/height.
func (o Offset) AddSize(rhs Size) Offset {
	return Offset{X: o.X + rhs.Width(), Y: o.Y + rhs.Height()}
}

// Size is a two-axis flexible dimension pair plus an optional baseline depth.
type Size struct {
	width  dimension.FlexDim
	height dimension.FlexDim
	depth  *unit.Unit
}

func SizeNone() Size {
	return Size{width: dimension.FlexDimNone(), height: dimension.FlexDimNone()}
}

func SizeContent() Size {
	return Size{width: dimension.FlexDimContent(), height: dimension.FlexDimContent()}
}

func SizeFixed(width, height unit.Unit) Size {
	return Size{width: dimension.FlexDimFixed(width), height: dimension.FlexDimFixed(height)}
}

func SizeFixedDepth(width, height, depth unit.Unit) Size {
	d := depth
	return Size{width: dimension.FlexDimFixed(width), height: dimension.FlexDimFixed(height), depth: &d}
}

func SizeZero() Size {
	return Size{width: dimension.FlexDimFixed(unit.Zero()), height: dimension.FlexDimFixed(unit.Zero())}
}

func (s *Size) XDim() *dimension.FlexDim { return &s.width }
func (s *Size) YDim() *dimension.FlexDim { return &s.height }

func (s Size) WidthRef() dimension.Dim { return s.width.Base }
func (s Size) Width() unit.Unit { return s.width.BaseSize() }
func (s *Size) SetWidth(d dimension.Dim) {
	s.width.SetBase(d)
}

func (s Size) HeightRef() dimension.Dim { return s.height.Base }
func (s Size) Height() unit.Unit { return s.height.BaseSize() }
func (s *Size) SetHeight(d dimension.Dim) {
	s.height.SetBase(d)
}

func (s Size) Depth() *unit.Unit { return s.depth }
func (s *Size) SetDepth(depth *unit.Unit) {
	if depth == nil {
		s.depth = nil
		return
	}
	v := *depth
	s.depth = &v
}

// Ascent returns height-depth when both the resolved height and depth are
// known, else nil.
func (s Size) Ascent() *unit.Unit {
	if s.depth == nil {
		return nil
	}
	if hs := s.height.Base.Size(); hs != nil {
		v := *hs - *s.depth
		return &v
	}
	return nil
}

// AscentSize is Ascent with a zero default, via sub_unit's None-propagation.
func (s Size) AscentSize() unit.Unit {
	if v := unit.SubUnit(s.height.Base.Size(), s.depth); v != nil {
		return *v
	}
	return unit.Zero()
}

// XExtend grows width additively and combines height either by baseline
// (max of ascent, max of depth) or by plain max, matching main-axis packing.
func (s *Size) XExtend(rhs Size, respectBaseline bool) {
	s.width = s.width.Add(rhs.width)
	if respectBaseline {
		ascent := s.AscentSize()
		if rAscent := rhs.AscentSize(); rAscent > ascent {
			ascent = rAscent
		}
		depth := unit.Zero()
		if s.depth != nil {
			depth = *s.depth
		}
		if rhs.depth != nil && (s.depth == nil || *rhs.depth > *s.depth) {
			depth = *rhs.depth
		}
		if s.depth != nil || rhs.depth != nil {
			s.depth = &depth
		}
		h := depth + ascent
		s.height = dimension.FlexDimFixed(h)
	} else {
		s.height = s.height.MaxOf(rhs.height)
	}
}

// YExtend combines width by plain max and grows height additively; depth is
// only ever adopted from the first child that carries one (cross-axis packing
// never overwrites an already-known baseline).
func (s *Size) YExtend(rhs Size, respectBaseline bool) {
	s.width = s.width.MaxOf(rhs.width)
	s.height = s.height.Add(rhs.height)
	if respectBaseline && s.depth == nil {
		s.depth = rhs.depth
	}
}

// Quad is a four-sided optional inset (padding/border), merged present-wins
// with a parent/default quad.
type Quad struct {
	top, left, bottom, right *unit.Unit
}

func QuadEmpty() Quad { return Quad{} }

func QuadSquare(u unit.Unit) Quad {
	v := u
	return Quad{top: &v, left: ptrOf(v), bottom: ptrOf(v), right: ptrOf(v)}
}

func QuadHV(horizontal, vertical unit.Unit) Quad {
	h, v := horizontal, vertical
	return Quad{top: &v, left: &h, bottom: ptrOf(v), right: ptrOf(h)}
}

func ptrOf(u unit.Unit) *unit.Unit { v := u; return &v }

func (q Quad) WithTop(top unit.Unit) Quad { q.top = ptrOf(top); return q }
func (q Quad) WithLeft(left unit.Unit) Quad { q.left = ptrOf(left); return q }
func (q Quad) WithBottom(b unit.Unit) Quad { q.bottom = ptrOf(b); return q }
func (q Quad) WithRight(right unit.Unit) Quad { q.right = ptrOf(right); return q }

func (q Quad) Top() *unit.Unit { return q.top }
func (q Quad) Left() *unit.Unit { return q.left }
func (q Quad) Bottom() *unit.Unit { return q.bottom }
func (q Quad) Right() *unit.Unit { return q.right }

func (q Quad) TopSize() unit.Unit { return derefOr(q.top, unit.Zero()) }
func (q Quad) LeftSize() unit.Unit { return derefOr(q.left, unit.Zero()) }
func (q Quad) BottomSize() unit.Unit { return derefOr(q.bottom, unit.Zero()) }
func (q Quad) RightSize() unit.Unit { return derefOr(q.right, unit.Zero()) }

func derefOr(u *unit.Unit, fallback unit.Unit) unit.Unit {
	if u == nil {
		return fallback
	}
	return *u
}

func (q Quad) Width() unit.Unit { return q.LeftSize() + q.RightSize() }
func (q Quad) Height() unit.Unit { return q.TopSize() + q.BottomSize() }

// Merge returns a copy of q where any unset field falls back to parent's.
func (q Quad) Merge(parent Quad) Quad {
	return Quad{
		top:    orPtr(q.top, parent.top),
		left:   orPtr(q.left, parent.left),
		bottom: orPtr(q.bottom, parent.bottom),
		right:  orPtr(q.right, parent.right),
	}
}

func orPtr(a, b *unit.Unit) *unit.Unit {
	if a != nil {
		return a
	}
	return b
}

// Offset returns base advanced by this quad's top-left inset.
func (q Quad) Offset(base Offset) Offset {
	return Offset{X: base.X + q.LeftSize(), Y: base.Y + q.TopSize()}
}

// Narrow subtracts this quad's insets from an offset (advancing past the
// top-left edge) and/or a size (shrinking the content box); depth is adjusted
// unconditionally by bottom padding whenever both are present, matching the
// kernel's resolved depth/padding interaction.
func (q Quad) Narrow(offset *Offset, size *Size) {
	if offset != nil {
		offset.XAdvance(q.LeftSize())
		offset.YAdvance(q.TopSize())
	}
	if size != nil {
		if size.XDim().IsResolved() {
			w := size.WidthRef()
			w.SetSize(size.Width() - q.Width())
			size.SetWidth(w)
		}
		if size.YDim().IsResolved() {
			h := size.HeightRef()
			h.SetSize(size.Height() - q.Height())
			size.SetHeight(h)

			if size.depth != nil {
				v := *size.depth - q.BottomSize()
				size.depth = &v
			}
		}
	}
}

// Widen is Narrow's inverse, used when walking back out of a padded box.
func (q Quad) Widen(offset *Offset, size *Size) {
	if offset != nil {
		offset.XAdvance(unit.Zero() - q.LeftSize())
		offset.YAdvance(unit.Zero() - q.TopSize())
	}
	if size != nil {
		if size.XDim().IsResolved() {
			w := size.WidthRef()
			w.SetSize(size.Width() + q.Width())
			size.SetWidth(w)
		}
		if size.YDim().IsResolved() {
			h := size.HeightRef()
			h.SetSize(size.Height() + q.Height())
			size.SetHeight(h)

			if size.depth != nil {
				v := *size.depth + q.BottomSize()
				size.depth = &v
			}
		}
	}
}
