// Package axis provides a single adapter type for writing axis-generic
// layout code: most of the kernel's measure/lay-out logic is identical
// between horizontal and vertical boxes and differs only in which of
// Size's/Offset's two components it touches.
package axis

import (
	"github.com/solenne-labs/pagekit/internal/kernel/dimension"
	"github.com/solenne-labs/pagekit/internal/kernel/geometry"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Axis) Select(horizontal, vertical unit.Unit) unit.Unit {
	if a == Horizontal {
		return horizontal
	}
	return vertical
}

func (a Axis) Offset(o geometry.Offset) unit.Unit {
	if a == Horizontal {
		return o.X
	}
	return o.Y
}

func (a Axis) SetOffset(o *geometry.Offset, value unit.Unit) {
	if a == Horizontal {
		o.X = value
	} else {
		o.Y = value
	}
}

// AdvanceDim returns offset advanced along this axis by amount.
func (a Axis) AdvanceDim(o geometry.Offset, amount unit.Unit) geometry.Offset {
	if a == Horizontal {
		o.XAdvance(amount)
	} else {
		o.YAdvance(amount)
	}
	return o
}

func (a Axis) Dim(size *geometry.Size) *dimension.FlexDim {
	if a == Horizontal {
		return size.XDim()
	}
	return size.YDim()
}

func (a Axis) Size(size geometry.Size) unit.Unit {
	if a == Horizontal {
		return size.Width()
	}
	return size.Height()
}

// ExtendDim returns a copy of size with this axis's FlexDim base advanced by
// amount (a plain scalar bump, no grow/shrink/min/max involved).
func (a Axis) ExtendDim(size geometry.Size, amount unit.Unit) geometry.Size {
	out := size
	dim := a.Dim(&out)
	*dim = dim.AddUnit(amount)
	return out
}

// ExtendSize returns a copy of size extended by amount along this axis:
// XExtend on Horizontal, YExtend on Vertical.
func (a Axis) ExtendSize(size, amount geometry.Size, respectBaseline bool) geometry.Size {
	out := size
	if a == Horizontal {
		out.XExtend(amount, respectBaseline)
	} else {
		out.YExtend(amount, respectBaseline)
	}
	return out
}

// ResolveContentSize finalizes this axis's FlexDim on size: a pure
// content-typed dim adopts the child content's measured size verbatim; any
// dynamic (grow/shrink-capable) dim instead resolves via size_filled against
// the room the parent actually offered.
func (a Axis) ResolveContentSize(size *geometry.Size, innerSize geometry.Size, outerRoom unit.Unit) {
	dim := a.Dim(size)
	if dim.IsContentFixed() {
		dim.SetBase(dimension.DimFixed(a.Size(innerSize)))
	} else {
		dim.SetBase(dimension.DimFixed(dim.SizeFilled(outerRoom)))
	}
}
