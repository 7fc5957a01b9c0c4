package element

import (
	"github.com/solenne-labs/pagekit/internal/kernel/axis"
	"github.com/solenne-labs/pagekit/internal/kernel/dimension"
	"github.com/solenne-labs/pagekit/internal/kernel/geometry"
	"github.com/solenne-labs/pagekit/internal/kernel/style"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

// Filling is a zero-size leaf that exists only to soak up slack along one
// axis via its grow/shrink weight, the kernel's "flex spacer". It never
// renders anything and never measures its children (it has none); lay_out
// simply records the room it was finally handed as its content size, for
// callers inspecting how much space a spacer actually claimed.
type Filling struct {
	mark        string
	ax          axis.Axis
	offset      geometry.Offset
	size        geometry.Size
	st          *style.Style
	contentSize *geometry.Size
}

// NewFilling starts a Filling with zero base size along ax and no grow/shrink.
func NewFilling(ax axis.Axis) *Filling {
	return &Filling{
		ax:   ax,
		size: geometry.SizeZero(),
		st:   style.NewBareBuilder().Build(),
	}
}

func (f *Filling) WithMark(mark string) *Filling { f.mark = mark; return f }

// Size pins this spacer's own basis (rarely used; grow/shrink is the point).
func (f *Filling) Size(d dimension.Dim) *Filling {
	f.ax.Dim(&f.size).SetBase(d)
	return f
}

func (f *Filling) Grow(weight unit.Fill) *Filling {
	f.ax.Dim(&f.size).SetGrow(weight)
	return f
}

func (f *Filling) Shrink(weight unit.Fill) *Filling {
	f.ax.Dim(&f.size).SetShrink(weight)
	return f
}

func (f *Filling) Element() string { return "Fill" }
func (f *Filling) Mark() string { return f.mark }
func (f *Filling) OffsetRef() geometry.Offset { return f.offset }
func (f *Filling) SetOffset(o geometry.Offset) { f.offset = o }
func (f *Filling) SizeRef() geometry.Size { return f.size }
func (f *Filling) SetSize(s geometry.Size) { f.size = s }
func (f *Filling) NativeSize() *geometry.Size { return nil }
func (f *Filling) SizeAfterWrapRef() geometry.Size { return f.size }
func (f *Filling) SizeAfterLayOut() geometry.Size { return f.size }
func (f *Filling) ContentSize() *geometry.Size { return f.contentSize }

func (f *Filling) StyleRef() *style.Style { return f.st }

// SetStyle mirrors Box.SetStyle: it re-applies the style's size policy to
// this spacer's still-unset dim slots before adopting the style itself.
func (f *Filling) SetStyle(st *style.Style) {
	style.ApplyToSize(&f.size, f.ax == axis.Horizontal, st)
	f.st = st
}

func (f *Filling) Measure(ctx MeasureContext, room geometry.Size) error { return nil }

func (f *Filling) LayOut(ctx MeasureContext, position geometry.Offset, room geometry.Size) error {
	f.offset = position
	r := room
	f.contentSize = &r
	return nil
}

func (f *Filling) Render(ctx RenderContext) error { return nil }

func (f *Filling) Iter() []Layout { return nil }
