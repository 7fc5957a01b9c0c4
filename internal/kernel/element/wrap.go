package element

import (
	"github.com/solenne-labs/pagekit/internal/kernel/axis"
	"github.com/solenne-labs/pagekit/internal/kernel/geometry"
	"github.com/solenne-labs/pagekit/internal/kernel/style"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

// Wrap is a zero-width marker that forces a line break at its position: its
// own declared size is infinite along the container's main axis, which the
// line packer (pack) reads as "never fits, always starts a new line". Once
// the wrap decision has been made it contributes nothing to the resulting
// line's bounding size; SizeAfterWrapRef reports none.
type Wrap struct {
	mark          string
	offset        geometry.Offset
	sizeWrap      geometry.Size
	sizeAfterWrap geometry.Size
	st            *style.Style
}

// NewWrap builds a Wrap marker that forces a break along ax.
func NewWrap(ax axis.Axis) *Wrap {
	var sizeWrap geometry.Size
	if ax == axis.Horizontal {
		sizeWrap = geometry.SizeFixed(unit.Infinity(), unit.Zero())
	} else {
		sizeWrap = geometry.SizeFixed(unit.Zero(), unit.Infinity())
	}
	return &Wrap{
		sizeWrap:      sizeWrap,
		sizeAfterWrap: geometry.SizeNone(),
		st:            style.NewBareBuilder().Build(),
	}
}

func (w *Wrap) WithMark(mark string) *Wrap { w.mark = mark; return w }

func (w *Wrap) Element() string { return "Wrap" }
func (w *Wrap) Mark() string { return w.mark }
func (w *Wrap) OffsetRef() geometry.Offset { return w.offset }
func (w *Wrap) SetOffset(o geometry.Offset) { w.offset = o }
func (w *Wrap) SizeRef() geometry.Size { return w.sizeWrap }
func (w *Wrap) SetSize(s geometry.Size) { w.sizeWrap = s }
func (w *Wrap) NativeSize() *geometry.Size { return nil }
func (w *Wrap) SizeAfterWrapRef() geometry.Size { return w.sizeAfterWrap }
func (w *Wrap) SizeAfterLayOut() geometry.Size { return w.sizeAfterWrap }
func (w *Wrap) ContentSize() *geometry.Size { return nil }

func (w *Wrap) StyleRef() *style.Style { return w.st }
func (w *Wrap) SetStyle(st *style.Style) { w.st = st }

func (w *Wrap) Measure(ctx MeasureContext, room geometry.Size) error { return nil }

func (w *Wrap) LayOut(ctx MeasureContext, position geometry.Offset, room geometry.Size) error {
	w.offset = position
	return nil
}

func (w *Wrap) Render(ctx RenderContext) error { return nil }

func (w *Wrap) Iter() []Layout { return nil }
