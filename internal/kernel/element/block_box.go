package element

import (
	"github.com/rs/zerolog/log"

	"github.com/solenne-labs/pagekit/internal/kernel/axis"
	"github.com/solenne-labs/pagekit/internal/kernel/dimension"
	"github.com/solenne-labs/pagekit/internal/kernel/geometry"
	"github.com/solenne-labs/pagekit/internal/kernel/style"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

// BlockBox lays out its children at their own declared offsets instead of
// flowing them: each child keeps whatever Offset it carried in before being
// attached, and lay_out merely translates that offset by the block's own
// origin. It has no line packing, no wrap, no gap; it exists for the rare
// case of truly absolute placement inside an otherwise flow-based tree.
type BlockBox struct {
	mark        string
	offset      geometry.Offset
	size        geometry.Size
	st          *style.Style
	children    []Layout
	contentSize *geometry.Size
}

// NewBlockBox starts an empty, content-sized block container.
func NewBlockBox() *BlockBox {
	return &BlockBox{
		size: geometry.SizeContent(),
		st:   style.NewBareBuilder().Build(),
	}
}

func (b *BlockBox) WithMark(mark string) *BlockBox { b.mark = mark; return b }

func (b *BlockBox) AxisSize(d dimension.Dim) *BlockBox {
	axis.Horizontal.Dim(&b.size).SetBase(d)
	return b
}

func (b *BlockBox) AxisMin(m dimension.MaybeDim) *BlockBox {
	axis.Horizontal.Dim(&b.size).SetMin(m)
	return b
}

func (b *BlockBox) AxisMax(m dimension.MaybeDim) *BlockBox {
	axis.Horizontal.Dim(&b.size).SetMax(m)
	return b
}

func (b *BlockBox) AxisGrow(weight unit.Fill) *BlockBox {
	axis.Horizontal.Dim(&b.size).SetGrow(weight)
	return b
}

func (b *BlockBox) AxisShrink(weight unit.Fill) *BlockBox {
	axis.Horizontal.Dim(&b.size).SetShrink(weight)
	return b
}

// AxisDepth pins this block's baseline depth explicitly; only meaningful
// when its children align on a baseline; logs a warning otherwise.
func (b *BlockBox) AxisDepth(depth unit.Unit) *BlockBox {
	if b.st.AlignItemsOrDefault() != style.AlignBaseline {
		log.Warn().Msg("depth set for a block box whose items are not aligned on a baseline")
	}
	d := depth
	b.size.SetDepth(&d)
	return b
}

func (b *BlockBox) CrossSize(d dimension.Dim) *BlockBox {
	axis.Horizontal.Cross().Dim(&b.size).SetBase(d)
	return b
}

func (b *BlockBox) CrossMin(m dimension.MaybeDim) *BlockBox {
	axis.Horizontal.Cross().Dim(&b.size).SetMin(m)
	return b
}

func (b *BlockBox) CrossMax(m dimension.MaybeDim) *BlockBox {
	axis.Horizontal.Cross().Dim(&b.size).SetMax(m)
	return b
}

func (b *BlockBox) CrossGrow(weight unit.Fill) *BlockBox {
	axis.Horizontal.Cross().Dim(&b.size).SetGrow(weight)
	return b
}

func (b *BlockBox) CrossShrink(weight unit.Fill) *BlockBox {
	axis.Horizontal.Cross().Dim(&b.size).SetShrink(weight)
	return b
}

func (b *BlockBox) Style(st *style.Style) *BlockBox {
	b.SetStyle(st)
	return b
}

func (b *BlockBox) AddStyle(st *style.Style) *BlockBox {
	b.SetStyle(st.Merge(b.st))
	return b
}

// Child attaches one child at whatever offset it already carries, inheriting
// this block's style into it first.
func (b *BlockBox) Child(child Layout) *BlockBox {
	child.SetStyle(child.StyleRef().Inherit(b.st))
	b.children = append(b.children, child)
	return b
}

func (b *BlockBox) Children(children []Layout) *BlockBox {
	for _, child := range children {
		b.Child(child)
	}
	return b
}

func (b *BlockBox) Text(text string) *BlockBox {
	return b.Child(NewText(text))
}

func (b *BlockBox) Element() string { return "BlockBox" }
func (b *BlockBox) Mark() string { return b.mark }
func (b *BlockBox) OffsetRef() geometry.Offset { return b.offset }
func (b *BlockBox) SetOffset(o geometry.Offset) { b.offset = o }
func (b *BlockBox) SizeRef() geometry.Size { return b.size }
func (b *BlockBox) SetSize(s geometry.Size) { b.size = s }
func (b *BlockBox) NativeSize() *geometry.Size { return nil }
func (b *BlockBox) SizeAfterWrapRef() geometry.Size { return b.size }
func (b *BlockBox) SizeAfterLayOut() geometry.Size { return b.size }
func (b *BlockBox) ContentSize() *geometry.Size { return b.contentSize }

func (b *BlockBox) StyleRef() *style.Style { return b.st }

func (b *BlockBox) SetStyle(st *style.Style) {
	for _, child := range b.children {
		child.SetStyle(child.StyleRef().Inherit(st))
	}
	style.ApplyToSize(&b.size, true, st)
	b.st = st
}

func (b *BlockBox) Iter() []Layout { return b.children }

func (b *BlockBox) Measure(ctx MeasureContext, room geometry.Size) error {
	ax := axis.Horizontal
	cross := ax.Cross()

	ax.Dim(&b.size).ResolveParented(ax.Size(room))
	cross.Dim(&b.size).ResolveParented(cross.Size(room))

	var ascent *unit.Unit
	if len(b.children) == 0 {
		ascent = b.size.Ascent()
	} else {
		narrowed := room
		b.StyleRef().Padding().Narrow(nil, &narrowed)
		for _, child := range b.children {
			if err := child.Measure(ctx, narrowed); err != nil {
				return err
			}
		}
		ascent = b.children[0].SizeAfterWrapRef().Ascent()
	}

	respectBaseline := b.StyleRef().AlignItemsOrDefault() == style.AlignBaseline
	if respectBaseline && b.size.Depth() == nil {
		if ascent != nil {
			h := b.size.Height() - *ascent
			b.size.SetDepth(&h)
		}
	}

	return nil
}

func (b *BlockBox) LayOut(ctx MeasureContext, offset geometry.Offset, room geometry.Size) error {
	b.StyleRef().Padding().Narrow(&offset, &room)

	alignItems := b.StyleRef().AlignItemsOrDefault()
	selfAscent := b.SizeAfterWrapRef().Ascent()
	if alignItems == style.AlignBaseline && room.Depth() != nil && selfAscent != nil {
		if d := unit.SubUnit(room.Ascent(), selfAscent); d != nil {
			offset.YAdvance(*d)
		}
	}

	var ascent *unit.Unit
	if len(b.children) == 0 {
		ascent = b.size.Ascent()
	} else {
		for _, child := range b.children {
			childOffset := child.OffsetRef().Add(offset)
			if err := child.LayOut(ctx, childOffset, child.SizeRef()); err != nil {
				return err
			}
		}
		ascent = b.children[0].SizeAfterWrapRef().Ascent()
	}

	b.StyleRef().Padding().Widen(&offset, nil)
	b.offset = offset

	respectBaseline := b.StyleRef().AlignItemsOrDefault() == style.AlignBaseline
	if respectBaseline && b.size.Depth() == nil {
		if ascent != nil {
			h := b.size.Height() - *ascent
			b.size.SetDepth(&h)
		}
	}

	return nil
}

func (b *BlockBox) Render(ctx RenderContext) error {
	ctx.CheckPageBreak(b.offset.Y, b.size.Height(), true)

	st := b.StyleRef()
	if bg := st.BackgroundColor(); bg != nil {
		ctx.Fill(b.offset, b.size, *bg, st.Shadow())
	}

	for _, child := range b.children {
		if err := child.Render(ctx); err != nil {
			return err
		}
	}

	topLeft := b.offset
	bottomRight := topLeft.AddSize(b.size)

	if stroke := st.BorderTop(); stroke != nil {
		ctx.Line(topLeft, geometry.NewOffset(bottomRight.X, topLeft.Y), *stroke)
	}
	if stroke := st.BorderRight(); stroke != nil {
		ctx.Line(geometry.NewOffset(bottomRight.X, topLeft.Y), bottomRight, *stroke)
	}
	if stroke := st.BorderBottom(); stroke != nil {
		ctx.Line(bottomRight, geometry.NewOffset(topLeft.X, bottomRight.Y), *stroke)
	}
	if stroke := st.BorderLeft(); stroke != nil {
		ctx.Line(geometry.NewOffset(topLeft.X, bottomRight.Y), topLeft, *stroke)
	}

	ctx.DebugFrame(b.offset, b.size)

	ctx.ReleasePageBreakReservation()

	return nil
}
