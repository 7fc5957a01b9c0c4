package element

import (
	"github.com/solenne-labs/pagekit/internal/kernel/axis"
	"github.com/solenne-labs/pagekit/internal/kernel/dimension"
	"github.com/solenne-labs/pagekit/internal/kernel/geometry"
	"github.com/solenne-labs/pagekit/internal/kernel/style"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

// Box is the kernel's flexible container: a two-pass (measure, lay-out)
// flex-style box along a single main axis, with line wrapping, baseline
// alignment and padding/border bookkeeping. It is the workhorse node every
// other composite is built from.
type Box struct {
	base
	ax          axis.Axis
	breakInside bool
	children    []Layout
	contentSize *geometry.Size
}

// NewBox starts an empty box along ax with every size slot left auto
// (content-sized) and break-inside allowed.
func NewBox(ax axis.Axis) *Box {
	return &Box{
		base:        newBase(style.NewBareBuilder().Build()),
		ax:          ax,
		breakInside: true,
	}
}

func (b *Box) Element() string { return "Box" }
func (b *Box) ContentSize() *geometry.Size { return b.contentSize }
func (b *Box) Axis() axis.Axis { return b.ax }

func (b *Box) WithMark(mark string) *Box { b.mark = mark; return b }

// Size sets this box's main-axis basis.
func (b *Box) Size(d dimension.Dim) *Box {
	b.ax.Dim(&b.size).SetBase(d)
	return b
}

// AvoidBreak opts this box out of page-break insertion before its own
// content renders; see RenderContext.CheckPageBreak/NewPage.
func (b *Box) AvoidBreak() *Box { b.breakInside = false; return b }

func (b *Box) Min(m dimension.MaybeDim) *Box {
	b.ax.Dim(&b.size).SetMin(m)
	return b
}

func (b *Box) Max(m dimension.MaybeDim) *Box {
	b.ax.Dim(&b.size).SetMax(m)
	return b
}

func (b *Box) Grow(weight unit.Fill) *Box {
	b.ax.Dim(&b.size).SetGrow(weight)
	return b
}

func (b *Box) Shrink(weight unit.Fill) *Box {
	b.ax.Dim(&b.size).SetShrink(weight)
	return b
}

// Depth pins this box's baseline depth explicitly, meaningful only when its
// own children align on a baseline.
func (b *Box) Depth(depth unit.Unit) *Box {
	d := depth
	b.size.SetDepth(&d)
	return b
}

func (b *Box) CrossSize(d dimension.Dim) *Box {
	b.ax.Cross().Dim(&b.size).SetBase(d)
	return b
}

func (b *Box) CrossMin(m dimension.MaybeDim) *Box {
	b.ax.Cross().Dim(&b.size).SetMin(m)
	return b
}

func (b *Box) CrossMax(m dimension.MaybeDim) *Box {
	b.ax.Cross().Dim(&b.size).SetMax(m)
	return b
}

func (b *Box) CrossGrow(weight unit.Fill) *Box {
	b.ax.Cross().Dim(&b.size).SetGrow(weight)
	return b
}

func (b *Box) CrossShrink(weight unit.Fill) *Box {
	b.ax.Cross().Dim(&b.size).SetShrink(weight)
	return b
}

func (b *Box) Style(st *style.Style) *Box {
	b.SetStyle(st)
	return b
}

func (b *Box) AddStyle(st *style.Style) *Box {
	b.SetStyle(st.Merge(b.st))
	return b
}

// TakeOverPosition force-sets offset/size without going through measure/
// lay-out, used when a caller has already computed a box's placement.
func (b *Box) TakeOverPosition(offset geometry.Offset, size geometry.Size) {
	b.offset = offset
	b.size = size
}

// SetStyle cascades the new style onto every already-attached child (an
// already-inherited child re-inherits from the new style) and re-applies it
// to this box's own still-unset size slots. This is what makes restyling a
// parent after children have been attached still propagate correctly.
func (b *Box) SetStyle(st *style.Style) {
	for _, child := range b.children {
		child.SetStyle(child.StyleRef().Inherit(st))
	}
	style.ApplyToSize(&b.size, b.ax == axis.Horizontal, st)
	b.st = st
}

// Child attaches one child, inheriting this box's style into it before
// appending. Attach-time inheritance, not measure-time, is what makes a
// later Box.Style call on the parent still reach children added earlier.
func (b *Box) Child(child Layout) *Box {
	child.SetStyle(child.StyleRef().Inherit(b.st))
	b.children = append(b.children, child)
	return b
}

func (b *Box) Children(children []Layout) *Box {
	for _, child := range children {
		b.Child(child)
	}
	return b
}

// Text attaches a Text leaf built from the given string using the document
// default style cascade.
func (b *Box) Text(text string) *Box {
	return b.Child(NewText(text))
}

func (b *Box) Iter() []Layout { return b.children }

func (b *Box) Measure(ctx MeasureContext, room geometry.Size) error {
	ax := b.ax
	cross := ax.Cross()

	axisRoom := ax.Size(room)
	ax.Dim(&b.size).ResolveParented(axisRoom)

	crossRoom := cross.Size(room)
	cross.Dim(&b.size).ResolveParented(crossRoom)

	respectBaseline := b.StyleRef().AlignItemsOrDefault() == style.AlignBaseline
	selfSize := b.size
	b.StyleRef().Padding().Narrow(nil, &selfSize)

	var finalSize geometry.Size
	if len(b.children) == 0 {
		finalSize = selfSize
	} else {
		for _, child := range b.children {
			if err := child.Measure(ctx, room); err != nil {
				return err
			}
		}

		b.StyleRef().Padding().Narrow(nil, &room)
		axisRoomAvailable := ax.Dim(&selfSize).SizeAvailable(ax.Size(room))

		wrap := true
		if w := b.StyleRef().Wrap(); w != nil {
			wrap = *w
		} else {
			wrap = ax == axis.Horizontal
		}

		axisGap := ax.Select(b.StyleRef().HorizontalGapSize(), b.StyleRef().VerticalGapSize())
		crossGap := cross.Select(b.StyleRef().HorizontalGapSize(), b.StyleRef().VerticalGapSize())

		lines := pack(ax, b.children, axisRoomAvailable, axisGap, crossGap, wrap, respectBaseline)

		childrenSize := geometry.SizeNone()
		for index, line := range lines {
			dim := ax.Dim(&childrenSize)
			*dim = dim.MaxOf(*ax.Dim(&line.size))

			var withGap geometry.Size
			if index == 0 {
				withGap = geometry.SizeNone()
			} else {
				withGap = cross.ExtendDim(childrenSize, crossGap)
			}
			respectForLine := respectBaseline && (index == 0 || ax == axis.Horizontal)
			childrenSize = cross.ExtendSize(withGap, line.size, respectForLine)
		}

		if ax.Dim(&selfSize).IsFixed() {
			*ax.Dim(&childrenSize) = *ax.Dim(&selfSize)
		}
		if cross.Dim(&selfSize).IsFixed() {
			*cross.Dim(&childrenSize) = *cross.Dim(&selfSize)
		}

		finalSize = childrenSize
	}

	b.StyleRef().Padding().Widen(nil, &finalSize)

	ax.Dim(&b.size).ResolveContent(ax.Size(finalSize))
	cross.Dim(&b.size).ResolveContent(cross.Size(finalSize))
	if respectBaseline && b.size.Depth() == nil {
		b.size.SetDepth(finalSize.Depth())
	}

	return nil
}

func (b *Box) LayOut(ctx MeasureContext, offset geometry.Offset, room geometry.Size) error {
	b.StyleRef().Padding().Narrow(&offset, &room)

	size := b.size
	b.StyleRef().Padding().Narrow(nil, &size)

	ax := b.ax
	cross := ax.Cross()
	crossTakesNative := cross.Dim(&size).IsContentFixed()

	axisRoom := ax.Size(room)
	axisSize := ax.Dim(&size).SizeAvailable(axisRoom)

	crossRoom := cross.Size(room)
	crossSize := cross.Dim(&size).SizeAvailable(crossRoom)

	wrap := ax == axis.Horizontal
	if w := b.StyleRef().Wrap(); w != nil {
		wrap = *w
	}
	alignItems := b.StyleRef().AlignItemsOrDefault()

	axisGap := ax.Select(b.StyleRef().HorizontalGapSize(), b.StyleRef().VerticalGapSize())
	crossGap := cross.Select(b.StyleRef().HorizontalGapSize(), b.StyleRef().VerticalGapSize())

	selfAscent := b.SizeAfterWrapRef().Ascent()
	if alignItems == style.AlignBaseline && room.Depth() != nil && selfAscent != nil {
		selfToParentAscent := unit.SubUnit(room.Ascent(), selfAscent)
		if selfToParentAscent != nil {
			offset.YAdvance(*selfToParentAscent)
		}
	}

	lines := pack(ax, b.children, axisSize, axisGap, crossGap, wrap, alignItems == style.AlignBaseline)

	position := offset
	contentSize := geometry.SizeZero()
	var firstAscent *unit.Unit
	multiLine := len(lines) > 1

	for lineIndex, line := range lines {
		nativeLineSize := line.size

		if lineIndex == 0 {
			if ax == axis.Horizontal {
				if alignItems == style.AlignBaseline && selfAscent != nil && nativeLineSize.Ascent() != nil {
					firstLineToSelfAscent := unit.SubUnit(selfAscent, nativeLineSize.Ascent())
					if firstLineToSelfAscent != nil {
						offset.YAdvance(*firstLineToSelfAscent)
					}
				}
				firstAscent = orUnitPtr(selfAscent, nativeLineSize.Ascent())
			}
		} else {
			position = cross.AdvanceDim(position, crossGap)
			contentSize = cross.ExtendDim(contentSize, crossGap)
		}

		roomToDistribute := axisSize - ax.Size(nativeLineSize)
		sumGrow := ax.Dim(&nativeLineSize).Grow
		sumShrink := ax.Dim(&nativeLineSize).Shrink

		var lineCrossRoom unit.Unit
		if multiLine || crossTakesNative {
			lineCrossRoom = cross.Size(nativeLineSize)
		} else {
			lineCrossRoom = crossSize
		}

		ax.SetOffset(&position, ax.Offset(offset))
		lineSize := geometry.SizeZero()

		for childIndex, child := range line.content {
			isFirst := childIndex == 0
			if isFirst {
				if ax == axis.Vertical {
					firstAscent = optionMaxUnit(firstAscent, child.SizeAfterWrapRef().Ascent())
				}
			} else {
				position = ax.AdvanceDim(position, axisGap)
				lineSize = ax.ExtendDim(lineSize, axisGap)
			}

			childSize := child.SizeAfterWrapRef()

			childAxisSize := ax.Dim(&childSize).SizeDistributed(roomToDistribute, sumGrow, sumShrink)

			lineCrossGrows := cross.Dim(&size).IsDyn()
			childCrossGrows := cross.Dim(&childSize).IsContentOrDyn()
			var childCrossSize unit.Unit
			if childCrossGrows && lineCrossGrows {
				childCrossSize = cross.Dim(&childSize).SizeAvailable(lineCrossRoom)
			} else {
				childCrossSize = cross.Dim(&childSize).SizeFilled(cross.Size(nativeLineSize))
			}

			childAscent := childSize.Ascent()

			childAxisOffset := unit.Zero()
			if alignItems == style.AlignBaseline && isFirst && ax == axis.Vertical && selfAscent != nil && childAscent != nil {
				childAxisOffset = *selfAscent - *childAscent
			}
			position = ax.AdvanceDim(position, childAxisOffset)

			childCrossOffset := unit.Zero()
			switch {
			case alignItems == style.AlignStart:
				childCrossOffset = unit.Zero()
			case alignItems == style.AlignCenter:
				childCrossOffset = (lineCrossRoom - childCrossSize).MulScalar(0.5)
			case alignItems == style.AlignEnd:
				childCrossOffset = lineCrossRoom - childCrossSize
			case alignItems == style.AlignBaseline && ax == axis.Horizontal:
				if la, ca := nativeLineSize.Ascent(), childAscent; la != nil && ca != nil {
					childCrossOffset = *la - *ca
				}
			case alignItems == style.AlignBaseline && ax == axis.Vertical:
				childCrossOffset = unit.Zero()
			}

			crossOffsettedPosition := cross.AdvanceDim(position, childCrossOffset)

			var width, height unit.Unit
			if ax == axis.Horizontal {
				width, height = childAxisSize, childCrossSize
			} else {
				width, height = childCrossSize, childAxisSize
			}
			var childFinalSize geometry.Size
			if childDepth := childSize.Depth(); childDepth != nil {
				childFinalSize = geometry.SizeFixedDepth(width, height, *childDepth)
			} else {
				childFinalSize = geometry.SizeFixed(width, height)
			}

			if err := child.LayOut(ctx, crossOffsettedPosition, childFinalSize); err != nil {
				return err
			}

			lineChildSize := child.SizeAfterLayOut()
			lineChildSize = ax.ExtendDim(lineChildSize, childAxisOffset)
			lineChildSize = cross.ExtendDim(lineChildSize, childCrossOffset)

			position = ax.AdvanceDim(position, childAxisSize)
			lineSize = ax.ExtendSize(lineSize, lineChildSize, alignItems == style.AlignBaseline)
		}

		position = cross.AdvanceDim(position, cross.Size(lineSize))
		contentSize = cross.ExtendSize(contentSize, lineSize, alignItems == style.AlignBaseline)
	}

	ax.ResolveContentSize(&size, contentSize, axisRoom)
	cross.ResolveContentSize(&size, contentSize, crossRoom)

	cs := contentSize
	b.contentSize = &cs

	b.StyleRef().Padding().Widen(&offset, &size)

	b.offset = offset
	b.size = size

	if b.size.Depth() == nil && firstAscent != nil {
		h := b.size.Height() - *firstAscent
		b.size.SetDepth(&h)
	}

	return nil
}

func (b *Box) Render(ctx RenderContext) error {
	if !b.breakInside {
		ctx.NewPage(newPageOptionsBreakIfNotRoom(b.offset, b.size))
	}

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

	return nil
}

func newPageOptionsBreakIfNotRoom(offset geometry.Offset, size geometry.Size) *NewPageOptions {
	opts := NewPageOptionsNew().WithBreakIfNotRoom(offset, size)
	return &opts
}

func orUnitPtr(a, b *unit.Unit) *unit.Unit {
	if a != nil {
		return a
	}
	return b
}

// optionMaxUnit returns the larger of two optional units, treating nil as
// smaller than any present value.
func optionMaxUnit(a, b *unit.Unit) *unit.Unit {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case *b > *a:
		return b
	default:
		return a
	}
}
