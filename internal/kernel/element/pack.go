package element

import (
	"github.com/solenne-labs/pagekit/internal/kernel/axis"
	"github.com/solenne-labs/pagekit/internal/kernel/geometry"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

// packedLine is one line (a run of children that fit within wrapSize along
// the main axis before a break was forced) produced by pack.
type packedLine struct {
	// crossOffset is this line's position along the cross axis.
	crossOffset unit.Unit
	// size is the line's own bounding size (main axis: sum of children plus
	// gaps; cross axis: the extent of its tallest/widest child).
	size geometry.Size
	// content holds the children belonging to this line, in order.
	content []Layout
}

// pack greedily assigns each child to the current line, breaking to a new
// line whenever adding the next child (plus its pre-child gap) would exceed
// wrapSize along the main axis, unless wrap is false, in which case every
// child goes on a single line regardless of size. Each child's own offset is
// written as a line-relative Offset (the caller, generally Box.LayOut, later
// translates these into absolute page coordinates).
//
// The wrap decision consults NativeSize (falling back to SizeRef) so that
// Wrap/PageBreak marker nodes force a break wherever their size is infinite
// along the main axis: a Wrap along its own axis, a PageBreak along the
// vertical axis only (in a horizontal container it does not break the
// line); their contribution to the
// parent's own sizing comes from SizeAfterWrapRef, which for those two node
// kinds is zero.
func pack(ax axis.Axis, children []Layout, wrapSize, axisGap, crossGap unit.Unit, wrap, respectBaseline bool) []packedLine {
	if len(children) == 0 {
		return nil
	}

	var lines []packedLine

	offset := geometry.ZeroOffset()
	lineSize := geometry.SizeZero()
	var line []Layout

	effectiveWrapSize := wrapSize
	if !wrap {
		effectiveWrapSize = unit.Infinity()
	}

	for _, child := range children {
		lineGap := unit.Zero()
		if len(line) > 0 {
			lineGap = axisGap
		}

		childNative := nativeSizeOrRef(child)
		childAxisSize := ax.Size(childNative)

		if len(line) > 0 && ax.Size(lineSize)+lineGap+childAxisSize > effectiveWrapSize {
			crossAdvance := ax.Cross().Size(lineSize) + crossGap
			nextLineOffset := ax.Cross().AdvanceDim(offset, crossAdvance)

			lines = append(lines, packedLine{
				crossOffset: ax.Cross().Offset(offset),
				size:        lineSize,
				content:     line,
			})

			offset = nextLineOffset
			ax.SetOffset(&offset, unit.Zero())

			lineSize = geometry.SizeZero()
			line = nil
		} else if lineGap > unit.Zero() {
			offset = ax.AdvanceDim(offset, lineGap)
			lineSize = ax.ExtendDim(lineSize, lineGap)
		}

		lineSize = ax.ExtendSize(lineSize, childNative, respectBaseline)

		child.SetOffset(offset)
		offset = ax.AdvanceDim(offset, childAxisSize)

		line = append(line, child)
	}

	if len(line) > 0 {
		lines = append(lines, packedLine{
			crossOffset: ax.Cross().Offset(offset),
			size:        lineSize,
			content:     line,
		})
	}

	return lines
}
