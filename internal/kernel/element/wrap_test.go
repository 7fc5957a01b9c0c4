package element

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solenne-labs/pagekit/internal/kernel/axis"
	"github.com/solenne-labs/pagekit/internal/kernel/dimension"
	"github.com/solenne-labs/pagekit/internal/kernel/geometry"
	"github.com/solenne-labs/pagekit/internal/kernel/style"
	"github.com/solenne-labs/pagekit/internal/kernel/typeset"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

// A Wrap marker forces a line break even when everything would have fit on
// one line.
func TestWrapForcesLineBreak(t *testing.T) {
	box1 := leafBox(u(20)).CrossSize(dimension.DimFixed(u(10)))
	box2 := leafBox(u(20)).CrossSize(dimension.DimFixed(u(10)))

	st := style.NewBuilder().WithAlignItems(style.AlignStart).Build()
	outer := NewBox(axis.Horizontal).Style(st).
		Child(box1).
		Child(NewWrap(axis.Horizontal)).
		Child(box2)

	ctx := fakeMeasureContext{}
	assert.NoError(t, outer.LayOut(ctx, geometry.NewOffset(u(10), u(10)), geometry.SizeFixed(u(190), u(277))))

	children := outer.Iter()
	assert.Equal(t, u(10), children[0].OffsetRef().Y)
	// box2 lands on a fresh line below box1 despite 20+20 fitting in 190.
	assert.Equal(t, u(10), children[2].OffsetRef().X)
	assert.Equal(t, u(20), children[2].OffsetRef().Y)
}

// A Filling with a grow weight soaks up the whole line's slack and records
// the room it received as its content size.
func TestFillingAbsorbsSlack(t *testing.T) {
	box1 := leafBox(u(30))
	box2 := leafBox(u(40))
	fill := NewFilling(axis.Horizontal).Grow(unit.NewFill(1))

	st := style.NewBuilder().WithAlignItems(style.AlignStart).Build()
	outer := NewBox(axis.Horizontal).Style(st).
		Child(box1).
		Child(fill).
		Child(box2)

	ctx := fakeMeasureContext{}
	assert.NoError(t, outer.LayOut(ctx, geometry.NewOffset(u(0), u(0)), geometry.SizeFixed(u(190), u(277))))

	// 190 - 30 - 40 leaves 120 for the spacer, pushing box2 to the right edge.
	assert.Equal(t, u(0), outer.Iter()[0].OffsetRef().X)
	assert.Equal(t, u(150), outer.Iter()[2].OffsetRef().X)

	assert.NotNil(t, fill.ContentSize())
	assert.Equal(t, u(120), fill.ContentSize().Width())
}

// PageBreak contributes nothing to geometry and requests a page from the
// sink only at render time.
func TestPageBreakRequestsPage(t *testing.T) {
	pb := NewPageBreak()

	after := pb.SizeAfterWrapRef()
	assert.Equal(t, unit.Zero(), after.Width())
	assert.Equal(t, unit.Zero(), after.Height())

	sink := &countingRenderContext{}
	assert.NoError(t, pb.Render(sink))
	assert.Equal(t, 1, sink.pages)
}

type countingRenderContext struct {
	fakeMeasureContext
	pages int
}

func (c *countingRenderContext) NewPage(*NewPageOptions) bool {
	c.pages++
	return true
}

func (c *countingRenderContext) CheckPageBreak(y, height unit.Unit, forceReserve bool) bool {
	return false
}

func (c *countingRenderContext) ReleasePageBreakReservation() {}

func (c *countingRenderContext) DebugFrame(geometry.Offset, geometry.Size) {}

func (c *countingRenderContext) Fill(geometry.Offset, geometry.Size, style.Color, *style.Shadow) {}

func (c *countingRenderContext) Line(from, to geometry.Offset, stroke style.Stroke) {}

func (c *countingRenderContext) Text(geometry.Offset, *style.Style, typeset.TextPosition, bool) {}
