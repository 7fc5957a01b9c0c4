package element

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solenne-labs/pagekit/internal/kernel/axis"
	"github.com/solenne-labs/pagekit/internal/kernel/dimension"
	"github.com/solenne-labs/pagekit/internal/kernel/geometry"
	"github.com/solenne-labs/pagekit/internal/kernel/style"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

// leafBox builds a childless Box used as a fixed-size test fixture.
func leafBox(w unit.Unit) *Box {
	return NewBox(axis.Horizontal).Size(dimension.DimFixed(w))
}

func u(v int64) unit.Unit { return unit.Unit(v) }

// Three fixed-width children, gap 2, align start.
func TestBoxTripleFixedWithGap(t *testing.T) {
	box1 := leafBox(u(15))
	box2 := leafBox(u(18))
	box3 := leafBox(u(16))

	st := style.NewBuilder().
		WithAlignItems(style.AlignStart).
		WithHorizontalGap(u(2)).
		Build()

	outer := NewBox(axis.Horizontal).Style(st).Child(box1).Child(box2).Child(box3)

	ctx := fakeMeasureContext{}
	assert.NoError(t, outer.LayOut(ctx, geometry.NewOffset(u(10), u(10)), geometry.SizeFixed(u(190), u(277))))

	assert.Equal(t, u(53), outer.SizeRef().Width())
	assert.Equal(t, u(0), outer.SizeRef().Height())
	assert.Equal(t, u(53), outer.ContentSize().Width())
	assert.Equal(t, u(0), outer.ContentSize().Height())

	children := outer.Iter()
	assert.Equal(t, u(10), children[0].OffsetRef().X)
	assert.Equal(t, u(15), children[0].SizeRef().Width())

	assert.Equal(t, u(27), children[1].OffsetRef().X)
	assert.Equal(t, u(18), children[1].SizeRef().Width())

	assert.Equal(t, u(47), children[2].OffsetRef().X)
	assert.Equal(t, u(16), children[2].SizeRef().Width())
}

// Scenario 2: grow weights 1/3/1 distribute the 190-wide box's full slack.
func TestBoxTripleGrowDistribution(t *testing.T) {
	box1 := leafBox(u(15)).Grow(unit.NewFill(1))
	box2 := leafBox(u(18)).Grow(unit.NewFill(3))
	box3 := leafBox(u(16)).Grow(unit.NewFill(1))

	st := style.NewBuilder().WithAlignItems(style.AlignStart).Build()
	outer := NewBox(axis.Horizontal).Style(st).Child(box1).Child(box2).Child(box3)

	ctx := fakeMeasureContext{}
	assert.NoError(t, outer.LayOut(ctx, geometry.NewOffset(u(10), u(10)), geometry.SizeFixed(u(190), u(277))))

	assert.Equal(t, u(190), outer.SizeRef().Width())

	children := outer.Iter()
	assert.Equal(t, u(10), children[0].OffsetRef().X)
	assert.Equal(t, u(43), children[0].SizeRef().Width())

	assert.Equal(t, u(53), children[1].OffsetRef().X)
	assert.Equal(t, u(103), children[1].SizeRef().Width())

	assert.Equal(t, u(156), children[2].OffsetRef().X)
	assert.Equal(t, u(44), children[2].SizeRef().Width())
}

// Scenario 3: three 80-wide children wrap onto two lines inside a 190-wide box.
func TestBoxWrapIntoTwoLines(t *testing.T) {
	box1 := leafBox(u(80)).CrossSize(dimension.DimFixed(u(10)))
	box2 := leafBox(u(80)).CrossSize(dimension.DimFixed(u(15)))
	box3 := leafBox(u(80)).CrossSize(dimension.DimFixed(u(20)))

	st := style.NewBuilder().WithAlignItems(style.AlignStart).Build()
	outer := NewBox(axis.Horizontal).Style(st).Child(box1).Child(box2).Child(box3)

	ctx := fakeMeasureContext{}
	assert.NoError(t, outer.LayOut(ctx, geometry.NewOffset(u(10), u(10)), geometry.SizeFixed(u(190), u(277))))

	assert.Equal(t, u(160), outer.SizeRef().Width())
	assert.Equal(t, u(35), outer.SizeRef().Height())

	children := outer.Iter()
	assert.Equal(t, u(10), children[0].OffsetRef().X)
	assert.Equal(t, u(10), children[0].OffsetRef().Y)

	assert.Equal(t, u(90), children[1].OffsetRef().X)
	assert.Equal(t, u(10), children[1].OffsetRef().Y)

	assert.Equal(t, u(10), children[2].OffsetRef().X)
	assert.Equal(t, u(25), children[2].OffsetRef().Y)
}

// Scenario 4: centered cross alignment inside a cross-growing box.
func TestBoxCenterAlignment(t *testing.T) {
	box1 := leafBox(u(15)).CrossSize(dimension.DimFixed(u(7)))

	st := style.NewBuilder().WithAlignItems(style.AlignCenter).Build()
	outer := NewBox(axis.Horizontal).Child(box1).CrossGrow(unit.NewFill(1)).Style(st)

	ctx := fakeMeasureContext{}
	room := geometry.SizeFixedDepth(u(190), u(277), u(3))
	assert.NoError(t, outer.LayOut(ctx, geometry.NewOffset(u(10), u(10)), room))

	assert.Equal(t, u(277), outer.SizeRef().Height())

	child := outer.Iter()[0]
	assert.Equal(t, u(10), child.OffsetRef().X)
	assert.Equal(t, u(145), child.OffsetRef().Y)
}

// Scenario 5: baseline alignment of three children with depths 5/7/2, cross
// sizes 20/30/15, against a room whose ascent is 30 (277 - 247).
func TestBoxBaselineAlignment(t *testing.T) {
	box1 := leafBox(u(40)).CrossSize(dimension.DimFixed(u(20))).Depth(u(5))
	box2 := leafBox(u(40)).CrossSize(dimension.DimFixed(u(30))).Depth(u(7))
	box3 := leafBox(u(40)).CrossSize(dimension.DimFixed(u(15))).Depth(u(2))

	st := style.NewBuilder().WithAlignItems(style.AlignBaseline).Build()
	outer := NewBox(axis.Horizontal).Style(st).Child(box1).Child(box2).Child(box3)

	ctx := fakeMeasureContext{}
	room := geometry.SizeFixedDepth(u(190), u(277), u(247))
	assert.NoError(t, outer.LayOut(ctx, geometry.NewOffset(u(10), u(10)), room))

	assert.Equal(t, u(120), outer.SizeRef().Width())
	assert.Equal(t, u(30), outer.SizeRef().Height())

	children := outer.Iter()
	assert.Equal(t, u(18), children[0].OffsetRef().Y)
	assert.Equal(t, u(10), children[1].OffsetRef().Y)
	assert.Equal(t, u(20), children[2].OffsetRef().Y)
}

// Scenario 6: a square(4) padding on a full-width box with one 28-wide child.
func TestBoxPaddingNarrowWiden(t *testing.T) {
	box1 := leafBox(u(28))

	st := style.NewBuilder().
		WithWidthParent(unit.FillFull()).
		WithPadding(geometry.QuadSquare(u(4))).
		Build()

	outer := NewBox(axis.Horizontal).Style(st).Child(box1)

	ctx := fakeMeasureContext{}
	room := geometry.SizeFixed(u(190), u(277))
	assert.NoError(t, outer.Measure(ctx, room))
	assert.NoError(t, outer.LayOut(ctx, geometry.NewOffset(u(10), u(10)), room))

	assert.Equal(t, u(10), outer.OffsetRef().X)
	assert.Equal(t, u(10), outer.OffsetRef().Y)
	assert.Equal(t, u(190), outer.SizeRef().Width())
	assert.Equal(t, u(8), outer.SizeRef().Height())

	child := outer.Iter()[0]
	assert.Equal(t, u(14), child.OffsetRef().X)
	assert.Equal(t, u(14), child.OffsetRef().Y)
	assert.Equal(t, u(28), child.SizeRef().Width())
	assert.Equal(t, u(0), child.SizeRef().Height())
}
