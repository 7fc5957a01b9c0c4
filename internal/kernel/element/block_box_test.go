package element

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solenne-labs/pagekit/internal/kernel/axis"
	"github.com/solenne-labs/pagekit/internal/kernel/geometry"
	"github.com/solenne-labs/pagekit/internal/kernel/style"
	"github.com/solenne-labs/pagekit/internal/kernel/typeset"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

// fakeMeasureContext stands in for the ambient typesetter: every glyph run
// shapes to a fixed 3em-wide, 1em-tall, no-depth box regardless of input,
// which is enough to exercise line packing deterministically without a real
// font backend.
type fakeMeasureContext struct{}

func (fakeMeasureContext) Style() *style.Style { return style.NewDefault() }

func (fakeMeasureContext) Typeset(st *style.Style, text string) (typeset.TextPosition, error) {
	return typeset.TextPosition{Width: unit.Em(3), Height: unit.Em(1), Depth: unit.Em(0)}, nil
}

func TestTextInBlockBoxFromZero(t *testing.T) {
	ctx := fakeMeasureContext{}

	t1 := NewText("a")
	t2 := NewText("b")
	t2.SetOffset(geometry.NewOffset(unit.Unit(156000), unit.Unit(256000)))
	t3 := NewText("c")

	bbox := NewBlockBox().
		Style(style.NewDefault()).
		Child(t1).
		Child(t2).
		Child(t3)

	room := geometry.SizeFixed(unit.Unit(1000000), unit.Unit(2000000))
	assert.NoError(t, bbox.Measure(ctx, room))
	assert.NoError(t, bbox.LayOut(ctx, geometry.NewOffset(0, 0), room))

	children := bbox.Iter()

	assert.Equal(t, unit.Unit(0), children[0].OffsetRef().X)
	assert.Equal(t, unit.Unit(0), children[0].OffsetRef().Y)

	assert.Equal(t, unit.Unit(156000), children[1].OffsetRef().X)
	assert.Equal(t, unit.Unit(256000), children[1].OffsetRef().Y)

	assert.Equal(t, unit.Unit(0), children[2].OffsetRef().X)
	assert.Equal(t, unit.Unit(0), children[2].OffsetRef().Y)
}

func TestTextInBlockBoxFromOffset(t *testing.T) {
	ctx := fakeMeasureContext{}

	t1 := NewText("a")
	t2 := NewText("b")
	t2.SetOffset(geometry.NewOffset(unit.Unit(156000), unit.Unit(256000)))
	t3 := NewText("c")

	bbox := NewBlockBox().
		Style(style.NewDefault()).
		Child(t1).
		Child(t2).
		Child(t3)

	room := geometry.SizeFixed(unit.Unit(1000000), unit.Unit(2000000))
	assert.NoError(t, bbox.Measure(ctx, room))
	assert.NoError(t, bbox.LayOut(ctx, geometry.NewOffset(unit.Unit(100000), unit.Unit(100000)), room))

	children := bbox.Iter()

	assert.Equal(t, unit.Unit(100000), children[0].OffsetRef().X)
	assert.Equal(t, unit.Unit(100000), children[0].OffsetRef().Y)

	assert.Equal(t, unit.Unit(256000), children[1].OffsetRef().X)
	assert.Equal(t, unit.Unit(356000), children[1].OffsetRef().Y)

	assert.Equal(t, unit.Unit(100000), children[2].OffsetRef().X)
	assert.Equal(t, unit.Unit(100000), children[2].OffsetRef().Y)
}

func TestTextInHBoxInBlockBoxFromZero(t *testing.T) {
	ctx := fakeMeasureContext{}

	t1 := NewText("a").WithMark("t1")
	t2 := NewText("b").WithMark("t2")
	t3 := NewText("c").WithMark("t3")

	h := NewBox(axis.Horizontal).WithMark("h2").Child(t1).Child(t2).Child(t3)
	bbox := NewBlockBox().Style(style.NewDefault()).WithMark("h1").Child(h)

	room := geometry.SizeFixed(unit.Unit(1000000), unit.Unit(2000000))
	assert.NoError(t, bbox.Measure(ctx, room))
	assert.NoError(t, bbox.LayOut(ctx, geometry.NewOffset(0, 0), room))

	// A default 10pt style over fakeMeasureContext's fixed 3em-wide glyph
	// run yields one fixed per-character advance with no gap between them.
	charWidth := unit.UnitFromPt(unit.Em(3).MulPt(unit.Pt(10)))

	children := bbox.Iter()[0].Iter()

	assert.Equal(t, unit.Unit(0), children[0].OffsetRef().X)
	assert.Equal(t, unit.Unit(0), children[0].OffsetRef().Y)

	assert.Equal(t, charWidth, children[1].OffsetRef().X)
	assert.Equal(t, unit.Unit(0), children[1].OffsetRef().Y)

	assert.Equal(t, charWidth.MulScalar(2), children[2].OffsetRef().X)
	assert.Equal(t, unit.Unit(0), children[2].OffsetRef().Y)
}

func TestTextInVBoxInBlockBox(t *testing.T) {
	ctx := fakeMeasureContext{}

	t1 := NewText("a")
	t2 := NewText("b")
	t3 := NewText("c")

	v := NewBox(axis.Vertical).Child(t1).Child(t2).Child(t3)
	bbox := NewBlockBox().Style(style.NewDefault()).Child(v)

	room := geometry.SizeFixed(unit.Unit(1000000), unit.Unit(2000000))
	assert.NoError(t, bbox.Measure(ctx, room))
	assert.NoError(t, bbox.LayOut(ctx, geometry.NewOffset(0, 0), room))

	charHeight := unit.UnitFromPt(unit.Em(1).MulPt(unit.Pt(10)))

	children := bbox.Iter()[0].Iter()

	assert.Equal(t, unit.Unit(0), children[0].OffsetRef().X)
	assert.Equal(t, unit.Unit(0), children[0].OffsetRef().Y)

	assert.Equal(t, unit.Unit(0), children[1].OffsetRef().X)
	assert.Equal(t, charHeight, children[1].OffsetRef().Y)

	assert.Equal(t, unit.Unit(0), children[2].OffsetRef().X)
	assert.Equal(t, charHeight.MulScalar(2), children[2].OffsetRef().Y)
}
