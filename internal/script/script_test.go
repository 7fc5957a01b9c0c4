package script

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solenne-labs/pagekit/internal/kernel/axis"
	"github.com/solenne-labs/pagekit/internal/kernel/element"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

func TestBuildHBoxWithChildren(t *testing.T) {
	n := HBox([]Format{Grow(unit.NewFill(1))},
		Text(nil, "a"),
		HSpace(unit.Unit(5000)),
		Text(nil, "b"),
	)

	built := Build(n)
	box, ok := built.(*element.Box)
	assert.True(t, ok)
	assert.Equal(t, axis.Horizontal, box.Axis())
	assert.Len(t, box.Iter(), 3)

	_, isFilling := box.Iter()[1].(*element.Filling)
	assert.True(t, isFilling)
}

func TestBuildVBoxWithFillAndSpace(t *testing.T) {
	n := VBox(nil,
		VSpace(unit.Unit(1000)),
		VFill(unit.NewFill(2)),
	)

	built := Build(n)
	box, ok := built.(*element.Box)
	assert.True(t, ok)
	assert.Equal(t, axis.Vertical, box.Axis())
	assert.Len(t, box.Iter(), 2)
}

func TestBuildBBoxNested(t *testing.T) {
	n := BBox([]Format{WidthParent(unit.FillFull())},
		HBox(nil, Text(nil, "x")),
	)

	built := Build(n)
	bbox, ok := built.(*element.BlockBox)
	assert.True(t, ok)
	assert.Len(t, bbox.Iter(), 1)

	inner, ok := bbox.Iter()[0].(*element.Box)
	assert.True(t, ok)
	assert.Len(t, inner.Iter(), 1)
}

func TestBuildTextAppliesFormat(t *testing.T) {
	n := Text([]Format{FontName("body"), Points(unit.Pt(12))}, "hello")

	built := Build(n)
	txt, ok := built.(*element.Text)
	assert.True(t, ok)

	st := txt.StyleRef()
	name := st.Font().Name()
	assert.NotNil(t, name)
	assert.Equal(t, "body", *name)
}
