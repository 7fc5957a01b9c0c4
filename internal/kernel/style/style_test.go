package style

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solenne-labs/pagekit/internal/kernel/dimension"
	"github.com/solenne-labs/pagekit/internal/kernel/geometry"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

func TestInheritCascadesFontAndColor(t *testing.T) {
	parent := NewBuilder().
		WithFontName("serif").
		WithFontSize(unit.Pt(12)).
		WithColor(Color{R: 10, G: 20, B: 30, A: 255}).
		Build()

	child := NewBareBuilder().WithFontSize(unit.Pt(8)).Build()
	inherited := child.Inherit(parent)

	name := inherited.Font().Name()
	assert.NotNil(t, name)
	assert.Equal(t, "serif", *name)

	// The child's own size wins over the parent's.
	assert.Equal(t, unit.Pt(8), *inherited.Font().Size())
	assert.Equal(t, uint8(10), inherited.Color().R)
}

func TestInheritDoesNotCascadePerNodeFields(t *testing.T) {
	parent := NewBareBuilder().
		WithWidth(unit.Unit(100)).
		WithPadding(geometry.QuadSquare(unit.Unit(4))).
		WithGrow(unit.NewFill(2)).
		WithWrap(false).
		Build()

	inherited := NewBareBuilder().Build().Inherit(parent)

	assert.True(t, inherited.Width().IsContent())
	assert.Nil(t, inherited.Padding().Top())
	assert.Nil(t, inherited.Grow())
	assert.Nil(t, inherited.Wrap())
}

func TestInheritBaselineAlignmentCascades(t *testing.T) {
	baseline := NewBareBuilder().WithAlignItems(AlignBaseline).Build()
	center := NewBareBuilder().WithAlignItems(AlignCenter).Build()

	// Baseline is the only alignment that flows into a child that left
	// align-items unset.
	fromBaseline := NewBareBuilder().Build().Inherit(baseline)
	assert.Equal(t, AlignBaseline, fromBaseline.AlignItemsOrDefault())

	fromCenter := NewBareBuilder().Build().Inherit(center)
	assert.Equal(t, AlignStart, fromCenter.AlignItemsOrDefault())

	// A child's own alignment always wins.
	ownEnd := NewBareBuilder().WithAlignItems(AlignEnd).Build().Inherit(baseline)
	assert.Equal(t, AlignEnd, ownEnd.AlignItemsOrDefault())
}

func TestMergePresentFieldWins(t *testing.T) {
	base := NewBareBuilder().
		WithWidth(unit.Unit(50)).
		WithColor(Color{R: 1, A: 255}).
		WithBorder(BorderSquare(NewStroke(Black(), unit.Pt(1)))).
		Build()

	overlay := NewBareBuilder().WithWidth(unit.Unit(80)).Build()
	merged := overlay.Merge(base)

	// Overlay's width wins; everything it leaves unset falls back to base,
	// including per-node fields Inherit would have dropped.
	assert.Equal(t, unit.Unit(80), *merged.Width().Size())
	assert.Equal(t, uint8(1), merged.Color().R)
	assert.NotNil(t, merged.BorderTop())
}

func TestApplyToSizeFillsOnlyUnsetSlots(t *testing.T) {
	st := NewBareBuilder().
		WithWidth(unit.Unit(100)).
		WithHeight(unit.Unit(40)).
		WithMinWidth(unit.Unit(10)).
		WithGrow(unit.NewFill(3)).
		Build()

	sz := geometry.SizeNone()
	sz.XDim().SetBase(dimension.DimFixed(unit.Unit(77)))

	ApplyToSize(&sz, true, st)

	// An explicit builder setting survives; unset slots adopt the style's.
	assert.Equal(t, unit.Unit(77), sz.Width())
	assert.Equal(t, unit.Unit(40), sz.Height())
	assert.Equal(t, unit.Unit(10), *sz.XDim().Min.Size())
	assert.Equal(t, unit.NewFill(3), *sz.XDim().Grow)

	// Grow is a main-axis weight; the cross dim never receives it.
	assert.Nil(t, sz.YDim().Grow)
}

func TestApplyToSizeVerticalAxisGrow(t *testing.T) {
	st := NewBareBuilder().WithGrow(unit.NewFill(2)).Build()

	sz := geometry.SizeNone()
	ApplyToSize(&sz, false, st)

	assert.Nil(t, sz.XDim().Grow)
	assert.Equal(t, unit.NewFill(2), *sz.YDim().Grow)
}
