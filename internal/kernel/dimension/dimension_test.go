package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

func TestItConstructs(t *testing.T) {
	none := FlexDimNone()
	assert.True(t, none.IsContent())
	assert.Nil(t, none.Base.Size())

	fixed := FlexDimFixed(unit.Unit(10))
	assert.True(t, fixed.IsFixed())
	assert.Equal(t, unit.Unit(10), fixed.BaseSize())

	parented := FlexDimParented(unit.NewFill(500))
	assert.True(t, parented.IsParented())
	assert.Nil(t, parented.Base.Size())
}

func TestItBuilds(t *testing.T) {
	d := FlexDimFixed(unit.Unit(10)).
		WithMin(MaybeDimFixed(unit.Unit(2))).
		WithMax(MaybeDimFixed(unit.Unit(20))).
		WithGrow(unit.NewFill(1)).
		WithShrink(unit.NewFill(2))

	assert.Equal(t, unit.Unit(10), d.BaseSize())
	assert.Equal(t, unit.Unit(2), *d.Min.Size())
	assert.Equal(t, unit.Unit(20), *d.Max.Size())
	assert.Equal(t, unit.NewFill(1), *d.Grow)
	assert.Equal(t, unit.NewFill(2), *d.Shrink)
}

func TestSizeIsZero(t *testing.T) {
	assert.Equal(t, unit.Zero(), FlexDimNone().BaseSize())
}

// TestItClamps: the LAST builder call wins whenever min/max/base conflict
// with each other.
func TestItClamps(t *testing.T) {
	a := FlexDimFixed(unit.Unit(10)).
		WithMin(MaybeDimFixed(unit.Unit(15))).
		WithMax(MaybeDimFixed(unit.Unit(5)))
	assert.Equal(t, unit.Unit(5), a.BaseSize())
	assert.Equal(t, unit.Unit(5), *a.Min.Size())
	assert.Equal(t, unit.Unit(5), *a.Max.Size())

	b := FlexDimFixed(unit.Unit(10)).
		WithMax(MaybeDimFixed(unit.Unit(5))).
		WithMin(MaybeDimFixed(unit.Unit(15)))
	assert.Equal(t, unit.Unit(15), b.BaseSize())
	assert.Equal(t, unit.Unit(15), *b.Min.Size())
	assert.Equal(t, unit.Unit(15), *b.Max.Size())
}

func TestMinMax(t *testing.T) {
	a := FlexDimFixed(unit.Unit(10))
	b := FlexDimFixed(unit.Unit(20))

	assert.Equal(t, unit.Unit(10), a.MinOf(b).BaseSize())
	assert.Equal(t, unit.Unit(20), a.MaxOf(b).BaseSize())
}

func fillPtr(v uint64) *unit.Fill {
	f := unit.NewFill(v)
	return &f
}

func TestBinaryOps(t *testing.T) {
	dim1 := FlexDimFixed(unit.Unit(10)).
		WithMin(MaybeDimFixed(unit.Unit(5))).
		WithMax(MaybeDimFixed(unit.Unit(15))).
		WithGrow(unit.NewFill(2)).
		WithShrink(unit.NewFill(1))

	dim2 := FlexDimFixed(unit.Unit(11)).
		WithMin(MaybeDimFixed(unit.Unit(4))).
		WithMax(MaybeDimFixed(unit.Unit(16))).
		WithGrow(unit.NewFill(1)).
		WithShrink(unit.NewFill(1))

	sum := dim1.Add(dim2)
	assert.Equal(t, unit.Unit(21), sum.BaseSize())
	assert.Equal(t, unit.Unit(9), *sum.Min.Size())
	assert.Equal(t, unit.Unit(31), *sum.Max.Size())
	assert.Equal(t, unit.NewFill(3), *sum.Grow)
	assert.Equal(t, unit.NewFill(2), *sum.Shrink)

	diff12 := dim1.Sub(dim2)
	assert.Equal(t, unit.Unit(-1), diff12.BaseSize())
	assert.Equal(t, unit.Unit(-1), *diff12.Min.Size())
	assert.Equal(t, unit.Unit(-1), *diff12.Max.Size())
	assert.Equal(t, unit.NewFill(1), *diff12.Grow)
	assert.Equal(t, unit.NewFill(0), *diff12.Shrink)

	diff21 := dim2.Sub(dim1)
	assert.Equal(t, unit.Unit(1), diff21.BaseSize())
	assert.Equal(t, unit.Unit(-1), *diff21.Min.Size())
	assert.Equal(t, unit.Unit(1), *diff21.Max.Size())
	assert.Equal(t, unit.NewFill(0), *diff21.Grow)
	assert.Equal(t, unit.NewFill(0), *diff21.Shrink)

	addUnit := dim1.AddUnit(unit.Unit(2))
	assert.Equal(t, unit.Unit(12), addUnit.BaseSize())
	assert.Equal(t, unit.Unit(5), *addUnit.Min.Size())
	assert.Equal(t, unit.Unit(15), *addUnit.Max.Size())
	assert.Equal(t, unit.NewFill(2), *addUnit.Grow)
	assert.Equal(t, unit.NewFill(1), *addUnit.Shrink)

	subUnit := dim1.SubUnit(unit.Unit(2))
	assert.Equal(t, unit.Unit(8), subUnit.BaseSize())
	assert.Equal(t, unit.Unit(5), *subUnit.Min.Size())
	assert.Equal(t, unit.Unit(15), *subUnit.Max.Size())

	scaled := dim1.MulScalar(2.0)
	assert.Equal(t, unit.Unit(20), scaled.BaseSize())
	assert.Equal(t, unit.Unit(10), *scaled.Min.Size())
	assert.Equal(t, unit.Unit(30), *scaled.Max.Size())
	assert.Equal(t, unit.NewFill(4), *scaled.Grow)
	assert.Equal(t, unit.NewFill(2), *scaled.Shrink)

	divided := dim1.DivScalar(2.0)
	assert.Equal(t, unit.Unit(5), divided.BaseSize())
	assert.Equal(t, unit.Unit(2), *divided.Min.Size())
	assert.Equal(t, unit.Unit(7), *divided.Max.Size())
	assert.Equal(t, unit.NewFill(1), *divided.Grow)
	assert.Equal(t, unit.NewFill(0), *divided.Shrink)

	negated := dim1.MulScalar(-2.0)
	assert.Equal(t, unit.Unit(0), negated.BaseSize())
	assert.Equal(t, unit.Unit(0), *negated.Min.Size())
	assert.Equal(t, unit.Unit(0), *negated.Max.Size())
	assert.Equal(t, unit.NewFill(0), *negated.Grow)
	assert.Equal(t, unit.NewFill(0), *negated.Shrink)
}

func TestItFillsSize(t *testing.T) {
	cases := []struct {
		name string
		dim  FlexDim
		room unit.Unit
		want unit.Unit
	}{
		{"no-grow-no-shrink-below", FlexDimFixed(unit.Unit(100)), unit.Unit(50), unit.Unit(100)},
		{"grow-no-max-above", FlexDimFixed(unit.Unit(100)).WithGrow(unit.NewFill(1)), unit.Unit(150), unit.Unit(150)},
		{"grow-max-clamped", FlexDimFixed(unit.Unit(100)).WithGrow(unit.NewFill(1)).WithMax(MaybeDimFixed(unit.Unit(120))), unit.Unit(150), unit.Unit(120)},
		{"equal-room", FlexDimFixed(unit.Unit(100)), unit.Unit(100), unit.Unit(100)},
		{"shrink-no-min-below", FlexDimFixed(unit.Unit(100)).WithShrink(unit.NewFill(1)), unit.Unit(50), unit.Unit(50)},
		{"shrink-min-clamped", FlexDimFixed(unit.Unit(100)).WithShrink(unit.NewFill(1)).WithMin(MaybeDimFixed(unit.Unit(75))), unit.Unit(50), unit.Unit(75)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.dim.SizeFilled(c.room))
		})
	}
}

func TestItDistributesSize(t *testing.T) {
	base := FlexDimFixed(unit.Unit(100)).WithGrow(unit.NewFill(1)).WithShrink(unit.NewFill(1))

	// zero slack -> base unchanged regardless of grow/shrink sums.
	assert.Equal(t, unit.Unit(100), base.SizeDistributed(unit.Zero(), fillPtr(1), fillPtr(1)))
	assert.Equal(t, unit.Unit(100), base.SizeDistributed(unit.Zero(), nil, nil))

	// positive slack, grow set and sumGrow present -> proportional share added.
	assert.Equal(t, unit.Unit(150), base.SizeDistributed(unit.Unit(100), fillPtr(2), nil))
	// positive slack but no grow weight on this dim -> unchanged.
	noGrow := FlexDimFixed(unit.Unit(100)).WithShrink(unit.NewFill(1))
	assert.Equal(t, unit.Unit(100), noGrow.SizeDistributed(unit.Unit(100), fillPtr(2), nil))
	// positive slack but sumGrow missing -> unchanged.
	assert.Equal(t, unit.Unit(100), base.SizeDistributed(unit.Unit(100), nil, nil))

	// negative slack, shrink set and sumShrink present -> proportional share subtracted.
	assert.Equal(t, unit.Unit(50), base.SizeDistributed(unit.Unit(-100), nil, fillPtr(2)))
	// negative slack but no shrink weight -> unchanged.
	noShrink := FlexDimFixed(unit.Unit(100)).WithGrow(unit.NewFill(1))
	assert.Equal(t, unit.Unit(100), noShrink.SizeDistributed(unit.Unit(-100), nil, fillPtr(2)))
	// negative slack but sumShrink missing -> unchanged.
	assert.Equal(t, unit.Unit(100), base.SizeDistributed(unit.Unit(-100), nil, nil))

	// shrink clamps to min via SizeFilled when the proportional result would undershoot.
	clampMin := FlexDimFixed(unit.Unit(100)).WithShrink(unit.NewFill(1)).WithMin(MaybeDimFixed(unit.Unit(90)))
	assert.Equal(t, unit.Unit(90), clampMin.SizeDistributed(unit.Unit(-100), nil, fillPtr(1)))
}

func TestResolveParentedOrder(t *testing.T) {
	// min, max and base all parented; they resolve in that strict order, and
	// each step only fills still-unresolved slots. Max keeps its own 300 even
	// though min resolved higher first, while base (resolving last) is raised
	// to the already-known min.
	d := FlexDim{
		Base: DimParent(unit.NewFill(500)),
		Min:  MaybeDimParent(unit.NewFill(800)),
		Max:  MaybeDimParent(unit.NewFill(300)),
	}
	d.ResolveParented(unit.Unit(1000))

	assert.Equal(t, unit.Unit(800), *d.Min.Size())
	assert.Equal(t, unit.Unit(300), *d.Max.Size())
	assert.Equal(t, unit.Unit(800), d.BaseSize())
}

func TestResolveContent(t *testing.T) {
	d := FlexDimContent()
	d.ResolveContent(unit.Unit(42))
	assert.Equal(t, unit.Unit(42), d.BaseSize())

	// Resolving twice is a no-op once the base is fixed in place... actually
	// Content stays Content kind, but Size() is now populated and idempotent.
	d.ResolveContent(unit.Unit(99))
	assert.Equal(t, unit.Unit(42), d.BaseSize())
}
