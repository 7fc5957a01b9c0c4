package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solenne-labs/pagekit/internal/kernel/dimension"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

func TestOffsetConstructs(t *testing.T) {
	o := ZeroOffset()
	assert.Equal(t, unit.Unit(0), o.X)
	assert.Equal(t, unit.Unit(0), o.Y)
}

func TestOffsetAdvances(t *testing.T) {
	o := ZeroOffset()
	o.XAdvance(unit.Unit(10))
	assert.Equal(t, unit.Unit(10), o.X)
	assert.Equal(t, unit.Unit(0), o.Y)

	o2 := ZeroOffset()
	o2.YAdvance(unit.Unit(10))
	assert.Equal(t, unit.Unit(0), o2.X)
	assert.Equal(t, unit.Unit(10), o2.Y)
}

func TestSizeConstructs(t *testing.T) {
	s := SizeZero()
	assert.Equal(t, unit.Unit(0), s.Width())
	assert.Equal(t, unit.Unit(0), s.Height())

	s2 := SizeZero()
	s2.SetWidth(dimension.DimFixed(unit.Unit(10)))
	assert.Equal(t, unit.Unit(10), s2.Width())
	assert.Equal(t, unit.Unit(0), s2.Height())

	s3 := SizeZero()
	s3.SetHeight(dimension.DimFixed(unit.Unit(10)))
	assert.Equal(t, unit.Unit(0), s3.Width())
	assert.Equal(t, unit.Unit(10), s3.Height())

	s4 := SizeContent()
	assert.True(t, s4.XDim().IsContent())
	assert.True(t, s4.YDim().IsContent())

	d := unit.Unit(2)
	s4.SetDepth(&d)
	assert.Equal(t, unit.Unit(0), s4.Width())
	assert.Equal(t, unit.Unit(0), s4.Height())
	assert.Equal(t, unit.Unit(-2), s4.AscentSize())
}

func TestSizeMutWorks(t *testing.T) {
	s := SizeZero()
	s.XDim().SetBase(dimension.DimFixed(unit.Unit(10)))
	assert.Equal(t, unit.Unit(10), s.Width())
	assert.Equal(t, unit.Unit(0), s.Height())

	s2 := SizeZero()
	s2.YDim().SetBase(dimension.DimFixed(unit.Unit(10)))
	assert.Equal(t, unit.Unit(0), s2.Width())
	assert.Equal(t, unit.Unit(10), s2.Height())
}

func TestDepthAndAscent(t *testing.T) {
	s := SizeContent()
	s.SetHeight(dimension.DimFixed(unit.Unit(10)))
	d := unit.Unit(2)
	s.SetDepth(&d)

	assert.Equal(t, unit.Unit(10), s.Height())
	assert.Equal(t, unit.Unit(8), s.AscentSize())
}

func TestItExtends(t *testing.T) {
	size1 := SizeFixedDepth(unit.Unit(10), unit.Unit(12), unit.Unit(2))
	size2 := SizeFixedDepth(unit.Unit(20), unit.Unit(12), unit.Unit(3))

	a := size1
	a.XExtend(size2, true)
	assert.Equal(t, unit.Unit(30), a.Width())
	assert.Equal(t, unit.Unit(13), a.Height())
	assert.Equal(t, unit.Unit(10), a.AscentSize())

	b := size2
	b.XExtend(size1, true)
	assert.Equal(t, unit.Unit(30), b.Width())
	assert.Equal(t, unit.Unit(13), b.Height())
	assert.Equal(t, unit.Unit(10), b.AscentSize())

	c := size1
	c.YExtend(size2, true)
	assert.Equal(t, unit.Unit(20), c.Width())
	assert.Equal(t, unit.Unit(24), c.Height())
	assert.Equal(t, unit.Unit(22), c.AscentSize())

	d := size2
	d.YExtend(size1, true)
	assert.Equal(t, unit.Unit(20), d.Width())
	assert.Equal(t, unit.Unit(24), d.Height())
	assert.Equal(t, unit.Unit(21), d.AscentSize())
}

func TestQuadNarrowWiden(t *testing.T) {
	q := QuadHV(unit.Unit(5), unit.Unit(3))

	off := NewOffset(unit.Unit(10), unit.Unit(10))
	sz := SizeFixedDepth(unit.Unit(100), unit.Unit(50), unit.Unit(10))
	q.Narrow(&off, &sz)

	assert.Equal(t, unit.Unit(15), off.X)
	assert.Equal(t, unit.Unit(13), off.Y)
	assert.Equal(t, unit.Unit(90), sz.Width())
	assert.Equal(t, unit.Unit(44), sz.Height())
	assert.Equal(t, unit.Unit(7), *sz.Depth())

	q.Widen(&off, &sz)
	assert.Equal(t, unit.Unit(10), off.X)
	assert.Equal(t, unit.Unit(10), off.Y)
	assert.Equal(t, unit.Unit(100), sz.Width())
	assert.Equal(t, unit.Unit(50), sz.Height())
	assert.Equal(t, unit.Unit(10), *sz.Depth())
}

func TestQuadMerge(t *testing.T) {
	child := QuadEmpty().WithTop(unit.Unit(1))
	parent := QuadHV(unit.Unit(5), unit.Unit(5))

	merged := child.Merge(parent)
	assert.Equal(t, unit.Unit(1), merged.TopSize())
	assert.Equal(t, unit.Unit(5), merged.LeftSize())
	assert.Equal(t, unit.Unit(5), merged.BottomSize())
	assert.Equal(t, unit.Unit(5), merged.RightSize())
}
