package unit

import "testing"

import "github.com/stretchr/testify/assert"

func TestUnitBinOps(t *testing.T) {
	u1 := Unit(12)
	u2 := Unit(-6)

	assert.Equal(t, Unit(6), u1.Add(u2))
	assert.Equal(t, Unit(18), u1.Sub(u2))
	assert.Equal(t, Unit(24), u1.MulScalar(2.0))
	assert.Equal(t, Unit(6), u1.DivScalar(2.0))
}

func TestFillBinOps(t *testing.T) {
	f1 := Fill(12)
	f2 := Fill(6)

	assert.Equal(t, Fill(18), f1.Add(f2))
	assert.Equal(t, Fill(6), f1.Sub(f2))
	assert.Equal(t, Fill(24), f1.MulScalar(2.0))
	assert.Equal(t, Fill(6), f1.DivScalar(2.0))
	assert.Equal(t, Fill(0), f1.MulScalar(-2.0))
	assert.Equal(t, Fill(12000), f1.DivScalar(-2.0))
}

func TestUnitFillRatio(t *testing.T) {
	u := Unit(12)
	f := Fill(2)

	assert.Equal(t, Unit(24), u.MulRatio(f, FillEqual()))
	assert.Equal(t, Unit(6), u.MulRatio(FillEqual(), f))
}

func TestFillOpsWithOption(t *testing.T) {
	f1 := Fill(5)
	f2 := Fill(15)

	assert.Nil(t, AddFill(nil, nil))
	assert.Equal(t, Fill(5), *AddFill(&f1, nil))
	assert.Equal(t, Fill(15), *AddFill(nil, &f2))
	assert.Equal(t, Fill(20), *AddFill(&f1, &f2))

	assert.Nil(t, SubFill(nil, nil))
	assert.Equal(t, Fill(5), *SubFill(&f1, nil))
	assert.Equal(t, Fill(0), *SubFill(nil, &f2))
	assert.Equal(t, Fill(0), *SubFill(&f1, &f2))
}

func TestMmPtConversions(t *testing.T) {
	assert.InDelta(t, 10.0, float64(MmFromPt(PtFromMm(Mm(10.0)))), 1e-9)
	assert.Equal(t, Unit(10000), UnitFromMm(Mm(10.0)))
	assert.InDelta(t, 10.0, float64(MmFromUnit(Unit(10000))), 1e-9)
}
