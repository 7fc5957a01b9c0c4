package element

import (
	"github.com/solenne-labs/pagekit/internal/kernel/geometry"
	"github.com/solenne-labs/pagekit/internal/kernel/style"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

// PageBreak is a Wrap-shaped marker (infinite along the vertical axis only, so
// it forces a line break in a vertical container; in a horizontal container
// its main-axis size is zero and it does not break the line) that also asks
// the render sink for a new page when the finalized tree is rendered.
type PageBreak struct {
	mark   string
	offset geometry.Offset
	size   geometry.Size
	st     *style.Style
}

func NewPageBreak() *PageBreak {
	return &PageBreak{
		size: geometry.SizeFixed(unit.Zero(), unit.Infinity()),
		st:   style.NewBareBuilder().Build(),
	}
}

func (p *PageBreak) WithMark(mark string) *PageBreak { p.mark = mark; return p }

func (p *PageBreak) Element() string { return "PageBreak" }
func (p *PageBreak) Mark() string { return p.mark }
func (p *PageBreak) OffsetRef() geometry.Offset { return p.offset }
func (p *PageBreak) SetOffset(o geometry.Offset) { p.offset = o }
func (p *PageBreak) SizeRef() geometry.Size { return p.size }
func (p *PageBreak) SetSize(s geometry.Size) { p.size = s }
func (p *PageBreak) NativeSize() *geometry.Size { return nil }
func (p *PageBreak) SizeAfterWrapRef() geometry.Size { return geometry.SizeNone() }
func (p *PageBreak) SizeAfterLayOut() geometry.Size { return geometry.SizeNone() }
func (p *PageBreak) ContentSize() *geometry.Size { return nil }

func (p *PageBreak) StyleRef() *style.Style { return p.st }
func (p *PageBreak) SetStyle(st *style.Style) { p.st = st }

func (p *PageBreak) Measure(ctx MeasureContext, room geometry.Size) error { return nil }

func (p *PageBreak) LayOut(ctx MeasureContext, position geometry.Offset, room geometry.Size) error {
	p.offset = position
	return nil
}

// Render requests a new page from the sink, unconditionally.
func (p *PageBreak) Render(ctx RenderContext) error {
	ctx.NewPage(nil)
	return nil
}

func (p *PageBreak) Iter() []Layout { return nil }
