package render

import (
	"fmt"
	"image/png"
	"path/filepath"

	"github.com/solenne-labs/pagekit/instructions"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

// page is one physical sheet: an instructions.Layer canvas sized in device
// pixels, plus the page-break bookkeeping a RenderContext needs to decide
// whether a block still fits before it starts drawing it.
type page struct {
	index int
	layer *instructions.Layer
	opts  PageOptions

	// reserved marks that CheckPageBreak(forceReserve=true) has claimed
	// room on this page that hasn't been released yet.
	reserved bool
}

func newPage(index int, opts PageOptions) *page {
	w, h := opts.widthPx(), opts.heightPx()
	return &page{
		index: index,
		layer: instructions.NewLayer(w, h),
		opts:  opts,
	}
}

// pxPerUnit is the device pixels a single kernel Unit (1/1000mm) occupies at
// this page's DPI.
func (p *page) pxPerUnit() float64 {
	return float64(p.opts.DPI()) / 25.4 / 1000.0
}

// toPxX/toPxY convert a content-relative Unit coordinate to a device pixel
// coordinate on this page's layer, accounting for the margin offset.
func (p *page) toPxX(u unit.Unit) float64 {
	return float64(p.opts.pxFromUnit(p.opts.margin.LeftSize())) + float64(u)*p.pxPerUnit()
}

func (p *page) toPxY(u unit.Unit) float64 {
	return float64(p.opts.pxFromUnit(p.opts.margin.TopSize())) + float64(u)*p.pxPerUnit()
}

// contentHeightUnits is the usable content height of a page, in Units.
func (p *page) contentHeightUnits() unit.Unit {
	return p.opts.pageSize.Height()
}

// exportPath is where this page is written when the Renderer flushes it.
func (p *page) exportPath() string {
	return filepath.Join(p.opts.outputDir, fmt.Sprintf("page-%03d.png", p.index+1))
}

func (p *page) export() error {
	return p.layer.ExportPNG(p.exportPath(), png.BestCompression)
}
