package render

import (
	"github.com/solenne-labs/pagekit/internal/kernel/geometry"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

// PageOptions configures the physical pages a Renderer produces: their size,
// margin, output resolution and where finished pages are written.
// Configuration lives on functional options, matching the teacher's own
// fluent-builder idiom elsewhere in this module (compare style.Builder).
type PageOptions struct {
	pageSize  geometry.Size
	margin    geometry.Quad
	dpi       float64
	outputDir string
	debug     bool
}

// Option mutates a PageOptions under construction.
type Option func(*PageOptions)

// A4 is the default page size: 210mm x 297mm.
func A4() geometry.Size {
	return geometry.SizeFixed(unit.UnitFromMm(210), unit.UnitFromMm(297))
}

// DefaultPageOptions is A4 at 96 DPI with a 20mm margin on every edge,
// writing pages into the current directory.
func DefaultPageOptions() PageOptions {
	return PageOptions{
		pageSize:  A4(),
		margin:    geometry.QuadSquare(unit.UnitFromMm(20)),
		dpi:       96,
		outputDir: ".",
	}
}

// NewPageOptions starts from DefaultPageOptions and applies opts in order.
func NewPageOptions(opts ...Option) PageOptions {
	o := DefaultPageOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPageSize sets the page's content area, in Units (1/1000mm).
func WithPageSize(size geometry.Size) Option {
	return func(o *PageOptions) { o.pageSize = size }
}

// WithMargin sets the blank border reserved around every page's content.
func WithMargin(margin geometry.Quad) Option {
	return func(o *PageOptions) { o.margin = margin }
}

// WithDPI sets the rasterization resolution used to turn Units into pixels.
func WithDPI(dpi float64) Option {
	return func(o *PageOptions) {
		if dpi > 0 {
			o.dpi = dpi
		}
	}
}

// WithOutputDir sets the directory exported pages are written to.
func WithOutputDir(dir string) Option {
	return func(o *PageOptions) { o.outputDir = dir }
}

// WithDebugFrames turns on the faint content-box outlines every node's
// Render draws via RenderContext.DebugFrame, useful while tuning a layout.
func WithDebugFrames(debug bool) Option {
	return func(o *PageOptions) { o.debug = debug }
}

func (o PageOptions) PageSize() geometry.Size { return o.pageSize }
func (o PageOptions) Margin() geometry.Quad { return o.margin }
func (o PageOptions) DPI() float64 { return o.dpi }
func (o PageOptions) OutputDir() string { return o.outputDir }
func (o PageOptions) Debug() bool { return o.debug }

// pxFromUnit converts a kernel Unit (1/1000mm) to a device pixel count at
// this option set's DPI.
func (o PageOptions) pxFromUnit(u unit.Unit) int {
	mm := unit.MmFromUnit(u)
	inches := float64(mm) / 25.4
	return int(inches*o.dpi + 0.5)
}

// widthPx/heightPx are the full page's pixel dimensions, content plus margin.
func (o PageOptions) widthPx() int {
	return o.pxFromUnit(o.pageSize.Width() + o.margin.Width())
}

func (o PageOptions) heightPx() int {
	return o.pxFromUnit(o.pageSize.Height() + o.margin.Height())
}
