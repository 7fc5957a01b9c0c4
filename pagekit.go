// Package pagekit is the public entry point for the two-axis flex layout
// and pagination engine: it re-exports the kernel's node constructors, unit
// helpers and style builder, plus the canvas/font utilities from
// instructions and internal/render, under one namespace.
package pagekit

import (
	"github.com/solenne-labs/pagekit/instructions"
	imageUtil "github.com/solenne-labs/pagekit/internal/core/image"
	"github.com/solenne-labs/pagekit/internal/core/image/patterns"
	"github.com/solenne-labs/pagekit/internal/kernel/axis"
	"github.com/solenne-labs/pagekit/internal/kernel/element"
	"github.com/solenne-labs/pagekit/internal/kernel/style"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
	"github.com/solenne-labs/pagekit/internal/render"
)

// Type aliases for the public API.
type (
	Font  = render.Font
	Color = patterns.Color
	Layer = instructions.Layer
	Frame = instructions.Layer

	Style        = style.Style
	StyleBuilder = style.Builder

	// Layout is any node of the layout tree: Box, BlockBox, Filling, Wrap,
	// PageBreak or Text.
	Layout = element.Layout

	Renderer    = render.Renderer
	PageOptions = render.PageOptions
)

// Layer/Frame constructors.
var (
	NewLayer                   = instructions.NewLayer
	NewLayerFromImage          = instructions.NewLayerFromImage
	NewLayerFromRGBA           = instructions.NewLayerFromRGBA
	NewLayerFromImagePath      = instructions.NewLayerFromImagePath
	MustLoadLayerFromImagePath = instructions.MustLoadLayerFromImagePath

	NewFrame                   = instructions.NewLayer
	NewFrameFromImage          = instructions.NewLayerFromImage
	NewFrameFromRGBA           = instructions.NewLayerFromRGBA
	NewFrameFromImagePath      = instructions.NewLayerFromImagePath
	MustLoadFrameFromImagePath = instructions.MustLoadLayerFromImagePath
)

// Font management.
var (
	LoadFont              = render.LoadFont
	LoadFontFromBytes     = render.LoadFontFromBytes
	MustLoadFont          = render.MustLoadFont
	MustLoadFontFromBytes = render.MustLoadFontFromBytes
	SetFontCacheCapacity  = render.SetFontCacheCapacity
	ClearFontCache        = render.ClearFontCache
)

// Image utilities.
var (
	LoadImage = imageUtil.LoadImage
)

// Page rendering.
var (
	NewRenderer     = render.NewRenderer
	NewPageOptions  = render.NewPageOptions
	WithPageSize    = render.WithPageSize
	WithMargin      = render.WithMargin
	WithDPI         = render.WithDPI
	WithOutputDir   = render.WithOutputDir
	WithDebugFrames = render.WithDebugFrames
	A4              = render.A4
)

// Style builder.
var (
	NewStyle            = style.New
	DefaultStyle        = style.NewDefault
	NewStyleBuilder     = style.NewBuilder
	NewBareStyleBuilder = style.NewBareBuilder
)

// Unit constructors, re-exported for document-authoring convenience.
var (
	Zero       = unit.Zero
	UnitFromMm = unit.UnitFromMm
	UnitFromPt = unit.UnitFromPt
	MmFromUnit = unit.MmFromUnit
	PtFromUnit = unit.PtFromUnit
)

// Mm converts a millimeter value to the kernel's fixed-point Unit.
func Mm(v float64) unit.Unit { return unit.UnitFromMm(unit.Mm(v)) }

// Pt converts a point value (1/72 inch) to the kernel's fixed-point Unit.
func Pt(v float64) unit.Unit { return unit.UnitFromPt(unit.Pt(v)) }

// Axes, re-exported so a caller never needs to import internal/kernel/axis
// directly to build a Box.
const (
	Horizontal = axis.Horizontal
	Vertical   = axis.Vertical
)

// Node constructors. These are thin wrappers around the element package's
// own New* functions, named the way a document author would call them
// rather than after their underlying implementing type.
var (
	HBox      = func() *element.Box { return element.NewBox(axis.Horizontal) }
	VBox      = func() *element.Box { return element.NewBox(axis.Vertical) }
	BBox      = element.NewBlockBox
	Text      = element.NewText
	HFilling  = func() *element.Filling { return element.NewFilling(axis.Horizontal) }
	VFilling  = func() *element.Filling { return element.NewFilling(axis.Vertical) }
	HWrap     = func() *element.Wrap { return element.NewWrap(axis.Horizontal) }
	VWrap     = func() *element.Wrap { return element.NewWrap(axis.Vertical) }
	PageBreak = element.NewPageBreak
)
