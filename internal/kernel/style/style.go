// Package style implements Style and StyleBuilder: the per-node, Arc-shared
// (here: pointer-shared, read-only) presentation and sizing record that
// every layout node carries, plus the Font/Stroke/Border value types it is
// built from.
package style

import (
	"github.com/solenne-labs/pagekit/internal/kernel/dimension"
	"github.com/solenne-labs/pagekit/internal/kernel/geometry"
	"github.com/solenne-labs/pagekit/internal/kernel/typeset"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

// AlignItems selects cross-axis alignment within a line. Baseline alignment
// is special: it is the only variant that cascades from a parent style to a
// child that leaves align_items unset (see Style.Inherit).
type AlignItems int

const (
	AlignStart AlignItems = iota
	AlignBaseline
	AlignCenter
	AlignEnd
)

// Color is a plain sRGB color with alpha, the kernel's minimal stand-in for
// the external renderer's richer color space.
type Color struct {
	R, G, B, A uint8
}

func Black() Color { return Color{A: 255} }
func White() Color { return Color{R: 255, G: 255, B: 255, A: 255} }

// Font names the typeface, size, feature set and optional scaling factor a
// node's text is shaped with. Every field is optional so it can be merged
// down from a parent.
type Font struct {
	name     *string
	size     *unit.Pt
	features *typeset.Features
	scaling  *unit.FillPerMille
}

func internalNewFont() Font { return Font{} }

func NewFont(name string, size unit.Pt, features *typeset.Features) Font {
	return Font{name: &name, size: &size, features: features}
}

// Merge returns a Font where every field set on f wins, falling back to
// parent's for anything f leaves unset.
func (f Font) Merge(parent Font) Font {
	return Font{
		name:     orStr(f.name, parent.name),
		size:     orPt(f.size, parent.size),
		features: orFeatures(f.features, parent.features),
		scaling:  orFill(f.scaling, parent.scaling),
	}
}

func orStr(a, b *string) *string {
	if a != nil {
		return a
	}
	return b
}
func orPt(a, b *unit.Pt) *unit.Pt {
	if a != nil {
		return a
	}
	return b
}
func orFeatures(a, b *typeset.Features) *typeset.Features {
	if a != nil {
		return a
	}
	return b
}
func orFill(a, b *unit.FillPerMille) *unit.FillPerMille {
	if a != nil {
		return a
	}
	return b
}

func (f *Font) SetName(name string) { f.name = &name }
func (f *Font) SetSize(size unit.Pt) { f.size = &size }
func (f *Font) SetFeatures(features typeset.Features) { f.features = &features }
func (f *Font) SetScaling(scaling unit.FillPerMille) { f.scaling = &scaling }

func (f Font) Name() *string { return f.name }
func (f Font) Size() *unit.Pt { return f.size }
func (f Font) Features() *typeset.Features { return f.features }
func (f Font) Scaling() *unit.FillPerMille { return f.scaling }

// Stroke is a solid-color line of a given thickness, used for borders.
type Stroke struct {
	Color     Color
	Thickness unit.Pt
}

func NewStroke(color Color, thickness unit.Pt) Stroke {
	return Stroke{Color: color, Thickness: thickness}
}

func (s Stroke) WithColor(color Color) Stroke { s.Color = color; return s }
func (s Stroke) WithThickness(t unit.Pt) Stroke { s.Thickness = t; return s }

// Border holds an optional Stroke per edge.
type Border struct {
	top, left, bottom, right *Stroke
}

func BorderNone() Border { return Border{} }

func (b Border) Merge(parent Border) Border {
	return Border{
		top:    orStroke(b.top, parent.top),
		left:   orStroke(b.left, parent.left),
		bottom: orStroke(b.bottom, parent.bottom),
		right:  orStroke(b.right, parent.right),
	}
}

func orStroke(a, b *Stroke) *Stroke {
	if a != nil {
		return a
	}
	return b
}

func BorderSquare(s Stroke) Border {
	v := s
	return Border{top: &v, left: strokePtr(v), bottom: strokePtr(v), right: strokePtr(v)}
}

func strokePtr(s Stroke) *Stroke { v := s; return &v }

func BorderHV(horizontal, vertical Stroke) Border {
	return Border{top: strokePtr(vertical), left: strokePtr(horizontal), bottom: strokePtr(vertical), right: strokePtr(horizontal)}
}

func BorderH(horizontal Stroke) Border {
	return Border{top: strokePtr(horizontal), bottom: strokePtr(horizontal)}
}

func BorderV(vertical Stroke) Border {
	return Border{left: strokePtr(vertical), right: strokePtr(vertical)}
}

func (b Border) WithTop(s Stroke) Border { b.top = &s; return b }
func (b Border) WithLeft(s Stroke) Border { b.left = &s; return b }
func (b Border) WithBottom(s Stroke) Border { b.bottom = &s; return b }
func (b Border) WithRight(s Stroke) Border { b.right = &s; return b }

func (b Border) Top() *Stroke { return b.top }
func (b Border) Left() *Stroke { return b.left }
func (b Border) Bottom() *Stroke { return b.bottom }
func (b Border) Right() *Stroke { return b.right }

// Shadow describes a drop shadow cast by a node's background fill. It is a
// per-node property, merged like Border/Padding rather than cascaded like
// color.
type Shadow struct {
	OffsetX unit.Unit
	OffsetY unit.Unit
	Blur    unit.Unit
	Spread  unit.Unit
	Color   Color
	Opacity float64
}

// Style is the per-node presentation and sizing record: font/color cascade
// down the tree (see Inherit); size, flex weight, wrap, gaps, border and
// padding are per-node and never cascade (see Merge, which only fills in
// unset fields rather than cascading).
type Style struct {
	font             Font
	color            *Color
	backgroundColor  *Color
	shadow           *Shadow
	width            dimension.Dim
	minWidth         dimension.MaybeDim
	maxWidth         dimension.MaybeDim
	height           dimension.Dim
	minHeight        dimension.MaybeDim
	maxHeight        dimension.MaybeDim
	grow             *unit.Fill
	shrink           *unit.Fill
	wrap             *bool
	alignItems       *AlignItems
	horizontalGap    *unit.Unit
	verticalGap      *unit.Unit
	border           Border
	padding          geometry.Quad
	mark             string
}

func internalNewStyle() Style {
	return Style{
		font:      internalNewFont(),
		width:     dimension.DimContent(),
		minWidth:  dimension.MaybeDimNone(),
		maxWidth:  dimension.MaybeDimNone(),
		height:    dimension.DimContent(),
		minHeight: dimension.MaybeDimNone(),
		maxHeight: dimension.MaybeDimNone(),
		border:    BorderNone(),
		padding:   geometry.QuadEmpty(),
	}
}

func internalDefaultStyle() Style {
	s := internalNewStyle()
	s.font = NewFont("default", unit.Pt(10.0), nil)
	black := Black()
	s.color = &black
	s.width = dimension.DimContent()
	s.height = dimension.DimContent()
	return s
}

// New returns a bare style with every field unset (suitable as the tree
// root's style, onto which everything else merges/inherits).
func New() *Style { s := internalNewStyle(); return &s }

// NewDefault returns the baseline style every document implicitly starts
// from: default/10pt font, black text.
func NewDefault() *Style { s := internalDefaultStyle(); return &s }

// Inherit cascades only font, color, background color and (conditionally)
// baseline alignment from parent; every other field stays exactly as set on
// self, since size/flex/wrap/gap/border/padding are per-node concerns.
func (s *Style) Inherit(parent *Style) *Style {
	alignItems := s.alignItems
	if s.alignItems == nil && parent.alignItems != nil && *parent.alignItems == AlignBaseline {
		v := AlignBaseline
		alignItems = &v
	}

	return &Style{
		font:            s.font.Merge(parent.font),
		color:           orColor(s.color, parent.color),
		backgroundColor: orColor(s.backgroundColor, parent.backgroundColor),
		shadow:          s.shadow,
		width:           s.width,
		minWidth:        s.minWidth,
		maxWidth:        s.maxWidth,
		height:          s.height,
		minHeight:       s.minHeight,
		maxHeight:       s.maxHeight,
		grow:            s.grow,
		shrink:          s.shrink,
		wrap:            s.wrap,
		alignItems:      alignItems,
		horizontalGap:   s.horizontalGap,
		verticalGap:     s.verticalGap,
		border:          s.border,
		padding:         s.padding,
		mark:            s.mark,
	}
}

func orColor(a, b *Color) *Color {
	if a != nil {
		return a
	}
	return b
}

// Merge returns a style where every field set on s wins, falling back to
// parent's for anything unset, including size/flex/border/padding, unlike
// Inherit. Used by AddStyle/OverrideStyle to layer partial styles.
func (s *Style) Merge(parent *Style) *Style {
	return &Style{
		font:            s.font.Merge(parent.font),
		color:           orColor(s.color, parent.color),
		backgroundColor: orColor(s.backgroundColor, parent.backgroundColor),
		shadow:          orShadow(s.shadow, parent.shadow),
		width:           s.width.Or(parent.width),
		minWidth:        s.minWidth.Or(parent.minWidth),
		maxWidth:        s.maxWidth.Or(parent.maxWidth),
		height:          s.height.Or(parent.height),
		minHeight:       s.minHeight.Or(parent.minHeight),
		maxHeight:       s.maxHeight.Or(parent.maxHeight),
		grow:            orFill(s.grow, parent.grow),
		shrink:          orFill(s.shrink, parent.shrink),
		wrap:            orBool(s.wrap, parent.wrap),
		alignItems:      orAlign(s.alignItems, parent.alignItems),
		horizontalGap:   orUnit(s.horizontalGap, parent.horizontalGap),
		verticalGap:     orUnit(s.verticalGap, parent.verticalGap),
		border:          s.border.Merge(parent.border),
		padding:         s.padding.Merge(parent.padding),
		mark:            s.mark,
	}
}

func orBool(a, b *bool) *bool {
	if a != nil {
		return a
	}
	return b
}
func orAlign(a, b *AlignItems) *AlignItems {
	if a != nil {
		return a
	}
	return b
}
func orUnit(a, b *unit.Unit) *unit.Unit {
	if a != nil {
		return a
	}
	return b
}
func orShadow(a, b *Shadow) *Shadow {
	if a != nil {
		return a
	}
	return b
}

func (s *Style) Font() Font { return s.font }
func (s *Style) Color() *Color { return s.color }
func (s *Style) BackgroundColor() *Color { return s.backgroundColor }
func (s *Style) Shadow() *Shadow { return s.shadow }
func (s *Style) Width() dimension.Dim { return s.width }
func (s *Style) MinWidth() dimension.MaybeDim { return s.minWidth }
func (s *Style) MaxWidth() dimension.MaybeDim { return s.maxWidth }
func (s *Style) Height() dimension.Dim { return s.height }
func (s *Style) MinHeight() dimension.MaybeDim { return s.minHeight }
func (s *Style) MaxHeight() dimension.MaybeDim { return s.maxHeight }
func (s *Style) Grow() *unit.Fill { return s.grow }
func (s *Style) Shrink() *unit.Fill { return s.shrink }
func (s *Style) Wrap() *bool { return s.wrap }

func (s *Style) BorderTop() *Stroke { return s.border.Top() }
func (s *Style) BorderLeft() *Stroke { return s.border.Left() }
func (s *Style) BorderBottom() *Stroke { return s.border.Bottom() }
func (s *Style) BorderRight() *Stroke { return s.border.Right() }

func (s *Style) Padding() geometry.Quad { return s.padding }

func (s *Style) PaddingTopSize() unit.Unit { return s.padding.TopSize() }
func (s *Style) PaddingLeftSize() unit.Unit { return s.padding.LeftSize() }
func (s *Style) PaddingBottomSize() unit.Unit { return s.padding.BottomSize() }
func (s *Style) PaddingRightSize() unit.Unit { return s.padding.RightSize() }

// AlignItemsOrDefault returns the effective alignment, defaulting to Start.
func (s *Style) AlignItemsOrDefault() AlignItems {
	if s.alignItems != nil {
		return *s.alignItems
	}
	return AlignStart
}

func (s *Style) HorizontalGapSize() unit.Unit {
	if s.horizontalGap != nil {
		return *s.horizontalGap
	}
	return unit.Zero()
}

func (s *Style) VerticalGapSize() unit.Unit {
	if s.verticalGap != nil {
		return *s.verticalGap
	}
	return unit.Zero()
}

// Mark is an optional developer-facing debug label with no runtime effect
// beyond identifying a node in debug frames and test assertions.
func (s *Style) Mark() string { return s.mark }

// ApplyToSize fills in whichever of size's width/height FlexDim slots are
// still unset from s's fields; grow/shrink only flow into the dim that lies
// along mainAxis, since a node's own style can only set flex weight for its
// own main axis.
func ApplyToSize(sz *geometry.Size, mainAxisIsHorizontal bool, s *Style) {
	var grow, shrink *unit.Fill
	if mainAxisIsHorizontal {
		grow, shrink = s.Grow(), s.Shrink()
	}
	sz.XDim().CompleteWithStyle(s.Width(), s.MinWidth(), s.MaxWidth(), grow, shrink)

	grow, shrink = nil, nil
	if !mainAxisIsHorizontal {
		grow, shrink = s.Grow(), s.Shrink()
	}
	sz.YDim().CompleteWithStyle(s.Height(), s.MinHeight(), s.MaxHeight(), grow, shrink)
}

// Builder is the fluent constructor for Style, mirroring the teacher's
// With*-chain idiom.
type Builder struct {
	style Style
}

// NewBuilder starts from the document-default style (default font, black text).
func NewBuilder() *Builder {
	return &Builder{style: internalDefaultStyle()}
}

// NewBareBuilder starts from a style with every field unset, for building
// partial styles meant to be merged onto something else.
func NewBareBuilder() *Builder {
	return &Builder{style: internalNewStyle()}
}

func (b *Builder) Build() *Style { s := b.style; return &s }

func (b *Builder) WithFont(font Font) *Builder { b.style.font = font; return b }
func (b *Builder) WithFontName(name string) *Builder {
	b.style.font.SetName(name)
	return b
}
func (b *Builder) WithFontSize(size unit.Pt) *Builder {
	b.style.font.SetSize(size)
	return b
}
func (b *Builder) WithFontFeatures(features typeset.Features) *Builder {
	b.style.font.SetFeatures(features)
	return b
}
func (b *Builder) WithFontScaling(scaling unit.FillPerMille) *Builder {
	b.style.font.SetScaling(scaling)
	return b
}

func (b *Builder) WithColor(color Color) *Builder {
	b.style.color = &color
	return b
}
func (b *Builder) WithBackgroundColor(color Color) *Builder {
	b.style.backgroundColor = &color
	return b
}
func (b *Builder) WithShadow(shadow Shadow) *Builder {
	b.style.shadow = &shadow
	return b
}

func (b *Builder) WithWidth(width unit.Unit) *Builder {
	b.style.width = dimension.DimFixed(width)
	return b
}
func (b *Builder) WithWidthParent(fill unit.FillPerMille) *Builder {
	b.style.width = dimension.DimParent(fill)
	return b
}
func (b *Builder) WithMaxWidth(max unit.Unit) *Builder {
	b.style.maxWidth = dimension.MaybeDimFixed(max)
	return b
}
func (b *Builder) WithMaxWidthParent(fill unit.FillPerMille) *Builder {
	b.style.maxWidth = dimension.MaybeDimParent(fill)
	return b
}
func (b *Builder) WithMinWidth(min unit.Unit) *Builder {
	b.style.minWidth = dimension.MaybeDimFixed(min)
	return b
}
func (b *Builder) WithMinWidthParent(fill unit.FillPerMille) *Builder {
	b.style.minWidth = dimension.MaybeDimParent(fill)
	return b
}

func (b *Builder) WithHeight(height unit.Unit) *Builder {
	b.style.height = dimension.DimFixed(height)
	return b
}
func (b *Builder) WithHeightParent(fill unit.FillPerMille) *Builder {
	b.style.height = dimension.DimParent(fill)
	return b
}
func (b *Builder) WithMaxHeight(max unit.Unit) *Builder {
	b.style.maxHeight = dimension.MaybeDimFixed(max)
	return b
}
func (b *Builder) WithMaxHeightParent(fill unit.FillPerMille) *Builder {
	b.style.maxHeight = dimension.MaybeDimParent(fill)
	return b
}
func (b *Builder) WithMinHeight(min unit.Unit) *Builder {
	b.style.minHeight = dimension.MaybeDimFixed(min)
	return b
}
func (b *Builder) WithMinHeightParent(fill unit.FillPerMille) *Builder {
	b.style.minHeight = dimension.MaybeDimParent(fill)
	return b
}

func (b *Builder) WithGrow(grow unit.Fill) *Builder {
	v := grow
	b.style.grow = &v
	return b
}
func (b *Builder) WithShrink(shrink unit.Fill) *Builder {
	v := shrink
	b.style.shrink = &v
	return b
}
func (b *Builder) WithWrap(wrap bool) *Builder {
	b.style.wrap = &wrap
	return b
}
func (b *Builder) WithBorder(border Border) *Builder {
	b.style.border = border
	return b
}
func (b *Builder) WithPadding(padding geometry.Quad) *Builder {
	b.style.padding = padding
	return b
}
func (b *Builder) WithAlignItems(align AlignItems) *Builder {
	b.style.alignItems = &align
	return b
}
func (b *Builder) WithHorizontalGap(gap unit.Unit) *Builder {
	v := gap
	b.style.horizontalGap = &v
	return b
}
func (b *Builder) WithVerticalGap(gap unit.Unit) *Builder {
	v := gap
	b.style.verticalGap = &v
	return b
}
func (b *Builder) WithMark(mark string) *Builder {
	b.style.mark = mark
	return b
}
