// Package element implements the layout tree's polymorphic node
// abstraction (Position/Styled/Layout), the external collaborator
// interfaces a measure/render pass talks to, and the concrete node kinds:
// Box, BlockBox, Filling, Wrap, PageBreak and Text.
package element

import (
	"github.com/solenne-labs/pagekit/internal/kernel/geometry"
	"github.com/solenne-labs/pagekit/internal/kernel/style"
	"github.com/solenne-labs/pagekit/internal/kernel/typeset"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

// Position is the read/write geometry surface every node exposes: its own
// offset and size, plus the three size "views" the measure/lay-out passes
// distinguish between.
type Position interface {
	// Element names the concrete node kind, for debugging.
	Element() string
	// Mark is the optional developer-facing debug label (Style.mark's
	// node-level counterpart), empty by default.
	Mark() string

	OffsetRef() geometry.Offset
	SetOffset(o geometry.Offset)

	SizeRef() geometry.Size
	SetSize(s geometry.Size)

	// NativeSize, when non-nil, overrides SizeRef for the purpose of the
	// line-wrapping decision only (used by nodes that cache an
	// already-wrapped size distinct from their own declared size). Most
	// nodes leave this nil, falling back to SizeRef.
	NativeSize() *geometry.Size

	// SizeAfterWrapRef is the size used once a node has taken part in a
	// wrap/pack pass: for most nodes this is just SizeRef, but Wrap/
	// PageBreak report a (near-)zero size here despite an infinite
	// SizeRef, since their infinite native size exists only to force a
	// line break and must not leak into the parent's own sizing.
	SizeAfterWrapRef() geometry.Size

	// SizeAfterLayOut is the size a node reports once lay-out has placed
	// it, for the parent's line bounding-box bookkeeping.
	SizeAfterLayOut() geometry.Size

	// ContentSize is the size of this node's own content box (excluding
	// its border/padding), nil for leaf nodes with no content box.
	ContentSize() *geometry.Size
}

// Styled is the style cascade surface.
type Styled interface {
	StyleRef() *style.Style
	SetStyle(s *style.Style)
}

// AdoptParentStyle merges self's style onto parent's via Style.Merge: self
// wins on every field it sets, the parent supplies the rest.
func AdoptParentStyle(s Styled, parent *style.Style) {
	s.SetStyle(s.StyleRef().Merge(parent))
}

// OverrideStyle layers `with` on top of self, `with` winning on every field
// it sets, falling back to self for the rest.
func OverrideStyle(s Styled, with *style.Style) {
	s.SetStyle(with.Merge(s.StyleRef()))
}

// Layout is the full node interface: geometry, style, and the three-pass
// measure/lay-out/render algorithm plus child iteration.
type Layout interface {
	Position
	Styled

	Measure(ctx MeasureContext, room geometry.Size) error
	LayOut(ctx MeasureContext, position geometry.Offset, room geometry.Size) error
	Render(ctx RenderContext) error

	Iter() []Layout
}

// MeasureContext is the minimal collaborator a measure pass needs: the
// current cascaded style (for nodes that need to read it outside their own
// StyleRef, e.g. a default page style) and the external typesetter.
type MeasureContext interface {
	Style() *style.Style
	Typeset(st *style.Style, text string) (typeset.TextPosition, error)
}

// RenderContext extends MeasureContext with the page/canvas operations a
// render pass drives.
type RenderContext interface {
	MeasureContext

	// NewPage asks the sink to start a new page, honoring options if
	// given. Returns true if a new page was actually started.
	NewPage(options *NewPageOptions) bool

	// CheckPageBreak asks the sink whether there is room for a block of
	// the given height at y; if forceReserve is true the sink reserves
	// that room (inserting a page break first if needed) rather than
	// merely reporting whether one would be needed.
	CheckPageBreak(y, height unit.Unit, forceReserve bool) bool

	// ReleasePageBreakReservation releases a reservation made by
	// CheckPageBreak, letting subsequent siblings reclaim that room.
	ReleasePageBreakReservation()

	DebugFrame(contentPosition geometry.Offset, size geometry.Size)

	// Fill paints a node's background box at offset/size with the given
	// color, applying shadow (if non-nil) before the fill itself.
	Fill(offset geometry.Offset, size geometry.Size, background style.Color, shadow *style.Shadow)

	Line(from, to geometry.Offset, stroke style.Stroke)
	Text(contentPosition geometry.Offset, st *style.Style, text typeset.TextPosition, positionIsBaseline bool)
}

// NewPageOptions configures a requested page break. BreakIfNotRoom (beyond
// the upstream Margin/Size fields) is required by Box.Render's avoid_break
// path: it asks the sink to only actually start a new page if the box
// wouldn't otherwise fit in the room remaining on the current page.
type NewPageOptions struct {
	Margin         *geometry.Quad
	Size           *geometry.Size
	BreakIfNotRoom *breakIfNotRoom
}

type breakIfNotRoom struct {
	Offset geometry.Offset
	Size   geometry.Size
}

func NewPageOptionsNew() NewPageOptions { return NewPageOptions{} }

func (o NewPageOptions) WithMargin(margin geometry.Quad) NewPageOptions {
	o.Margin = &margin
	return o
}

func (o NewPageOptions) WithSize(size geometry.Size) NewPageOptions {
	o.Size = &size
	return o
}

// WithBreakIfNotRoom marks this page-break request as conditional: the sink
// should only honor it if the given offset/size would not fit in the
// remaining room on the current page.
func (o NewPageOptions) WithBreakIfNotRoom(offset geometry.Offset, size geometry.Size) NewPageOptions {
	o.BreakIfNotRoom = &breakIfNotRoom{Offset: offset, Size: size}
	return o
}

// base is embedded by every concrete node and supplies the Layout defaults:
// no-op Measure/Render, lay_out that just records the offset, no children,
// and the size-view defaults (NativeSize absent, SizeAfterWrapRef/
// SizeAfterLayOut mirroring SizeRef, no ContentSize, no Mark).
type base struct {
	mark   string
	offset geometry.Offset
	size   geometry.Size
	st     *style.Style
}

func newBase(st *style.Style) base {
	return base{size: geometry.SizeNone(), st: st}
}

func (b *base) Mark() string { return b.mark }
func (b *base) OffsetRef() geometry.Offset { return b.offset }
func (b *base) SetOffset(o geometry.Offset) { b.offset = o }
func (b *base) SizeRef() geometry.Size { return b.size }
func (b *base) SetSize(s geometry.Size) { b.size = s }
func (b *base) NativeSize() *geometry.Size { return nil }
func (b *base) SizeAfterWrapRef() geometry.Size { return b.size }
func (b *base) SizeAfterLayOut() geometry.Size { return b.size }
func (b *base) ContentSize() *geometry.Size { return nil }

func (b *base) StyleRef() *style.Style { return b.st }
func (b *base) SetStyle(st *style.Style) { b.st = st }

func (b *base) Measure(ctx MeasureContext, room geometry.Size) error { return nil }

func (b *base) LayOut(ctx MeasureContext, position geometry.Offset, room geometry.Size) error {
	b.offset = position
	return nil
}

func (b *base) Render(ctx RenderContext) error { return nil }

func (b *base) Iter() []Layout { return nil }

// nativeSizeOrRef is the NativeSize-else-SizeRef fallback the line packer's
// wrap decision reads.
func nativeSizeOrRef(l Layout) geometry.Size {
	if n := l.NativeSize(); n != nil {
		return *n
	}
	return l.SizeRef()
}
