package element

import (
	"github.com/solenne-labs/pagekit/internal/kernel/geometry"
	"github.com/solenne-labs/pagekit/internal/kernel/style"
	"github.com/solenne-labs/pagekit/internal/kernel/typeset"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

// Text is the kernel's only leaf that talks to the external typesetter: it
// holds its raw input string until the first measure pass shapes it into a
// cached TextPosition, after which measure is an idempotent no-op.
type Text struct {
	mark   string
	offset geometry.Offset
	size   geometry.Size
	st     *style.Style

	input  string
	shaped *typeset.TextPosition
}

// NewText builds a Text leaf with a content-sized basis, shaped lazily on
// the first Measure call.
func NewText(text string) *Text {
	return &Text{
		input: text,
		size:  geometry.SizeContent(),
		st:    style.NewBareBuilder().Build(),
	}
}

func (t *Text) WithMark(mark string) *Text { t.mark = mark; return t }

func (t *Text) Style(st *style.Style) *Text {
	t.SetStyle(st)
	return t
}

func (t *Text) AddStyle(st *style.Style) *Text {
	t.SetStyle(st.Merge(t.st))
	return t
}

func (t *Text) Element() string { return "Text" }
func (t *Text) Mark() string { return t.mark }
func (t *Text) OffsetRef() geometry.Offset { return t.offset }
func (t *Text) SetOffset(o geometry.Offset) { t.offset = o }
func (t *Text) SizeRef() geometry.Size { return t.size }
func (t *Text) SetSize(s geometry.Size) { t.size = s }
func (t *Text) NativeSize() *geometry.Size { return nil }
func (t *Text) SizeAfterWrapRef() geometry.Size { return t.size }
func (t *Text) SizeAfterLayOut() geometry.Size { return t.size }
func (t *Text) ContentSize() *geometry.Size { return nil }

func (t *Text) StyleRef() *style.Style { return t.st }

// SetStyle applies the style's horizontal-axis size policy (a Text leaf has
// no axis of its own, so it always treats width as the main axis) before
// adopting the style, matching Box/Filling's attach-time stamping.
func (t *Text) SetStyle(st *style.Style) {
	style.ApplyToSize(&t.size, true, st)
	t.st = st
}

// Measure shapes the input string via the ambient typesetter the first time
// it is called. An empty string, or a style carrying no font name/size,
// leaves the size at its unresolved content-sized default and is treated as
// zero-size, skippable content by the parent box and by Render.
func (t *Text) Measure(ctx MeasureContext, room geometry.Size) error {
	if t.shaped != nil || t.input == "" {
		return nil
	}

	resolved := t.st.Inherit(ctx.Style())
	font := resolved.Font()
	if font.Name() == nil || font.Size() == nil {
		return nil
	}

	shaped, err := ctx.Typeset(resolved, t.input)
	if err != nil {
		return err
	}

	fontSize := *font.Size()
	fontScaling := 1.0
	if scaling := font.Scaling(); scaling != nil {
		fontScaling = float64(*scaling) / float64(unit.FillMille())
	}

	widthPt := unit.Pt(float64(shaped.Width.MulPt(fontSize)) * fontScaling)
	width := unit.UnitFromPt(widthPt)
	height := unit.UnitFromPt(shaped.Height.MulPt(fontSize))
	depth := unit.UnitFromPt(shaped.Depth.MulPt(fontSize))

	t.size = geometry.SizeFixedDepth(width, height, depth)
	t.shaped = &shaped

	return nil
}

func (t *Text) LayOut(ctx MeasureContext, position geometry.Offset, room geometry.Size) error {
	t.offset = position
	return nil
}

func (t *Text) Render(ctx RenderContext) error {
	if t.shaped == nil || len(t.shaped.Positions) == 0 {
		return nil
	}
	ctx.Text(t.offset, t.st, *t.shaped, false)
	ctx.DebugFrame(t.offset, t.size)
	return nil
}

func (t *Text) Iter() []Layout { return nil }
