package render

import (
	"fmt"
	"image/color"

	"github.com/rivo/uniseg"
	"github.com/rs/zerolog/log"

	"github.com/solenne-labs/pagekit/colors"
	"github.com/solenne-labs/pagekit/effects"
	"github.com/solenne-labs/pagekit/instructions"
	"github.com/solenne-labs/pagekit/internal/kernel/element"
	"github.com/solenne-labs/pagekit/internal/kernel/geometry"
	"github.com/solenne-labs/pagekit/internal/kernel/style"
	"github.com/solenne-labs/pagekit/internal/kernel/typeset"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

// Renderer is the concrete element.MeasureContext/element.RenderContext: it
// shapes text against registered font families and paints a kernel layout
// tree onto a sequence of paginated instructions.Layer canvases.
type Renderer struct {
	opts  PageOptions
	def   *style.Style
	fonts map[string]*Font
	pages []*page
	cur   *page
}

// NewRenderer starts a single blank page under opts, cascading def as the
// document's root style (the same role ctx.Style() plays for Text.Measure's
// font/size fallback).
func NewRenderer(opts PageOptions, def *style.Style) *Renderer {
	r := &Renderer{
		opts:  opts,
		def:   def,
		fonts: make(map[string]*Font),
	}
	r.startPage()
	return r
}

// RegisterFont makes a font family available to Styles that name it.
func (r *Renderer) RegisterFont(name string, f *Font) *Renderer {
	r.fonts[name] = f
	return r
}

// PageCount returns the number of pages started so far.
func (r *Renderer) PageCount() int { return len(r.pages) }

// Export writes every rendered page as a PNG file into opts.OutputDir.
func (r *Renderer) Export() error {
	for _, p := range r.pages {
		if err := p.export(); err != nil {
			return fmt.Errorf("render: export page %d: %w", p.index+1, err)
		}
	}
	return nil
}

func (r *Renderer) startPage() {
	r.pages = append(r.pages, newPage(len(r.pages), r.opts))
	r.cur = r.pages[len(r.pages)-1]
	log.Debug().Int("page", r.cur.index+1).Msg("render: started page")
}

func (r *Renderer) contentRemaining(y unit.Unit) unit.Unit {
	h := r.cur.contentHeightUnits()
	if y >= h {
		return 0
	}
	return h - y
}

// Style is the document's default cascade root, consulted by leaves (Text)
// whose own style carries no font.
func (r *Renderer) Style() *style.Style { return r.def }

func (r *Renderer) fontFor(st *style.Style) (*Font, float64, error) {
	f := st.Font()
	name := ""
	if n := f.Name(); n != nil {
		name = *n
	}
	sizePt := 10.0
	if s := f.Size(); s != nil {
		sizePt = float64(*s)
	}
	family, ok := r.fonts[name]
	if !ok {
		return nil, 0, fmt.Errorf("render: no font registered for %q", name)
	}
	return family.withSize(sizePt, r.opts.DPI()), sizePt, nil
}

// Typeset shapes text by walking it grapheme cluster by grapheme cluster
// (github.com/rivo/uniseg, matching the teacher's own text_wrap.go idiom for
// grapheme-aware text handling) and measuring each cluster's advance via the
// registered font face. The result is reported in Em units relative to the
// style's own font size, so it composes unchanged whatever size the Style
// ultimately resolves to.
func (r *Renderer) Typeset(st *style.Style, text string) (typeset.TextPosition, error) {
	fnt, sizePt, err := r.fontFor(st)
	if err != nil {
		return typeset.TextPosition{}, err
	}

	var positions []typeset.GlyphPosition
	var widthPx float64

	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		cluster := gr.Str()
		w, _ := fnt.MeasureString(cluster)

		var ch *rune
		if runes := []rune(cluster); len(runes) > 0 {
			r0 := runes[0]
			ch = &r0
		}

		positions = append(positions, typeset.NewGlyphPosition(ch, unit.Em(w/sizePt), 0, 0, 0))
		widthPx += w
	}

	ascentPx := fnt.AscentPx()
	descentPx := fnt.DescentPx()

	return typeset.TextPosition{
		Width:     unit.Em(widthPx / sizePt),
		Height:    unit.Em((ascentPx + descentPx) / sizePt),
		Depth:     unit.Em(descentPx / sizePt),
		Positions: positions,
	}, nil
}

// NewPage starts a fresh page, unless options asks it to only do so
// conditionally (BreakIfNotRoom) and the named block still fits on the
// current one.
func (r *Renderer) NewPage(options *element.NewPageOptions) bool {
	if options != nil && options.BreakIfNotRoom != nil {
		remaining := r.contentRemaining(options.BreakIfNotRoom.Offset.Y)
		if remaining >= options.BreakIfNotRoom.Size.Height() {
			return false
		}
	}
	r.startPage()
	return true
}

// CheckPageBreak reports whether a block of height at y would overflow the
// current page. When forceReserve is set it also claims that room,
// inserting a page break first if the block wouldn't otherwise fit.
func (r *Renderer) CheckPageBreak(y, height unit.Unit, forceReserve bool) bool {
	remaining := r.contentRemaining(y)
	overflows := remaining < height

	if forceReserve {
		if overflows {
			r.startPage()
		}
		r.cur.reserved = true
	}

	return overflows
}

func (r *Renderer) ReleasePageBreakReservation() {
	if r.cur != nil {
		r.cur.reserved = false
	}
}

// DebugFrame draws a faint outline around a node's content box when
// PageOptions.WithDebugFrames is enabled; a no-op otherwise.
func (r *Renderer) DebugFrame(contentPosition geometry.Offset, size geometry.Size) {
	if !r.opts.Debug() {
		return
	}
	x0, y0 := r.cur.toPxX(contentPosition.X), r.cur.toPxY(contentPosition.Y)
	x1 := r.cur.toPxX(contentPosition.X + size.Width())
	y1 := r.cur.toPxY(contentPosition.Y + size.Height())

	rect := instructions.NewRectangle(x0, y0, x1-x0, y1-y0).
		SetStrokeColor(colors.RGBA(200, 64, 64, 160)).
		SetLineWidth(1)
	r.cur.layer.LoadInstruction(rect)
}

// Fill paints a node's background box, applying a drop shadow first when the
// style names one so the shadow sits under the fill rather than over it.
func (r *Renderer) Fill(offset geometry.Offset, size geometry.Size, background style.Color, shadow *style.Shadow) {
	x0, y0 := r.cur.toPxX(offset.X), r.cur.toPxY(offset.Y)
	x1 := r.cur.toPxX(offset.X + size.Width())
	y1 := r.cur.toPxY(offset.Y + size.Height())

	rect := instructions.NewRectangle(x0, y0, x1-x0, y1-y0).
		SetFillColor(colors.RGBA(background.R, background.G, background.B, background.A))

	if shadow != nil {
		ppu := r.cur.pxPerUnit()
		dx := float64(shadow.OffsetX) * ppu
		dy := float64(shadow.OffsetY) * ppu
		blur := float64(shadow.Blur) * ppu
		spread := float64(shadow.Spread) * ppu
		shadowColor := colors.RGBA(shadow.Color.R, shadow.Color.G, shadow.Color.B, shadow.Color.A)
		rect.AddEffect(effects.NewDropShadow(dx, dy, blur, spread, shadowColor, shadow.Opacity))
	}

	r.cur.layer.LoadInstruction(rect)
}

// Line strokes a single straight edge, used for Box/BlockBox border sides.
func (r *Renderer) Line(from, to geometry.Offset, stroke style.Stroke) {
	widthPx := float64(stroke.Thickness) * r.opts.DPI() / 72.0
	if widthPx <= 0 {
		widthPx = 1
	}

	line := instructions.NewLine().
		MoveTo(r.cur.toPxX(from.X), r.cur.toPxY(from.Y)).
		LineTo(r.cur.toPxX(to.X), r.cur.toPxY(to.Y)).
		SetLineWidth(widthPx).
		SetStrokePattern(colorPattern(stroke.Color)).
		Stroke()

	r.cur.layer.LoadInstruction(line)
}

// Text paints one already-shaped run, advancing the pen glyph by glyph.
func (r *Renderer) Text(contentPosition geometry.Offset, st *style.Style, text typeset.TextPosition, positionIsBaseline bool) {
	fnt, sizePt, err := r.fontFor(st)
	if err != nil {
		log.Warn().Err(err).Msg("render: skipping unshapeable text run")
		return
	}

	baselineY := contentPosition.Y
	if !positionIsBaseline {
		baselineY += unit.UnitFromPt(text.Ascent().MulPt(unit.Pt(sizePt)))
	}

	col := colorToRGBA(st.Color())
	x := contentPosition.X

	for _, g := range text.Positions {
		if g.Character == nil {
			continue
		}
		px, py := r.cur.toPxX(x), r.cur.toPxY(baselineY)
		fnt.DrawString(r.cur.layer.Image(), col, string(*g.Character), px, py)
		x += unit.UnitFromPt(g.HAdvanceRest().MulPt(unit.Pt(sizePt)))
	}
}

func colorToRGBA(c *style.Color) color.Color {
	if c == nil {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func colorPattern(c style.Color) colors.Pattern {
	return colors.NewSolid(colors.RGBA(c.R, c.G, c.B, c.A))
}
