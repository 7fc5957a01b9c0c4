// pagekitdemo builds a small sample document (a heading, a wrapped
// paragraph, a page break, and a bordered footer box) and renders it to a
// sequence of page-NNN.png files.
//
// Usage:
//
//	pagekitdemo -font path/to/font.ttf -out ./out
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/solenne-labs/pagekit/internal/kernel/axis"
	"github.com/solenne-labs/pagekit/internal/kernel/dimension"
	"github.com/solenne-labs/pagekit/internal/kernel/element"
	"github.com/solenne-labs/pagekit/internal/kernel/geometry"
	"github.com/solenne-labs/pagekit/internal/kernel/style"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
	"github.com/solenne-labs/pagekit/internal/render"
	"github.com/solenne-labs/pagekit/internal/script"
)

func main() {
	fontPath := flag.String("font", "", "path to a .ttf font registered as \"body\"")
	outDir := flag.String("out", ".", "directory pages are exported to")
	debug := flag.Bool("debug", false, "draw debug frames around every node's content box")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(*fontPath, *outDir, *debug); err != nil {
		log.Fatal().Err(err).Msg("pagekitdemo: failed")
	}
}

func run(fontPath, outDir string, debug bool) error {
	opts := render.NewPageOptions(
		render.WithOutputDir(outDir),
		render.WithDebugFrames(debug),
	)

	def := style.NewBuilder().
		WithFontName("body").
		WithFontSize(unit.Pt(11)).
		Build()

	r := render.NewRenderer(opts, def)

	if fontPath != "" {
		f, err := render.LoadFont(fontPath, 11)
		if err != nil {
			return err
		}
		r.RegisterFont("body", f)
	} else {
		log.Warn().Msg("pagekitdemo: no -font given, text nodes will stay unshaped")
	}

	root := buildDocument()

	page := opts.PageSize()
	if err := root.Measure(r, page); err != nil {
		return err
	}
	if err := root.LayOut(r, geometry.ZeroOffset(), page); err != nil {
		return err
	}
	if err := root.Render(r); err != nil {
		return err
	}

	if err := r.Export(); err != nil {
		return err
	}

	log.Info().Int("pages", r.PageCount()).Str("out", outDir).Msg("pagekitdemo: exported")
	return nil
}

// buildDocument assembles a document via the declarative script layer: a
// heading row, a wrapping paragraph, a forced page break, and a bordered,
// shadowed footer box.
func buildDocument() element.Layout {
	heading := script.HBox(
		[]script.Format{script.WidthParent(unit.FillFull())},
		script.Text([]script.Format{script.Points(unit.Pt(18))}, "pagekit demo"),
		script.HFill(unit.NewFill(1)),
		script.Text(nil, "page 1"),
	)

	// Each word is its own Text leaf so the horizontal box's line packer can
	// actually break the paragraph; a single shaped run never wraps.
	paragraph := element.NewBox(axis.Horizontal).
		Size(dimension.DimParent(unit.FillFull())).
		AddStyle(style.NewBareBuilder().WithHorizontalGap(unit.UnitFromMm(2)).Build())
	for _, word := range render.WrapWords("This paragraph exists to exercise line wrapping, " +
		"grow/shrink distribution, and the grapheme-aware typesetter wired into the renderer.") {
		paragraph.Text(word)
	}

	footer := script.HBox(
		[]script.Format{
			script.WidthParent(unit.FillFull()),
			script.Padding(geometry.QuadSquare(unit.UnitFromMm(3))),
			script.BorderStyle(style.BorderSquare(style.NewStroke(style.Black(), unit.Pt(0.5)))),
			script.Background(style.Color{R: 245, G: 245, B: 240, A: 255}),
			script.ShadowStyle(style.Shadow{
				OffsetX: unit.UnitFromMm(1),
				OffsetY: unit.UnitFromMm(1),
				Blur:    unit.UnitFromMm(2),
				Color:   style.Color{A: 120},
				Opacity: 0.5,
			}),
		},
		script.Text(nil, "footer"),
	)

	root := element.NewBox(axis.Vertical)
	root.Child(script.Build(heading))
	root.Child(element.NewFilling(axis.Vertical).Size(dimension.DimFixed(unit.UnitFromMm(5))))
	root.Child(paragraph)
	root.Child(element.NewPageBreak())
	root.Child(script.Build(footer))

	return root
}
