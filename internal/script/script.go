// Package script turns a declarative document description into a built
// pagekit.Layout tree. It exists for callers that want to describe a page
// as data (e.g. decoded from JSON or assembled by a template) rather than
// chaining builder calls directly against the kernel node constructors.
package script

import (
	"github.com/solenne-labs/pagekit/internal/kernel/axis"
	"github.com/solenne-labs/pagekit/internal/kernel/dimension"
	"github.com/solenne-labs/pagekit/internal/kernel/element"
	"github.com/solenne-labs/pagekit/internal/kernel/geometry"
	"github.com/solenne-labs/pagekit/internal/kernel/style"
	"github.com/solenne-labs/pagekit/internal/kernel/unit"
)

// Kind tags the shape of a Node.
type Kind int

const (
	KindBBox Kind = iota
	KindHBox
	KindHSpace
	KindHFill
	KindVBox
	KindVSpace
	KindVFill
	KindText
)

// Format mutates a style.Builder under construction; Node.Format collects
// zero or more of these, applied in order before a node is built.
type Format func(*style.Builder)

func Width(w unit.Unit) Format { return func(b *style.Builder) { b.WithWidth(w) } }

func WidthParent(fill unit.FillPerMille) Format {
	return func(b *style.Builder) { b.WithWidthParent(fill) }
}

func Height(h unit.Unit) Format { return func(b *style.Builder) { b.WithHeight(h) } }

func HeightParent(fill unit.FillPerMille) Format {
	return func(b *style.Builder) { b.WithHeightParent(fill) }
}

func FontName(name string) Format { return func(b *style.Builder) { b.WithFontName(name) } }

func Points(pt unit.Pt) Format { return func(b *style.Builder) { b.WithFontSize(pt) } }

func Padding(q geometry.Quad) Format { return func(b *style.Builder) { b.WithPadding(q) } }

func BorderStyle(border style.Border) Format { return func(b *style.Builder) { b.WithBorder(border) } }

func Background(color style.Color) Format {
	return func(b *style.Builder) { b.WithBackgroundColor(color) }
}

func ShadowStyle(shadow style.Shadow) Format {
	return func(b *style.Builder) { b.WithShadow(shadow) }
}

func Grow(fill unit.Fill) Format { return func(b *style.Builder) { b.WithGrow(fill) } }

func Shrink(fill unit.Fill) Format { return func(b *style.Builder) { b.WithShrink(fill) } }

// Node is one entry of a document description: a node kind, its formatting
// directives, and whatever payload that kind needs (children, literal text,
// or a space/fill amount).
type Node struct {
	Kind     Kind
	Format   []Format
	Children []Node
	Text     string
	Space    unit.Unit
	FillW    unit.Fill
}

func BBox(format []Format, children ...Node) Node {
	return Node{Kind: KindBBox, Format: format, Children: children}
}

func HBox(format []Format, children ...Node) Node {
	return Node{Kind: KindHBox, Format: format, Children: children}
}

func HSpace(space unit.Unit) Node { return Node{Kind: KindHSpace, Space: space} }

func HFill(fill unit.Fill) Node { return Node{Kind: KindHFill, FillW: fill} }

func VBox(format []Format, children ...Node) Node {
	return Node{Kind: KindVBox, Format: format, Children: children}
}

func VSpace(space unit.Unit) Node { return Node{Kind: KindVSpace, Space: space} }

func VFill(fill unit.Fill) Node { return Node{Kind: KindVFill, FillW: fill} }

func Text(format []Format, text string) Node {
	return Node{Kind: KindText, Format: format, Text: text}
}

// Build recursively translates a Node into a built element.Layout tree.
func Build(n Node) element.Layout {
	switch n.Kind {
	case KindBBox:
		b := element.NewBlockBox()
		applyFormat(b, n.Format)
		for _, child := range n.Children {
			b.Child(Build(child))
		}
		return b

	case KindHBox:
		b := element.NewBox(axis.Horizontal)
		applyFormat(b, n.Format)
		for _, child := range n.Children {
			b.Child(Build(child))
		}
		return b

	case KindHSpace:
		return element.NewFilling(axis.Horizontal).Size(dimension.DimFixed(n.Space))

	case KindHFill:
		return element.NewFilling(axis.Horizontal).Grow(n.FillW)

	case KindVBox:
		b := element.NewBox(axis.Vertical)
		applyFormat(b, n.Format)
		for _, child := range n.Children {
			b.Child(Build(child))
		}
		return b

	case KindVSpace:
		return element.NewFilling(axis.Vertical).Size(dimension.DimFixed(n.Space))

	case KindVFill:
		return element.NewFilling(axis.Vertical).Grow(n.FillW)

	case KindText:
		t := element.NewText(n.Text)
		if len(n.Format) > 0 {
			sb := style.NewBuilder()
			for _, f := range n.Format {
				f(sb)
			}
			t.Style(sb.Build())
		}
		return t

	default:
		return element.NewBox(axis.Horizontal)
	}
}

// styled is the subset of node kinds a Format can apply to: anything that
// exposes the style.Style cascade pair. Box and BlockBox both satisfy it.
type styled interface {
	StyleRef() *style.Style
	SetStyle(*style.Style)
}

func applyFormat(node styled, format []Format) {
	if len(format) == 0 {
		return
	}
	sb := style.NewBuilder()
	for _, f := range format {
		f(sb)
	}
	node.SetStyle(sb.Build())
}
