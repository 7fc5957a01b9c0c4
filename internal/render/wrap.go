package render

import (
	"strings"

	"github.com/rivo/uniseg"
)

// WrapWords splits text into a slice of words, breaking on grapheme-cluster
// boundaries rather than raw runes so combining marks and multi-rune emoji
// stay attached to the word they belong to. It does not measure or wrap to a
// width itself: callers attach each word as its own Text leaf and the
// kernel's line packer decides where a line actually breaks.
func WrapWords(text string) []string {
	var words []string
	var b strings.Builder

	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		s := gr.Str()
		if strings.TrimSpace(s) == "" {
			if b.Len() > 0 {
				words = append(words, b.String())
				b.Reset()
			}
			continue
		}
		b.WriteString(s)
	}
	if b.Len() > 0 {
		words = append(words, b.String())
	}

	return words
}
