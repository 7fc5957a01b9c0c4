package pagekit_test

import (
	"testing"

	"github.com/solenne-labs/pagekit/instructions"
)

func newLayer(t *testing.T, w, h int) *instructions.Layer {
	t.Helper()
	return instructions.NewLayer(w, h)
}
