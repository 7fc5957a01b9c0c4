package pagekit_test

import (
	"testing"

	"github.com/solenne-labs/pagekit/colors"
	"github.com/solenne-labs/pagekit/instructions"
	"github.com/stretchr/testify/require"
)

func TestInstructionPoint(t *testing.T) {
	c := newLayer(t, 100, 100)
	require.NotNil(t, c, "layer should not be nil")

	require.NotPanics(t, func() {
		c.LoadInstruction(instructions.NewPoint(10, 10).SetColor(colors.RGBA(0, 0, 255, 255)))
	}, "LoadInstructions should not panic")

	err := c.Export("./output/point_test.png")
	require.NoError(t, err, "export should succeed")
}
