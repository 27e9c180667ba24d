package plant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinesHaveFixedWidth(t *testing.T) {
	for stage := 0; stage <= 3; stage++ {
		for _, line := range Lines(stage, false) {
			assert.Len(t, line, Width, "stage %d", stage)
		}
	}
	for _, line := range Lines(0, true) {
		assert.Len(t, line, Width)
	}
}

func TestLinesGrowWithStage(t *testing.T) {
	assert.Contains(t, strings.Join(Lines(0, false), "\n"), "o")
	assert.NotContains(t, strings.Join(Lines(2, false), "\n"), "@")
	assert.Contains(t, strings.Join(Lines(3, false), "\n"), "@")
}

func TestLinesClampStage(t *testing.T) {
	assert.Equal(t, Lines(0, false), Lines(-2, false))
	assert.Equal(t, Lines(3, false), Lines(9, false))
}

func TestWitheredIgnoresStage(t *testing.T) {
	assert.Equal(t, Lines(0, true), Lines(3, true))
	assert.Contains(t, Lines(3, true)[0], "withered")
}

func TestLinesReturnsCopy(t *testing.T) {
	lines := Lines(1, false)
	lines[0] = "changed"
	assert.NotEqual(t, "changed", Lines(1, false)[0])
}

func TestRenderKeepsArt(t *testing.T) {
	out := Render(3, false, "dark")
	assert.Contains(t, out, "@ @ @")
	assert.Equal(t, 5, len(strings.Split(out, "\n")))
}

func TestPaletteFallsBackToLight(t *testing.T) {
	assert.Equal(t, PaletteFor("light"), PaletteFor("cupcake"))
	assert.NotEqual(t, PaletteFor("light"), PaletteFor("dark"))
}
