// Package plant draws the text-art plant that reflects a habit's stage.
package plant

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Width is the column width of every art line.
const Width = 9

var stages = [4][]string{
	{
		"         ",
		"         ",
		"         ",
		"    o    ",
		" \\_____/ ",
	},
	{
		"         ",
		"         ",
		"   \\|    ",
		"    |    ",
		" \\_____/ ",
	},
	{
		"         ",
		"  \\ | /  ",
		"   \\|/   ",
		"    |    ",
		" \\_____/ ",
	},
	{
		"  @ @ @  ",
		" \\ \\|/ / ",
		"   \\|/   ",
		"    |    ",
		" \\_____/ ",
	},
}

var witheredArt = []string{
	"withered ",
	"  _   _  ",
	"   \\ /   ",
	"    |    ",
	" \\_____/ ",
}

// Palette colors the parts of the plant.
type Palette struct {
	Leaf     lipgloss.Color
	Bloom    lipgloss.Color
	Seed     lipgloss.Color
	Pot      lipgloss.Color
	Withered lipgloss.Color
}

var palettes = map[string]Palette{
	"light": {
		Leaf:     lipgloss.Color("#2c9c58"),
		Bloom:    lipgloss.Color("#e0628a"),
		Seed:     lipgloss.Color("#b5a935"),
		Pot:      lipgloss.Color("#b27a52"),
		Withered: lipgloss.Color("#7b5538"),
	},
	"dark": {
		Leaf:     lipgloss.Color("#39b98f"),
		Bloom:    lipgloss.Color("#ff8fb1"),
		Seed:     lipgloss.Color("#d4d06b"),
		Pot:      lipgloss.Color("#bf8a5f"),
		Withered: lipgloss.Color("#7c9b86"),
	},
}

// PaletteFor returns the palette for a theme, falling back to light.
func PaletteFor(theme string) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes["light"]
}

// Lines returns the uncolored art for a stage. Stages outside 0..3 are clamped.
func Lines(stage int, withered bool) []string {
	var src []string
	if withered {
		src = witheredArt
	} else {
		src = stages[clamp(stage)]
	}
	return append([]string(nil), src...)
}

// Render returns the colored art for a stage, one line per row.
func Render(stage int, withered bool, theme string) string {
	p := PaletteFor(theme)
	lines := Lines(stage, withered)
	last := len(lines) - 1

	out := make([]string, len(lines))
	for i, line := range lines {
		color := p.Leaf
		switch {
		case i == last:
			color = p.Pot
		case withered:
			color = p.Withered
		case strings.Contains(line, "@"):
			color = p.Bloom
		case strings.Contains(line, "o"):
			color = p.Seed
		}
		out[i] = lipgloss.NewStyle().Foreground(color).Render(line)
	}
	return strings.Join(out, "\n")
}

func clamp(stage int) int {
	if stage < 0 {
		return 0
	}
	if stage > 3 {
		return 3
	}
	return stage
}
