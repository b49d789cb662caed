package roles

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

const (
	barFilled = "█"
	barEmpty  = "░"
	barLength = 8

	nameCutoff = 18
	nameWidth  = 20
	ellipsis   = ".."

	columnSeparator = "│"
)

// Discord's ansi code blocks only understand the basic SGR colors, so the renderer is
// pinned to the 16 color profile regardless of where the bot runs.
var ansiRenderer = newANSIRenderer()

var (
	headerStyle    = ansiRenderer.NewStyle().Bold(true)
	defaultStyle   = ansiRenderer.NewStyle().Foreground(lipgloss.Color("7")) // white
	staffStyle     = ansiRenderer.NewStyle().Foreground(lipgloss.Color("5")) // magenta
	hoistedStyle   = ansiRenderer.NewStyle().Foreground(lipgloss.Color("6")) // cyan
	separatorStyle = ansiRenderer.NewStyle().Foreground(lipgloss.Color("4")) // blue
	countStyle     = ansiRenderer.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	barStyle       = ansiRenderer.NewStyle().Foreground(lipgloss.Color("2")) // green
)

func newANSIRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	return r
}

// ProgressBar returns length glyphs, round(length*fraction) of them filled.
// fraction is expected in [0, 1].
func ProgressBar(fraction float64, length int) string {
	filled := int(math.Round(float64(length) * fraction))
	return strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, length-filled)
}

// FormatRow renders one table line: name, member count and prevalence bar, each colored.
// Names mentioning Admin or Mod are highlighted over hoisted (prominent) roles.
func FormatRow(name string, members int, fraction float64, prominent bool) string {
	style := defaultStyle
	if prominent {
		style = hoistedStyle
	}
	if strings.Contains(name, "Admin") || strings.Contains(name, "Mod") {
		style = staffStyle
	}

	return style.Render(fitName(name)) + " " +
		separatorStyle.Render(columnSeparator) + " " +
		countStyle.Render(fmt.Sprintf("%3d", members)) + " " +
		barStyle.Render(ProgressBar(fraction, barLength))
}

// fitName keeps the name column aligned: long names are cut to 18 cells plus "..",
// short ones padded to 20.
func fitName(name string) string {
	if runewidth.StringWidth(name) > nameCutoff {
		return runewidth.Truncate(name, nameCutoff, "") + ellipsis
	}
	return runewidth.FillRight(name, nameWidth)
}

// tableHeader is the bold column header of the role table.
func tableHeader() string {
	return headerStyle.Render("ROLE NAME            " + columnSeparator + " MEM PREVALENCE")
}
