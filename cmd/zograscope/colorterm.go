package main

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/oxhq/zograscope/render"
)

// styleFor maps the engine's small closed color palette onto a concrete
// terminal style. Several groups intentionally share a style (Specifiers,
// Keywords, Directives) the way a minimal syntax theme would.
func styleFor(c render.ColorGroup) *pterm.Style {
	switch c {
	case render.Deleted:
		return pterm.NewStyle(pterm.FgRed)
	case render.Inserted:
		return pterm.NewStyle(pterm.FgGreen)
	case render.Updated, render.UpdatedSurroundings:
		return pterm.NewStyle(pterm.FgYellow)
	case render.Moved:
		return pterm.NewStyle(pterm.FgMagenta)
	case render.Specifiers, render.Keywords, render.Directives:
		return pterm.NewStyle(pterm.FgBlue)
	case render.UserTypes, render.Types:
		return pterm.NewStyle(pterm.FgCyan)
	case render.Comments:
		return pterm.NewStyle(pterm.FgGray)
	case render.Functions:
		return pterm.NewStyle(pterm.FgLightCyan)
	case render.Brackets, render.Operators:
		return pterm.NewStyle(pterm.FgLightWhite)
	case render.Constants:
		return pterm.NewStyle(pterm.FgLightMagenta)
	default:
		return pterm.NewStyle(pterm.FgDefault)
	}
}

// renderCane prints one render.ColorCane, styling each piece and leaving no
// trailing newline (the caller decides line termination).
func renderCane(cane render.ColorCane) string {
	var b strings.Builder
	for _, p := range cane.Pieces {
		b.WriteString(styleFor(p.Color).Sprint(p.Text))
	}
	return b.String()
}
