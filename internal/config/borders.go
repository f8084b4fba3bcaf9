package config

import "charm.land/lipgloss/v2"

// GetBorderForStyle returns the lipgloss border matching the configured
// border_style. Unknown values fall back to rounded.
func GetBorderForStyle() lipgloss.Border {
	switch BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "ascii":
		return lipgloss.Border{
			Top: "-", Bottom: "-", Left: "|", Right: "|",
			TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		}
	default:
		return lipgloss.RoundedBorder()
	}
}
