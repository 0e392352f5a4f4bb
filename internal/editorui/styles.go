package editorui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"golang.org/x/image/colornames"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Color palette. Curve colors follow the classic editor: green control
// points, blue control polygon, red curve.
var (
	colorBG = c("#080e0b")

	markerColor       = colornames.Limegreen
	markerActiveColor = colornames.Gold
	polygonColor      = colornames.Dodgerblue
	curveColor        = colornames.Red
	gridColor         = c("#132a20")
	axisColor         = c("#1f4a38")

	toolbarColor = c("#00ffc8")
	footerColor  = c("#666666")
	errorColor   = colornames.Orangered
)
