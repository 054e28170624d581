// This file is part of docjoy.
//
// docjoy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// docjoy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with docjoy.  If not, see <https://www.gnu.org/licenses/>.

// Package ansi defines the ANSI control codes used to colour terminal output.
package ansi

import "fmt"

// ansi color.
const (
	colRed    = 1
	colGreen  = 2
	colYellow = 3
	colCyan   = 6
)

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// Pens is the table of colors to be used for text.
var Pens = map[string]string{
	"red":    pen(targetBrightPen, colRed),
	"green":  pen(targetBrightPen, colGreen),
	"yellow": pen(targetBrightPen, colYellow),
	"cyan":   pen(targetBrightPen, colCyan),
}

// DimPens is the table of pastel colors to be used for text.
var DimPens = map[string]string{
	"red":    pen(targetPen, colRed),
	"green":  pen(targetPen, colGreen),
	"yellow": pen(targetPen, colYellow),
	"cyan":   pen(targetPen, colCyan),
}

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

func pen(target int, col int) string {
	return fmt.Sprintf("\033[%d%dm", target, col)
}
