package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// placePopup splices a rendered popup over the base view, anchored at a
// terminal coordinate. The popup prefers the right side of the anchor
// and flips to the left when it would run past the screen edge; the
// vertical position is clamped instead.
func placePopup(base string, width, height int, popup string, anchorX, anchorY int) string {
	if width <= 0 || height <= 0 || popup == "" {
		return base
	}

	popupLines := splitLines(popup)
	popW, popH := measureLines(popupLines)
	if popW > width || popH > height {
		// Not enough room to float; draw nothing rather than garbage.
		return base
	}

	left := anchorX
	if left+popW > width {
		left = anchorX - popW
	}
	if left < 0 {
		left = 0
	}
	if left+popW > width {
		left = width - popW
	}

	top := anchorY
	if top+popH > height {
		top = height - popH
	}
	if top < 0 {
		top = 0
	}

	baseLines := normalizeLines(base, width, height)
	for i, popupLine := range popupLines {
		row := top + i
		lineW := lipgloss.Width(popupLine)
		if lineW < popW {
			popupLine += strings.Repeat(" ", popW-lineW)
		}
		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+popW, width)
		baseLines[row] = leftSlice + popupLine + rightSlice
	}

	return strings.Join(baseLines, "\n")
}

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func measureLines(lines []string) (int, int) {
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth, len(lines)
}

func normalizeLines(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}

	return lines
}
