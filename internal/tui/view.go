package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fadegrid/internal/fade"
	"github.com/san-kum/fadegrid/internal/layout"
)

const treeGlyph = "♣"

func (m Model) View() string {
	if !m.mounted {
		return "sizing…"
	}
	if m.closed {
		return ""
	}

	now := m.clk.Now()
	frame := m.widget.Frame(now)
	th := m.theme

	var s strings.Builder
	title := m.message
	if title == "" {
		title = "fadegrid"
	}
	alpha := m.overlay.at(now)
	s.WriteString(lipgloss.NewStyle().Foreground(blend(th.Background, th.Text, alpha)).Render(title))
	s.WriteString("\n")

	s.WriteString(m.renderFrame(frame))
	s.WriteString("\n")
	s.WriteString(m.renderStatus(frame))

	if m.showHelp {
		return helpText + "\n" + s.String()
	}
	return s.String()
}

const helpText = `
╔══════════════════════════════╗
║  Q/Esc  - Quit               ║
║  T      - Cycle themes       ║
║  ?      - Toggle this help   ║
║  resize the terminal to      ║
║  re-flow the grid            ║
╚══════════════════════════════╝`

func (m Model) renderStatus(f fade.Frame) string {
	th := m.theme
	state := f.State.String()
	if !f.Visible {
		state = "waiting"
	}
	info := fmt.Sprintf("%dx%d tiles  wave %v  %s  theme %s", f.Grid.Cols, f.Grid.Rows, f.Wave, state, th.Name)
	return statusText.Foreground(th.Muted).Render(info) + "  " + keyHint.Foreground(th.Muted).Render("q quit · t theme · ? help")
}

// renderFrame draws the grid inside the frame border. Each tile covers
// TileSize/CellWidth columns and TileSize/CellHeight rows of cells.
func (m Model) renderFrame(f fade.Frame) string {
	innerW := m.width - borderCells
	innerH := m.height - chromeRows - borderCells
	if innerW <= 0 || innerH <= 0 {
		return ""
	}

	th := m.theme
	tileW := max(1, m.layout.TileSize/m.layout.CellWidth)
	tileH := max(1, m.layout.TileSize/m.layout.CellHeight)
	padW := m.layout.Padding / m.layout.CellWidth
	padH := m.layout.Padding / m.layout.CellHeight

	bg := lipgloss.NewStyle().Background(th.Background)
	blank := bg.Render(strings.Repeat(" ", innerW))

	lines := make([]string, 0, innerH)
	for i := 0; i < padH && len(lines) < innerH; i++ {
		lines = append(lines, blank)
	}

	for row := 0; row < f.Grid.Rows; row++ {
		for sub := 0; sub < tileH && len(lines) < innerH; sub++ {
			var line strings.Builder
			used := padW
			line.WriteString(bg.Render(strings.Repeat(" ", padW)))
			for col := 0; col < f.Grid.Cols && used+tileW <= innerW; col++ {
				t := f.Tiles[row*f.Grid.Cols+col]
				line.WriteString(m.renderTileRow(t, sub, tileW, tileH))
				used += tileW
			}
			if used < innerW {
				line.WriteString(bg.Render(strings.Repeat(" ", innerW-used)))
			}
			lines = append(lines, line.String())
		}
	}

	for len(lines) < innerH {
		lines = append(lines, blank)
	}

	return frameStyle.
		BorderForeground(th.Frame).
		BorderBackground(th.Frame).
		Render(strings.Join(lines, "\n"))
}

// renderTileRow draws one row of cells of a tile. The tile's footprint
// shrinks with its scale, relative to the wave peak filling the cell block.
func (m Model) renderTileRow(t fade.TileState, sub, tileW, tileH int) string {
	th := m.theme
	bg := lipgloss.NewStyle().Background(th.Background)

	fw, fh := footprint(tileW, t.Scale), footprint(tileH, t.Scale)
	top := (tileH - fh) / 2
	if t.Opacity <= 0 || fw == 0 || sub < top || sub >= top+fh {
		return bg.Render(strings.Repeat(" ", tileW))
	}

	left := (tileW - fw) / 2
	right := tileW - fw - left
	tile := lipgloss.NewStyle().
		Background(blend(th.Background, th.Tile, t.Opacity)).
		Foreground(blend(th.Background, th.Tree, t.Opacity))

	body := strings.Repeat(" ", fw)
	if sub == top+fh/2 && fw >= 3 {
		mid := fw / 2
		body = strings.Repeat(" ", mid) + treeGlyph + strings.Repeat(" ", fw-mid-1)
	}
	return bg.Render(strings.Repeat(" ", left)) + tile.Render(body) + bg.Render(strings.Repeat(" ", right))
}

func footprint(cells int, scale float64) int {
	n := int(math.Round(float64(cells) * scale / layout.WavePeak))
	if n < 0 {
		return 0
	}
	if n > cells {
		return cells
	}
	return n
}
