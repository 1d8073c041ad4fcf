package layout

const (
	DefaultTileSize = 64
	DefaultPadding  = 16
)

// Grid is the number of whole tiles that fit a viewport.
type Grid struct {
	Cols int
	Rows int
}

func (g Grid) Tiles() int { return g.Cols * g.Rows }

// Position returns the column and row of tile i in row-major order.
func (g Grid) Position(i int) (col, row int) {
	if g.Cols <= 0 {
		return 0, 0
	}
	return i % g.Cols, i / g.Cols
}

// ComputeGrid fits square tiles into a viewport inset by padding on every
// side. Dimensions that would go negative are clamped to zero.
func ComputeGrid(width, height, tileSize, padding int) Grid {
	if tileSize <= 0 {
		return Grid{}
	}
	return Grid{
		Cols: fit(width, tileSize, padding),
		Rows: fit(height, tileSize, padding),
	}
}

func fit(extent, tileSize, padding int) int {
	usable := extent - 2*padding
	if usable <= 0 {
		return 0
	}
	return usable / tileSize
}
