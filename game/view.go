package game

// CellView is what a renderer needs to pick a glyph for one cell
type CellView struct {
	Revealed bool
	Mine     bool
	Adjacent int
	Mark     Mark
}

// BoardView is a read-only copy of the board, safe to hand to display code
type BoardView struct {
	Width, Height  int
	Cells          []CellView // row-major
	Cursor         Pos
	State          BoardState
	MinesRemaining int
}

func (view BoardView) At(x, y int) CellView {
	return view.Cells[y*view.Width+x]
}

// Neighbors returns the in-bounds positions of the 8-neighborhood of (x, y)
func (view BoardView) Neighbors(x, y int) []Pos {
	return neighbors(view.Width, view.Height, Pos{x, y})
}

func (board *Board) View() BoardView {
	cells := make([]CellView, len(board.cells))
	for i, cell := range board.cells {
		cells[i] = CellView{
			Revealed: cell.revealed,
			Mine:     cell.mine,
			Adjacent: cell.adjacent,
			Mark:     cell.mark,
		}
	}

	return BoardView{
		Width:          board.width,
		Height:         board.height,
		Cells:          cells,
		Cursor:         board.cursor,
		State:          board.state,
		MinesRemaining: board.numMines - board.NumFlags(),
	}
}
