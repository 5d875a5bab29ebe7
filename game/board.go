package game

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Board struct {
	width, height int // in number of cells
	numMines      int
	cells         []Cell

	cursor Pos
	state  BoardState

	sampler Sampler
}

// New validates the board configuration and allocates the grid. The board
// holds no mines until Setup is called.
func New(width, height, numMines int, sampler Sampler) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	if numMines < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeMines, numMines)
	}
	if numMines > width*height {
		return nil, fmt.Errorf("%w: %d mines on a %dx%d board", ErrTooManyMines, numMines, width, height)
	}
	if sampler == nil {
		sampler = NewRandSampler(0)
	}

	return &Board{
		width:    width,
		height:   height,
		numMines: numMines,
		cells:    make([]Cell, width*height),
		state:    Playing,
		sampler:  sampler,
	}, nil
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumCells() int {
	return board.width * board.height
}

func (board *Board) State() BoardState {
	return board.state
}

func (board *Board) Cursor() Pos {
	return board.cursor
}

func (board *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < board.width && y < board.height
}

// CellAt returns a copy of the cell at (x, y), and false if out of bounds
func (board *Board) CellAt(x, y int) (Cell, bool) {
	if !board.InBounds(x, y) {
		return Cell{}, false
	}
	return board.cells[board.index(x, y)], true
}

func (board *Board) index(x, y int) int {
	return y*board.width + x
}

func (board *Board) pos(idx int) Pos {
	return Pos{idx % board.width, idx / board.width}
}

// cell returns the cell at (x, y). Coordinates outside the grid are a
// programming error.
func (board *Board) cell(x, y int) *Cell {
	if !board.InBounds(x, y) {
		panic(fmt.Sprintf("cell (%d, %d) out of bounds of %dx%d board", x, y, board.width, board.height))
	}
	return &board.cells[board.index(x, y)]
}

// Neighbors returns the in-bounds positions of the 8-neighborhood of (x, y)
func (board *Board) Neighbors(x, y int) []Pos {
	return neighbors(board.width, board.height, Pos{x, y})
}

func neighbors(width, height int, pos Pos) []Pos {
	out := make([]Pos, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		neighbor := pos.Add(offset)
		if neighbor.X >= 0 && neighbor.Y >= 0 && neighbor.X < width && neighbor.Y < height {
			out = append(out, neighbor)
		}
	}
	return out
}

func (board *Board) NumFlags() int {
	numFlags := 0
	for _, cell := range board.cells {
		if cell.mark == Flagged {
			numFlags++
		}
	}
	return numFlags
}

func (board *Board) NumUnrevealed() int {
	numUnrevealed := 0
	for _, cell := range board.cells {
		if !cell.revealed {
			numUnrevealed++
		}
	}
	return numUnrevealed
}

// Setup re-randomizes the mine layout and resets every cell and the board
// state. It may be called any number of times.
func (board *Board) Setup() {
	for i := range board.cells {
		board.cells[i].reset(false)
	}

	mines := board.sampler.Sample(board.NumCells(), board.numMines)
	if len(mines) != board.numMines {
		panic(fmt.Sprintf("sampler returned %d mines, expected %d", len(mines), board.numMines))
	}
	for _, idx := range mines {
		cell := &board.cells[idx]
		if cell.mine {
			panic(fmt.Sprintf("sampler returned duplicate mine index %d", idx))
		}
		cell.mine = true
	}

	board.countAdjacent()
	board.state = Playing

	Log.WithFields(logrus.Fields{
		"width":  board.width,
		"height": board.height,
		"mines":  board.numMines,
	}).Debug("board set up")
}

func (board *Board) countAdjacent() {
	for idx := range board.cells {
		cell := &board.cells[idx]
		if cell.mine {
			continue
		}

		pos := board.pos(idx)
		for _, neighbor := range board.Neighbors(pos.X, pos.Y) {
			if board.cells[board.index(neighbor.X, neighbor.Y)].mine {
				cell.adjacent++
			}
		}
	}
}

// MoveCursor moves the cursor to (x, y), or does nothing if (x, y) lies
// outside the board
func (board *Board) MoveCursor(x, y int) {
	if board.InBounds(x, y) {
		board.cursor = Pos{x, y}
	}
}

func (board *Board) MoveCursorX(x int) {
	board.MoveCursor(x, board.cursor.Y)
}

func (board *Board) MoveCursorY(y int) {
	board.MoveCursor(board.cursor.X, y)
}

// CycleMark rotates the mark of (x, y) through None, Flagged, Uncertain.
// Revealed cells keep whatever mark they are given. Marks are frozen once
// the game has ended.
func (board *Board) CycleMark(x, y int) {
	cell := board.cell(x, y)
	if board.state != Playing {
		return
	}
	cell.mark = cell.mark.Next()
}

func (board *Board) flaggedNeighbors(pos Pos) int {
	numFlagged := 0
	for _, neighbor := range board.Neighbors(pos.X, pos.Y) {
		if board.cell(neighbor.X, neighbor.Y).mark == Flagged {
			numFlagged++
		}
	}
	return numFlagged
}

// CheckWinCondition declares the game won once the number of unrevealed
// cells and the number of flags both equal the number of mines. Flags are
// not checked against mine positions.
func (board *Board) CheckWinCondition() {
	if board.state != Playing {
		return
	}

	numMines := board.numMines
	if board.NumUnrevealed() == numMines && board.NumFlags() == numMines {
		board.win()
	}
}

func (board *Board) win() {
	if board.state != Playing {
		return
	}
	board.state = Won
	board.endGame()
}

func (board *Board) lose() {
	if board.state != Playing {
		return
	}
	board.state = Lost
	board.endGame()
}

func (board *Board) endGame() {
	entry := Log.WithFields(logrus.Fields{
		"state":  board.state,
		"cursor": board.cursor,
	})
	entry.Info("game ended")

	if Log.IsLevelEnabled(logrus.DebugLevel) {
		snapshot := board.Snapshot()
		entry.Debugf("final board:\n%s", snapshot.SerializedBoard)
	}
}
