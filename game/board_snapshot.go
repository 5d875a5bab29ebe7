package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot is a textual picture of a board: one line per row, one
// character per cell.
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board,flow"`
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (board *Board) Snapshot() *BoardSnapshot {
	rows := make([]string, board.height)
	for y := 0; y < board.height; y++ {
		var row strings.Builder
		for x := 0; x < board.width; x++ {
			row.WriteString(board.cell(x, y).serialize())
		}
		rows[y] = row.String()
	}

	snapshot := &BoardSnapshot{SerializedBoard: strings.Join(rows, "\n")}
	if sampler, ok := board.sampler.(*RandSampler); ok {
		snapshot.Seed = sampler.Seed()
	}
	return snapshot
}

// CreateBoard rebuilds the board pictured by the snapshot. With fresh set,
// only the mine layout is kept and every cell starts hidden and unmarked.
// Restarting the returned board places the same mines again.
func (snapshot *BoardSnapshot) CreateBoard(fresh bool) (*Board, error) {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")

	height := len(rows)
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: empty board", ErrInvalidSnapshot)
	}

	var mines FixedSampler
	cells := make([]Cell, 0, width*height)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidSnapshot, y, len(row), width)
		}
		for x, c := range row {
			var cell Cell
			if !cell.deserialize(c) {
				return nil, fmt.Errorf("%w: unknown cell %q at (%d, %d)", ErrInvalidSnapshot, c, x, y)
			}
			if cell.mine {
				mines = append(mines, y*width+x)
			}
			cells = append(cells, cell)
		}
	}

	board, err := New(width, height, len(mines), mines)
	if err != nil {
		return nil, err
	}
	board.Setup()

	if !fresh {
		for i, cell := range cells {
			board.cells[i].revealed = cell.revealed
			board.cells[i].mark = cell.mark
			if cell.revealed && cell.mine {
				board.state = Lost
			}
		}
		board.CheckWinCondition()
	}

	return board, nil
}

func (cell *Cell) serialize() string {
	switch {
	case cell.mine:
		switch {
		case cell.revealed:
			return "*"
		case cell.mark == Flagged:
			return "F"
		case cell.mark == Uncertain:
			return "U"
		default:
			return "O"
		}
	case cell.revealed:
		return "."
	case cell.mark == Flagged:
		return "f"
	case cell.mark == Uncertain:
		return "u"
	default:
		return "#"
	}
}

func (cell *Cell) deserialize(c rune) bool {
	switch c {
	case '*', 'F', 'U', 'O':
		cell.mine = true

		switch c {
		case '*':
			cell.revealed = true
		case 'F':
			cell.mark = Flagged
		case 'U':
			cell.mark = Uncertain
		}
	case '.':
		cell.revealed = true
	case 'f':
		cell.mark = Flagged
	case 'u':
		cell.mark = Uncertain
	case '#':
	default:
		return false
	}

	return true
}
