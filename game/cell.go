package game

import "fmt"

type Pos struct {
	X, Y int
}

func (pos Pos) String() string {
	return fmt.Sprintf("(%d, %d)", pos.X, pos.Y)
}

func (pos Pos) Add(other Pos) Pos {
	return Pos{pos.X + other.X, pos.Y + other.Y}
}

// Cell is the state of a single grid position. A mine carries no adjacency
// count; a safe cell carries the number of mines among its neighbors.
type Cell struct {
	mine     bool
	adjacent int

	revealed bool
	mark     Mark
}

func (cell Cell) IsMine() bool {
	return cell.mine
}

// Adjacent returns the number of neighboring mines, or 0 for a mine
func (cell Cell) Adjacent() int {
	return cell.adjacent
}

func (cell Cell) IsRevealed() bool {
	return cell.revealed
}

func (cell Cell) Mark() Mark {
	return cell.mark
}

func (cell Cell) IsFlagged() bool {
	return cell.mark == Flagged
}

func (cell *Cell) reset(mine bool) {
	cell.mine = mine
	cell.adjacent = 0
	cell.revealed = false
	cell.mark = None
}

func (cell Cell) String() string {
	switch {
	case cell.mine:
		return "Mine"
	default:
		return fmt.Sprintf("Empty(%d)", cell.adjacent)
	}
}
