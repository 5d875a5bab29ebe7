package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/termsweep/util/collections"
)

// Reveal uncovers (x, y) while the game is being played. Marked cells are never revealed. A revealed safe
// cell whose flagged neighbors match its mine count is satisfied, and
// reveals every unmarked neighbor in turn; this repeats until no satisfied
// cell remains pending. Only a user-initiated reveal may re-examine a cell
// that is already revealed.
//
// The cascade runs on an explicit worklist, so its depth does not grow the
// call stack.
func (board *Board) Reveal(x, y int, userInitiated bool) {
	var pending deque.Deque
	visited := make(collections.Set[Pos])

	start := Pos{x, y}
	board.cell(x, y) // bounds check
	if board.state != Playing {
		return
	}
	pending.PushBack(start)
	visited.Add(start)

	for pending.Len() > 0 {
		pos := pending.PopFront().(Pos)
		cell := board.cell(pos.X, pos.Y)

		if cell.mark != None {
			continue
		}
		if cell.revealed && !(userInitiated && pos == start) {
			continue
		}
		cell.revealed = true

		if cell.mine {
			board.lose()
			continue
		}

		if board.flaggedNeighbors(pos) != cell.adjacent {
			continue
		}

		for _, neighbor := range board.Neighbors(pos.X, pos.Y) {
			if visited.Contains(neighbor) {
				continue
			}
			if board.cell(neighbor.X, neighbor.Y).mark != None {
				continue
			}
			visited.Add(neighbor)
			pending.PushBack(neighbor)
		}
	}
}
