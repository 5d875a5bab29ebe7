package game

type ActionType int

const (
	MoveCursor ActionType = iota
	Reveal
	ToggleMark
	Restart
	Quit
)

func (actionType ActionType) String() string {
	switch actionType {
	case MoveCursor:
		return "move"
	case Reveal:
		return "reveal"
	case ToggleMark:
		return "mark"
	case Restart:
		return "restart"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Action is a single player command, applied at the cursor. DX and DY are
// only meaningful for MoveCursor, and are each one of -1, 0, 1.
type Action struct {
	Type   ActionType
	DX, DY int
}

func Move(dx, dy int) Action {
	return Action{Type: MoveCursor, DX: dx, DY: dy}
}

// StepToward returns the cursor move that brings from one step closer to
// target, diagonals included
func StepToward(from, target Pos) Action {
	return Move(sign(target.X-from.X), sign(target.Y-from.Y))
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Director chooses actions on behalf of the player
type Director interface {
	Next(view BoardView) (Action, bool)
}

// Apply runs the action against the cursor position and then checks for a
// win. While the game is running restart is ignored; once it has ended only
// restart and quit are accepted. It returns true when the action asks to
// quit.
func (board *Board) Apply(action Action) bool {
	if action.Type == Quit {
		return true
	}

	cursor := board.cursor
	if board.state == Playing {
		switch action.Type {
		case MoveCursor:
			board.nudgeCursor(action.DX, action.DY)
		case Reveal:
			board.Reveal(cursor.X, cursor.Y, true)
		case ToggleMark:
			board.CycleMark(cursor.X, cursor.Y)
		}
	} else if action.Type == Restart {
		board.Setup()
	}

	board.CheckWinCondition()
	return false
}

func (board *Board) nudgeCursor(dx, dy int) {
	cursor := board.cursor
	if dx != 0 && !(dx < 0 && cursor.X == 0) {
		board.MoveCursorX(cursor.X + dx)
	}
	if dy != 0 && !(dy < 0 && cursor.Y == 0) {
		board.MoveCursorY(board.cursor.Y + dy)
	}
}
