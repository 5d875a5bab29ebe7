package game

type Mark int
type BoardState int

const (
	None Mark = iota
	Flagged
	Uncertain
)

// Next returns the mark following this one in the None, Flagged, Uncertain cycle
func (mark Mark) Next() Mark {
	switch mark {
	case None:
		return Flagged
	case Flagged:
		return Uncertain
	default:
		return None
	}
}

func (mark Mark) String() string {
	switch mark {
	case Flagged:
		return "flagged"
	case Uncertain:
		return "uncertain"
	default:
		return "none"
	}
}

const (
	Playing BoardState = iota
	Won
	Lost
)

func (state BoardState) String() string {
	switch state {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Offsets of the 8-neighborhood of a cell
var neighborOffsets = [8]Pos{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
