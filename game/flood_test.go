package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Reveal(t *testing.T) {
	t.Run("cascade from an empty corner", func(t *testing.T) {
		// Given: a 3x3 board with a single mine in the far corner
		board, err := New(3, 3, 1, FixedSampler{8})
		require.NoError(t, err)
		board.Setup()

		// When: the opposite corner is revealed
		board.Reveal(0, 0, true)

		// Then: every safe cell is revealed and the game goes on
		assert.ElementsMatch(t, []Pos{
			{0, 0}, {1, 0}, {2, 0},
			{0, 1}, {1, 1}, {2, 1},
			{0, 2}, {1, 2},
		}, revealedPositions(board))
		assert.Equal(t, Playing, board.State())
	})

	t.Run("revealing a mine loses without cascading", func(t *testing.T) {
		board := layoutBoard(t, "#O#\n###")

		board.Reveal(1, 0, true)

		assert.Equal(t, Lost, board.State())
		assert.Equal(t, []Pos{{1, 0}}, revealedPositions(board))
	})

	t.Run("numbered cell without flags does not cascade", func(t *testing.T) {
		board := layoutBoard(t, "###\n#O#\n###")

		board.Reveal(0, 0, true)

		assert.Equal(t, []Pos{{0, 0}}, revealedPositions(board))
	})

	t.Run("marked cells are protected", func(t *testing.T) {
		board := layoutBoard(t, "fF\nuU")

		for _, pos := range []Pos{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
			board.Reveal(pos.X, pos.Y, true)
			board.Reveal(pos.X, pos.Y, false)
		}

		assert.Empty(t, revealedPositions(board))
		assert.Equal(t, Playing, board.State())
	})

	t.Run("flagged neighbors satisfy a numbered cell", func(t *testing.T) {
		board := layoutBoard(t, "##\n#F")

		board.Reveal(0, 0, true)

		assert.ElementsMatch(t, []Pos{{0, 0}, {1, 0}, {0, 1}}, revealedPositions(board))
		assert.Equal(t, Playing, board.State())
	})

	t.Run("uncertain neighbors do not satisfy a numbered cell", func(t *testing.T) {
		board := layoutBoard(t, "##\n#U")

		board.Reveal(0, 0, true)

		assert.Equal(t, []Pos{{0, 0}}, revealedPositions(board))
	})

	t.Run("uncertain cells block the cascade", func(t *testing.T) {
		board := layoutBoard(t, "##u#")

		board.Reveal(0, 0, true)

		assert.ElementsMatch(t, []Pos{{0, 0}, {1, 0}}, revealedPositions(board))
	})

	t.Run("user reveal of a satisfied revealed cell reveals its neighbors", func(t *testing.T) {
		// Given: a revealed cell next to its only mine, which is flagged
		board := layoutBoard(t, "###\n#.#\n#F#")

		// When: the revealed cell is revealed again without user intent
		board.Reveal(1, 1, false)

		// Then: nothing happens
		require.Equal(t, []Pos{{1, 1}}, revealedPositions(board))

		// When: the player reveals it
		board.Reveal(1, 1, true)

		// Then: every unflagged cell is revealed
		assert.Len(t, revealedPositions(board), 8)
		cell, _ := board.CellAt(1, 2)
		assert.False(t, cell.IsRevealed())
		assert.Equal(t, Playing, board.State())
	})

	t.Run("wrong flags cascade into a mine", func(t *testing.T) {
		board := layoutBoard(t, ".O\nf#")

		board.Reveal(0, 0, true)

		assert.Equal(t, Lost, board.State())
		assert.ElementsMatch(t, []Pos{{0, 0}, {1, 0}, {1, 1}}, revealedPositions(board))
	})

	t.Run("large empty board", func(t *testing.T) {
		board, err := New(400, 400, 0, nil)
		require.NoError(t, err)
		board.Setup()

		board.Reveal(200, 200, true)

		assert.Zero(t, board.NumUnrevealed())
	})

	t.Run("out of bounds panics", func(t *testing.T) {
		board := layoutBoard(t, "##")
		assert.Panics(t, func() { board.Reveal(2, 0, true) })
		assert.Panics(t, func() { board.Reveal(0, -1, true) })
	})
}

func TestBoard_RevealIsMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	board, err := New(12, 12, 20, NewRandSampler(5))
	require.NoError(t, err)
	board.Setup()

	everRevealed := make(map[Pos]bool)
	for i := 0; i < 500; i++ {
		x, y := rng.Intn(board.Width()), rng.Intn(board.Height())
		switch rng.Intn(3) {
		case 0:
			board.Reveal(x, y, true)
		case 1:
			board.Reveal(x, y, false)
		default:
			board.CycleMark(x, y)
		}
		board.CheckWinCondition()

		for pos := range everRevealed {
			cell, _ := board.CellAt(pos.X, pos.Y)
			require.True(t, cell.IsRevealed(), "cell %s was hidden again", pos)
		}
		for _, pos := range revealedPositions(board) {
			everRevealed[pos] = true
		}
	}
}
