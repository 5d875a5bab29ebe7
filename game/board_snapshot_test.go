package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardSnapshot(t *testing.T) {
	t.Run("round trip through yaml", func(t *testing.T) {
		// Given: a board in the middle of a game
		board := layoutBoard(t, "..f#\n.FuU\n###O")

		// When: it is serialized and loaded back
		out := board.Snapshot().Serialize()
		snapshot, err := LoadSnapshot(out)
		require.NoError(t, err)
		restored, err := snapshot.CreateBoard(false)
		require.NoError(t, err)

		// Then: the restored board matches the original
		assert.Equal(t, "..f#\n.FuU\n###O", snapshot.SerializedBoard)
		assert.Equal(t, board.View(), restored.View())
		assert.Equal(t, 3, restored.NumMines())
	})

	t.Run("seed is recorded", func(t *testing.T) {
		board, err := New(4, 4, 3, NewRandSampler(42))
		require.NoError(t, err)
		board.Setup()

		assert.Equal(t, int64(42), board.Snapshot().Seed)
	})

	t.Run("fresh boards keep only the mines", func(t *testing.T) {
		snapshot := BoardSnapshot{SerializedBoard: "*.\nf#"}

		board, err := snapshot.CreateBoard(true)
		require.NoError(t, err)

		assert.Equal(t, Playing, board.State())
		assert.Equal(t, "O#\n##", board.Snapshot().SerializedBoard)
	})

	t.Run("revealed mine means the game is lost", func(t *testing.T) {
		board := layoutBoard(t, "*.")
		assert.Equal(t, Lost, board.State())
	})

	errorCases := map[string]string{
		"empty":        "",
		"ragged rows":  "##\n#",
		"unknown cell": "#x",
	}
	for name, rows := range errorCases {
		t.Run(name, func(t *testing.T) {
			snapshot := BoardSnapshot{SerializedBoard: rows}
			_, err := snapshot.CreateBoard(false)
			require.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := LoadSnapshot("board: [")
		require.Error(t, err)
	})
}
