package random

import (
	"math/rand"
	"time"

	"github.com/they4kman/termsweep/game"
)

// Director plays by walking the cursor to a random hidden, unmarked cell and
// revealing it. Once the game ends it asks for a restart.
type Director struct {
	rand   *rand.Rand
	target *game.Pos
}

func New(seed int64) *Director {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Director{rand: rand.New(rand.NewSource(seed))}
}

func (director *Director) Next(view game.BoardView) (game.Action, bool) {
	if view.State != game.Playing {
		director.target = nil
		return game.Action{Type: game.Restart}, true
	}

	if director.target == nil || !candidate(view.At(director.target.X, director.target.Y)) {
		director.target = director.pickTarget(view)
		if director.target == nil {
			return game.Action{}, false
		}
	}

	target := *director.target
	if view.Cursor == target {
		director.target = nil
		return game.Action{Type: game.Reveal}, true
	}

	return game.StepToward(view.Cursor, target), true
}

func (director *Director) pickTarget(view game.BoardView) *game.Pos {
	var candidates []game.Pos
	for y := 0; y < view.Height; y++ {
		for x := 0; x < view.Width; x++ {
			if candidate(view.At(x, y)) {
				candidates = append(candidates, game.Pos{X: x, Y: y})
			}
		}
	}

	if len(candidates) == 0 {
		return nil
	}
	return &candidates[director.rand.Intn(len(candidates))]
}

func candidate(cell game.CellView) bool {
	return !cell.Revealed && cell.Mark == game.None
}
