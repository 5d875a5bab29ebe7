package constraint

import (
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/they4kman/termsweep/director/random"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/util/collections"
)

// Number of simplification passes over the observations per decision
const simplifyPasses = 4

// Director plays by deduction. Every revealed number yields an observation:
// how many mines hide among its unknown neighbors. Observations are split
// against each other until some of them pin their cells down as all mines
// or all safe. Without a certain move it reveals the cell least likely to
// be a mine, and with no observations at all it plays at random.
type Director struct {
	rand   *rand.Rand
	random *random.Director

	plan *move

	observations []*Observation
}

type Observation struct {
	origin   *game.Pos
	numMines int
	cells    collections.Set[game.Pos]
}

func (observation Observation) String() string {
	cells := sortedCells(observation.cells)
	cellsRepr := make([]string, len(cells))
	for i, cell := range cells {
		cellsRepr[i] = cell.String()
	}

	originRepr := "?"
	if observation.origin != nil {
		originRepr = observation.origin.String()
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, strings.Join(cellsRepr, ", "))
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

// move is a cell the director has decided to flag or reveal
type move struct {
	target game.Pos
	flag   bool
}

func (m *move) pending(view game.BoardView) bool {
	cell := view.At(m.target.X, m.target.Y)
	if cell.Revealed {
		return false
	}
	return !m.flag || cell.Mark != game.Flagged
}

func (m *move) step(view game.BoardView) game.Action {
	if view.Cursor != m.target {
		return game.StepToward(view.Cursor, m.target)
	}

	cell := view.At(m.target.X, m.target.Y)
	if m.flag || cell.Mark != game.None {
		return game.Action{Type: game.ToggleMark}
	}
	return game.Action{Type: game.Reveal}
}

func New(seed int64) *Director {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Director{
		rand:   rand.New(rand.NewSource(seed)),
		random: random.New(seed),
	}
}

func (director *Director) Next(view game.BoardView) (game.Action, bool) {
	if view.State != game.Playing {
		director.plan = nil
		return game.Action{Type: game.Restart}, true
	}

	if director.plan == nil || !director.plan.pending(view) {
		director.plan = director.choose(view)
	}
	if director.plan == nil {
		return director.random.Next(view)
	}

	return director.plan.step(view), true
}

func (director *Director) choose(view game.BoardView) *move {
	director.observe(view)
	for i := 0; i < simplifyPasses; i++ {
		director.simplifyObservations()
	}

	if m := director.actDeliberate(); m != nil {
		return m
	}
	return director.actLowestProbability()
}

func (director *Director) actDeliberate() *move {
	for _, observation := range director.observations {
		switch observation.numMines {
		case len(observation.cells):
			return &move{target: sortedCells(observation.cells)[0], flag: true}
		case 0:
			return &move{target: sortedCells(observation.cells)[0]}
		}
	}
	return nil
}

func (director *Director) actLowestProbability() *move {
	lowestProbability := math.Inf(1)
	cellProbabilities := make(map[game.Pos]float64)
	for _, observation := range director.observations {
		probability := observation.MineProbability()

		for cell := range observation.cells {
			pastProbability, hasPastProbability := cellProbabilities[cell]
			if !hasPastProbability || probability < pastProbability {
				cellProbabilities[cell] = probability
			}
			if probability < lowestProbability {
				lowestProbability = probability
			}
		}
	}

	lowestProbabilityCells := make(collections.Set[game.Pos])
	for cell, probability := range cellProbabilities {
		if probability <= lowestProbability {
			lowestProbabilityCells.Add(cell)
		}
	}
	if len(lowestProbabilityCells) == 0 {
		return nil
	}

	cells := sortedCells(lowestProbabilityCells)
	return &move{target: cells[director.rand.Intn(len(cells))]}
}

// observe rebuilds the observations from every revealed number on the board
func (director *Director) observe(view game.BoardView) {
	director.observations = nil

	for y := 0; y < view.Height; y++ {
		for x := 0; x < view.Width; x++ {
			cell := view.At(x, y)
			if !cell.Revealed || cell.Mine {
				continue
			}

			origin := game.Pos{X: x, Y: y}
			observation := Observation{
				origin:   &origin,
				numMines: cell.Adjacent,
				cells:    make(collections.Set[game.Pos]),
			}
			for _, neighbor := range view.Neighbors(x, y) {
				neighborCell := view.At(neighbor.X, neighbor.Y)
				if neighborCell.Revealed {
					continue
				}
				if neighborCell.Mark == game.Flagged {
					observation.numMines--
				} else {
					observation.cells.Add(neighbor)
				}
			}

			director.addObservation(&observation)
		}
	}
}

func (director *Director) simplifyObservations() {
	numObservations := len(director.observations)
	for i := 0; i < numObservations; i++ {
		observation := director.observations[i]

		for j := 0; j < numObservations; j++ {
			intersectingObs := director.observations[j]
			if i == j {
				continue
			}

			isSubset := true
			sharedCells := make(collections.Set[game.Pos])
			for cell := range observation.cells {
				if intersectingObs.cells.Contains(cell) {
					sharedCells.Add(cell)
				} else {
					isSubset = false
				}
			}
			if len(sharedCells) == 0 {
				continue
			}

			if isSubset {
				director.addObservation(&Observation{
					numMines: intersectingObs.numMines - observation.numMines,
					cells:    difference(intersectingObs.cells, observation.cells),
				})
			} else if observation.numMines == 1 && len(sharedCells) > 1 {
				// At most one mine hides in the shared cells, so the rest
				// of the intersecting observation may be forced full
				leftOnlyCells := difference(intersectingObs.cells, sharedCells)
				occludedMines := intersectingObs.numMines - observation.numMines

				if occludedMines == len(leftOnlyCells) {
					director.addObservation(&Observation{
						numMines: occludedMines,
						cells:    leftOnlyCells,
					})
				}
			}
		}
	}
}

func (director *Director) addObservation(observation *Observation) {
	// Don't add vacuous observations, or ones contradicted by wrong flags
	if len(observation.cells) == 0 {
		return
	}
	if observation.numMines < 0 || observation.numMines > len(observation.cells) {
		return
	}

	// Don't add duplicates
	for _, otherObs := range director.observations {
		if reflect.DeepEqual(observation.cells, otherObs.cells) {
			return
		}
	}

	director.observations = append(director.observations, observation)
}

func difference(set, other collections.Set[game.Pos]) collections.Set[game.Pos] {
	out := make(collections.Set[game.Pos], len(set))
	for cell := range set {
		out.Add(cell)
	}
	for cell := range other {
		out.Remove(cell)
	}
	return out
}

// sortedCells orders cells row by row, so choices do not depend on map order
func sortedCells(cells collections.Set[game.Pos]) []game.Pos {
	out := cells.Slice()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
