package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/they4kman/termsweep/game"
)

const (
	title      = "Minesweeper! (Press q to quit)"
	winBanner  = "Congratulations! You win the game! (Press r to restart, q to quit)"
	loseBanner = "Game Over! (Press r to restart, q to quit)"

	// Rows above the first row of the board
	boardTop = 2
)

const (
	glyphHidden    = '▓'
	glyphFlagged   = '✓'
	glyphUncertain = '?'
	glyphEmpty     = '░'
	glyphMine      = 'x'
	glyphWrongFlag = '✗'
)

var numberColors = [9]tcell.Color{
	tcell.ColorDefault,
	tcell.ColorBlue,
	tcell.ColorGreen,
	tcell.ColorRed,
	tcell.ColorNavy,
	tcell.ColorMaroon,
	tcell.ColorTeal,
	tcell.ColorDefault,
	tcell.ColorGray,
}

// Glyph picks the character and style for a single cell. Once the game is
// lost, hidden mines and wrongly flagged cells are shown too.
func Glyph(cell game.CellView, state game.BoardState) (rune, tcell.Style) {
	style := tcell.StyleDefault

	if !cell.Revealed {
		lost := state == game.Lost
		switch {
		case lost && cell.Mark == game.Flagged && !cell.Mine:
			return glyphWrongFlag, style.Foreground(tcell.ColorRed).Bold(true)
		case lost && cell.Mark != game.Flagged && cell.Mine:
			return glyphMine, style.Foreground(tcell.ColorRed)
		}

		switch cell.Mark {
		case game.Flagged:
			return glyphFlagged, style.Foreground(tcell.ColorRed)
		case game.Uncertain:
			return glyphUncertain, style.Foreground(tcell.ColorYellow)
		default:
			return glyphHidden, style
		}
	}

	switch {
	case cell.Mine:
		return glyphMine, style.Foreground(tcell.ColorRed).Bold(true)
	case cell.Adjacent == 0:
		return glyphEmpty, style
	default:
		return rune('0' + cell.Adjacent), style.Foreground(numberColors[cell.Adjacent])
	}
}

// Render draws the whole board and places the terminal cursor on the
// selected cell
func Render(screen tcell.Screen, view game.BoardView) {
	screen.Clear()

	drawText(screen, 0, 0, tcell.StyleDefault, title)

	for y := 0; y < view.Height; y++ {
		for x := 0; x < view.Width; x++ {
			glyph, style := Glyph(view.At(x, y), view.State)
			screen.SetContent(x, boardTop+y, glyph, nil, style)
		}
	}

	statusRow := boardTop + view.Height + 1
	drawText(screen, 0, statusRow, tcell.StyleDefault, fmt.Sprintf("Mines: %d", view.MinesRemaining))

	switch view.State {
	case game.Won:
		drawText(screen, 0, statusRow+1, tcell.StyleDefault.Foreground(tcell.ColorGreen), winBanner)
	case game.Lost:
		drawText(screen, 0, statusRow+1, tcell.StyleDefault.Foreground(tcell.ColorRed), loseBanner)
	}

	screen.ShowCursor(view.Cursor.X, boardTop+view.Cursor.Y)
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
