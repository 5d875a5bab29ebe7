package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/they4kman/termsweep/game"
)

// Command is a decoded input event. Target is set for mouse clicks, which
// select a cell before the action runs.
type Command struct {
	Action game.Action
	Target *game.Pos
}

var runeActions = map[rune]game.Action{
	'h': game.Move(-1, 0),
	'l': game.Move(1, 0),
	'k': game.Move(0, -1),
	'j': game.Move(0, 1),
	' ': {Type: game.Reveal},
	'f': {Type: game.Reveal},
	'd': {Type: game.ToggleMark},
	'r': {Type: game.Restart},
	'q': {Type: game.Quit},
}

var keyActions = map[tcell.Key]game.Action{
	tcell.KeyLeft:   game.Move(-1, 0),
	tcell.KeyRight:  game.Move(1, 0),
	tcell.KeyUp:     game.Move(0, -1),
	tcell.KeyDown:   game.Move(0, 1),
	tcell.KeyEnter:  {Type: game.Reveal},
	tcell.KeyEscape: {Type: game.Quit},
	tcell.KeyCtrlC:  {Type: game.Quit},
}

func DecodeKey(event *tcell.EventKey) (Command, bool) {
	if event.Key() == tcell.KeyRune {
		action, ok := runeActions[event.Rune()]
		return Command{Action: action}, ok
	}

	action, ok := keyActions[event.Key()]
	return Command{Action: action}, ok
}

// MouseDecoder turns button presses over the board into commands. Motion
// and release events are dropped.
type MouseDecoder struct {
	Width, Height int

	pressed tcell.ButtonMask
}

func (decoder *MouseDecoder) Decode(event *tcell.EventMouse) (Command, bool) {
	buttons := event.Buttons()
	newlyPressed := buttons &^ decoder.pressed
	decoder.pressed = buttons

	var action game.Action
	switch {
	case newlyPressed&tcell.Button1 != 0:
		action = game.Action{Type: game.Reveal}
	case newlyPressed&tcell.Button2 != 0:
		action = game.Action{Type: game.ToggleMark}
	default:
		return Command{}, false
	}

	x, y := event.Position()
	target := game.Pos{X: x, Y: y - boardTop}
	if target.X < 0 || target.Y < 0 || target.X >= decoder.Width || target.Y >= decoder.Height {
		return Command{}, false
	}

	return Command{Action: action, Target: &target}, true
}
