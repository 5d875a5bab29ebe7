package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/termsweep/game"
)

var Log = logrus.New()

// Session drives a board from terminal events. It is the only writer of the
// board: director ticks arrive as interrupt events on the same loop.
type Session struct {
	screen tcell.Screen
	board  *game.Board
	mouse  MouseDecoder

	director         game.Director
	directorInterval time.Duration
}

type Option func(*Session)

// WithDirector lets the director play, taking one action per interval
func WithDirector(director game.Director, interval time.Duration) Option {
	return func(session *Session) {
		session.director = director
		session.directorInterval = interval
	}
}

func NewSession(screen tcell.Screen, board *game.Board, options ...Option) *Session {
	session := &Session{
		screen: screen,
		board:  board,
		mouse:  MouseDecoder{Width: board.Width(), Height: board.Height()},
	}
	for _, option := range options {
		option(session)
	}
	return session
}

// Run puts the terminal into full-screen mode, plays until the player quits
// and restores the terminal on every exit path
func Run(board *game.Board, options ...Option) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("unable to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("unable to initialize terminal: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			panic(r)
		}
		screen.Fini()
	}()

	screen.EnableMouse()
	NewSession(screen, board, options...).Loop()
	return nil
}

// Loop processes events until a quit action
func (session *Session) Loop() {
	if session.director != nil && session.directorInterval > 0 {
		done := make(chan struct{})
		defer close(done)
		go session.tick(done)
	}

	Render(session.screen, session.board.View())

	for {
		event := session.screen.PollEvent()
		if event == nil {
			return
		}

		var (
			command Command
			ok      bool
		)
		switch event := event.(type) {
		case *tcell.EventResize:
			session.screen.Sync()
		case *tcell.EventKey:
			command, ok = DecodeKey(event)
		case *tcell.EventMouse:
			command, ok = session.mouse.Decode(event)
		case *tcell.EventInterrupt:
			if session.director != nil {
				command.Action, ok = session.director.Next(session.board.View())
			}
		}

		if ok && session.handle(command) {
			return
		}
		Render(session.screen, session.board.View())
	}
}

func (session *Session) handle(command Command) bool {
	board := session.board
	if command.Target != nil && board.State() == game.Playing {
		board.MoveCursor(command.Target.X, command.Target.Y)
	}

	state := board.State()
	quit := board.Apply(command.Action)

	entry := Log.WithFields(logrus.Fields{
		"action": command.Action.Type,
		"cursor": board.Cursor(),
	})
	entry.Debug("applied action")
	if board.State() != state {
		entry.WithField("state", board.State()).Info("board state changed")
	}

	return quit
}

func (session *Session) tick(done <-chan struct{}) {
	ticker := time.NewTicker(session.directorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			// A full queue just drops this tick
			_ = session.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}
}
