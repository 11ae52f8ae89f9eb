package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/minegrid/board"
)

// ErrScreenClosed is returned when the screen stops delivering events.
var ErrScreenClosed = errors.New("tui: screen closed")

// Outcome is how a session ended.
type Outcome int

const (
	// Won means every safe cell was revealed.
	Won Outcome = iota
	// Lost means a hazard was revealed.
	Lost
	// Quit means the player or the context ended the session early.
	Quit
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Session is the input loop: render, poll one key, apply it, evaluate.
type Session struct {
	screen   tcell.Screen
	board    *board.Board
	renderer *Renderer
	log      logrus.FieldLogger
	turns    int
}

// NewSession binds an initialised screen to a board. A nil log discards events.
func NewSession(screen tcell.Screen, b *board.Board, log logrus.FieldLogger) *Session {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Session{
		screen:   screen,
		board:    b,
		renderer: NewRenderer(screen),
		log:      log,
	}
}

// Turns returns the number of consumed turns so far.
func (s *Session) Turns() int {
	return s.turns
}

// Run plays until the board is won or lost, the player quits, or ctx is done.
// Invalid keys are dropped without a redraw. On cancellation Run returns
// Quit together with ctx.Err().
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-stop:
		}
	}()

	s.renderer.Draw(s.board, "")
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return Quit, ErrScreenClosed
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return Quit, err
			}
		case *tcell.EventResize:
			s.screen.Sync()
			s.renderer.Draw(s.board, "")
		case *tcell.EventKey:
			if outcome, done := s.turn(Decode(ev)); done {
				return outcome, nil
			}
		}
	}
}

// turn applies one command and reports whether the session is over.
func (s *Session) turn(cmd board.Command) (Outcome, bool) {
	sig := s.board.Apply(cmd)
	s.log.WithFields(logrus.Fields{
		"command": cmd.String(),
		"signal":  sig.String(),
		"turn":    s.turns,
	}).Trace("command applied")

	switch sig {
	case board.Invalid:
		return Quit, false
	case board.Terminate:
		s.log.WithField("turns", s.turns).Info("player quit")
		return Quit, true
	case board.Loss:
		s.turns++
		s.renderer.Draw(s.board, "BOOM - you lost")
		s.log.WithField("turns", s.turns).Info("game lost")
		return Lost, true
	case board.Continue:
		s.turns++
		if s.board.IsWon() {
			s.renderer.Draw(s.board, "cleared - you won")
			s.log.WithField("turns", s.turns).Info("game won")
			return Won, true
		}
		s.renderer.Draw(s.board, "")
	}
	return Quit, false
}
