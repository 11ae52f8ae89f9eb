package tui_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/minegrid/board"
	"github.com/katalvlaran/minegrid/tui"
)

// SessionSuite drives whole games through a simulated terminal.
type SessionSuite struct {
	suite.Suite
	screen tcell.SimulationScreen
	log    *logrus.Logger
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.screen = tcell.NewSimulationScreen("UTF-8")
	require.NoError(s.T(), s.screen.Init())
	s.screen.SetSize(40, 12)
	s.log = logrus.New()
	s.log.SetOutput(io.Discard)
}

func (s *SessionSuite) TearDownTest() {
	s.screen.Fini()
}

func (s *SessionSuite) keys(runes ...rune) {
	for _, r := range runes {
		s.screen.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
}

// TestWin walks to the open corner and floods the board.
func (s *SessionSuite) TestWin() {
	b := layout(s.T(), "..x", "...", "...")
	s.keys('z', 'j', 'j', ' ')

	sess := tui.NewSession(s.screen, b, s.log)
	outcome, err := sess.Run(context.Background())
	require.NoError(s.T(), err)
	require.Equal(s.T(), tui.Won, outcome)
	require.Equal(s.T(), 3, sess.Turns(), "invalid key must not consume a turn")
	require.True(s.T(), b.IsWon())
}

// TestLoss reveals the hazard under the starting cursor.
func (s *SessionSuite) TestLoss() {
	b := layout(s.T(), "x..", "...", "...")
	s.screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	outcome, err := tui.NewSession(s.screen, b, s.log).Run(context.Background())
	require.NoError(s.T(), err)
	require.Equal(s.T(), tui.Lost, outcome)
	require.Equal(s.T(), board.Lost, b.Outcome())
}

// TestQuit stops without evaluating the board.
func (s *SessionSuite) TestQuit() {
	b := layout(s.T(), "x..", "...", "...")
	s.keys('f', 'q')

	outcome, err := tui.NewSession(s.screen, b, s.log).Run(context.Background())
	require.NoError(s.T(), err)
	require.Equal(s.T(), tui.Quit, outcome)
	require.Equal(s.T(), 1, b.FlagCount())
	require.Equal(s.T(), board.InProgress, b.Outcome())
}

// TestCancel ends a session blocked on input when the context is cancelled.
func (s *SessionSuite) TestCancel() {
	b := layout(s.T(), "x..", "...", "...")
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	outcome, err := tui.NewSession(s.screen, b, s.log).Run(ctx)
	require.ErrorIs(s.T(), err, context.DeadlineExceeded)
	require.Equal(s.T(), tui.Quit, outcome)
}
