package board

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// Option configures a Board at construction time.
type Option func(*Board)

// WithLogger routes board events to l. The default logger discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(b *Board) {
		if l != nil {
			b.log = l
		}
	}
}

// WithRand sets the random source used by Randomize.
func WithRand(r *rand.Rand) Option {
	return func(b *Board) {
		if r != nil {
			b.rng = r
		}
	}
}

// WithSeed seeds a PCG source for Randomize, making placement reproducible.
func WithSeed(seed uint64) Option {
	return func(b *Board) {
		b.rng = rand.New(rand.NewSource(seed))
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func timeSeeded() *rand.Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}
