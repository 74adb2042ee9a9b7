package popup

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// newDebugLogger returns the console logger debug mode falls back to when
// no logger was set.
func newDebugLogger() zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(w).With().Timestamp().Str("lib", "popup").Logger().Level(zerolog.DebugLevel)
}

// debugCheckDisposed panics with a descriptive message when a disposed view
// is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(v *View, op string) {
	if v.disposed {
		panic(fmt.Sprintf("popup debug: %s on disposed view %q (ID was %d)", op, v.Name, v.ID))
	}
}

// debugMaxTreeDepth is the depth above which debug mode warns.
const debugMaxTreeDepth = 32

func (s *Scene) debugCheckTreeDepth(v *View) {
	depth := 0
	for p := v; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		s.logger.Warn().
			Int("depth", depth).
			Int("threshold", debugMaxTreeDepth).
			Str("view", v.Name).
			Msg("tree depth exceeds threshold")
	}
}

// debugMaxChildCount is the child count above which debug mode warns.
const debugMaxChildCount = 1000

func (s *Scene) debugCheckChildCount(v *View) {
	if len(v.children) > debugMaxChildCount {
		s.logger.Warn().
			Int("children", len(v.children)).
			Int("threshold", debugMaxChildCount).
			Str("view", v.Name).
			Msg("view has too many children")
	}
}
