package popup

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
}

// testScript is the top-level structure for a test script.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

var knownActions = map[string]bool{
	"click": true, "press": true, "move": true, "release": true,
	"drag": true, "hold": true, "wait": true,
	"keyboard": true, "resize": true, "dismiss": true,
}

// TestRunner sequences injected input and environment changes across frames
// for automated testing. Attach to a Scene via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a YAML or JSON test script and returns a TestRunner
// ready to be attached to a Scene via SetTestRunner.
//
//	steps:
//	  - {action: drag, fromX: 160, fromY: 400, toX: 160, toY: 600, frames: 12}
//	  - {action: hold, x: 160, y: 600, frames: 8}
//	  - {action: keyboard, height: 260}
//	  - {action: resize, width: 480, height: 320}
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before processInput each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		s.InjectClick(st.X, st.Y)
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "drag":
		frames := max(st.Frames, 2)
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "hold":
		s.InjectHold(st.X, st.Y, max(st.Frames, 1))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "keyboard":
		if st.Height > 0 {
			s.ShowKeyboard(st.Height)
		} else {
			s.HideKeyboard()
		}
	case "resize":
		s.SetBounds(Rect{X: s.bounds.X, Y: s.bounds.Y, Width: st.Width, Height: st.Height})
	case "dismiss":
		if err := s.Dismiss(); err != nil {
			s.logger.Debug().Err(err).Str("label", st.Label).Msg("scripted dismiss ignored")
		}
	}

	s.logger.Debug().Str("action", st.Action).Int("step", r.cursor-1).Msg("test step")

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
