package folderdrop

import (
	"fmt"
	"math"
	"slices"

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

	// expect fields
	Container *int      `yaml:"container,omitempty"`
	Item      *int      `yaml:"item,omitempty"`
	Sequence  []int     `yaml:"sequence,omitempty"`
	Alive     *bool     `yaml:"alive,omitempty"`
	Position  []float64 `yaml:"position,omitempty"`
}

// testScript is the top-level structure for a test script.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

// TestRunner sequences injected pointer input and state expectations across
// ticks for headless testing. Attach to a World via SetTestRunner.
//
// Scripts are YAML; JSON documents parse as well. Actions:
//
//	press, move, release  {x, y}        one synthetic pointer event
//	click                 {x, y}        press + release
//	drag                  {fromX, fromY, toX, toY, frames}
//	wait                  {frames}
//	expect                {container, sequence} | {item, alive} | {item, position: [x, y]}
//
// Coordinates are raw screen pixels; expect positions are world space.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []string
}

// LoadTestScript parses a test script and returns a TestRunner ready to be
// attached to a World via SetTestRunner.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w", ErrNoSteps)
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "move", "release", "click", "drag", "wait":
		case "expect":
			if st.Container == nil && st.Item == nil {
				return nil, fmt.Errorf("parse test script: step %d: expect needs container or item", i)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the world. The runner steps at the
// start of every Update, before input is read.
func (w *World) SetTestRunner(runner *TestRunner) {
	w.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns one message per failed expect step.
func (r *TestRunner) Failures() []string {
	return r.failures
}

// step advances the runner by one tick. Called from World.Update.
func (r *TestRunner) step(w *World) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(w.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}

	// Expectations run back to back; they do not consume input.
	for r.cursor < len(r.steps) && r.steps[r.cursor].Action == "expect" {
		r.check(w, r.cursor, r.steps[r.cursor])
		r.cursor++
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		w.InjectPress(st.X, st.Y)
	case "move":
		w.InjectMove(st.X, st.Y)
	case "release":
		w.InjectRelease(st.X, st.Y)
	case "click":
		w.InjectClick(st.X, st.Y)
	case "drag":
		w.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}
}

func (r *TestRunner) check(w *World, index int, st testStep) {
	fail := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		if st.Label != "" {
			msg = st.Label + ": " + msg
		}
		r.failures = append(r.failures, fmt.Sprintf("step %d: %s", index, msg))
	}

	if st.Container != nil {
		ch, ok := w.ContainerByID(ContainerID(*st.Container))
		if !ok {
			fail("container %d does not exist", *st.Container)
			return
		}
		c, _ := w.Container(ch)
		if st.Sequence != nil {
			got := make([]int, len(c.Sequence))
			for i, id := range c.Sequence {
				got[i] = int(id)
			}
			if !slices.Equal(got, st.Sequence) {
				fail("container %d sequence = %v, want %v", *st.Container, got, st.Sequence)
			}
		}
	}

	if st.Item != nil {
		h, alive := w.ItemByID(ItemID(*st.Item))
		if st.Alive != nil && alive != *st.Alive {
			fail("item %d alive = %v, want %v", *st.Item, alive, *st.Alive)
			return
		}
		if len(st.Position) == 2 {
			if !alive {
				fail("item %d is gone, cannot check position", *st.Item)
				return
			}
			it, _ := w.Item(h)
			if math.Abs(it.Position.X-st.Position[0]) > 1e-9 || math.Abs(it.Position.Y-st.Position[1]) > 1e-9 {
				fail("item %d position = (%v, %v), want (%v, %v)",
					*st.Item, it.Position.X, it.Position.Y, st.Position[0], st.Position[1])
			}
		}
	}
}
