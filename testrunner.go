package expand

import (
	"encoding/json"
	"fmt"
)

// gestureStep represents a single action in a gesture script.
type gestureStep struct {
	Action   string  `json:"action"`
	ID       int     `json:"id,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	FromSpan float64 `json:"fromSpan,omitempty"`
	ToSpan   float64 `json:"toSpan,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []gestureStep `json:"steps"`
}

var knownStepActions = map[string]bool{
	"down": true, "pointerDown": true, "move": true, "pointerUp": true,
	"up": true, "cancel": true, "drag": true, "pinch": true, "wait": true,
}

// TestRunner sequences injected pointer events across frames for automated
// gesture testing. Attach to an Input via SetTestRunner.
type TestRunner struct {
	steps     []gestureStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON gesture script and returns a TestRunner ready
// to be attached to an Input via SetTestRunner.
//
//	{"steps": [
//		{"action": "down", "x": 100, "y": 40},
//		{"action": "move", "id": 0, "x": 100, "y": 90},
//		{"action": "up"},
//		{"action": "wait", "frames": 20}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		if !knownStepActions[st.Action] {
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the input. The runner's step method
// is called from Input.Update before any input is processed each frame.
func (in *Input) SetTestRunner(runner *TestRunner) {
	in.testRunner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Input.Update.
func (r *TestRunner) step(in *Input) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(in.injectQueue) > 0 {
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
	case "down":
		in.InjectDown(st.X, st.Y)
	case "pointerDown":
		in.InjectPointerDown(st.ID, st.X, st.Y)
	case "move":
		in.InjectMove(st.ID, st.X, st.Y)
	case "pointerUp":
		in.InjectPointerUp(st.ID)
	case "up":
		in.InjectUp()
	case "cancel":
		in.InjectCancel()
	case "drag":
		in.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "pinch":
		in.InjectPinch(st.X, st.Y, st.FromSpan, st.ToSpan, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(in.injectQueue) == 0 {
		r.done = true
	}
}
