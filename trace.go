package gesture

import (
	"encoding/json"
	"fmt"
)

// traceStep is a single action in a trace script.
type traceStep struct {
	Action     string        `json:"action"`
	ID         int           `json:"id,omitempty"`
	X          float64       `json:"x,omitempty"`
	Y          float64       `json:"y,omitempty"`
	FromX      float64       `json:"fromX,omitempty"`
	FromY      float64       `json:"fromY,omitempty"`
	ToX        float64       `json:"toX,omitempty"`
	ToY        float64       `json:"toY,omitempty"`
	FromSpread float64       `json:"fromSpread,omitempty"`
	ToSpread   float64       `json:"toSpread,omitempty"`
	Steps      int           `json:"steps,omitempty"`
	Kind       string        `json:"kind,omitempty"`
	Touches    []TouchSample `json:"touches,omitempty"`
	Seconds    float32       `json:"seconds,omitempty"`
}

// traceScript is the top-level JSON structure for a trace.
type traceScript struct {
	Steps []traceStep `json:"steps"`
}

var traceActions = map[string]bool{
	"press": true, "move": true, "release": true, "releaseAll": true,
	"drag": true, "pinch": true, "frame": true,
	"acquire": true, "lose": true, "wait": true,
}

// Trace is a recorded or hand-written touch session that can be replayed
// against a surface.
type Trace struct {
	steps []traceStep
}

// LoadTrace parses a JSON trace script:
//
//	{"steps": [
//	  {"action": "acquire"},
//	  {"action": "drag", "id": 1, "fromX": 100, "fromY": 100, "toX": 110, "toY": 100, "steps": 1},
//	  {"action": "pinch", "id": 1, "x": 200, "y": 200, "fromSpread": 50, "toSpread": 60, "steps": 1},
//	  {"action": "frame", "kind": "move", "touches": [{"id": 1, "x": 3, "y": 4}]},
//	  {"action": "wait", "seconds": 0.5}
//	]}
func LoadTrace(jsonData []byte) (*Trace, error) {
	var script traceScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse trace: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse trace: no steps")
	}
	for i, st := range script.Steps {
		if !traceActions[st.Action] {
			return nil, fmt.Errorf("parse trace: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "frame" {
			if _, ok := touchKindByName[st.Kind]; !ok {
				return nil, fmt.Errorf("parse trace: step %d: unknown touch kind %q", i, st.Kind)
			}
		}
	}
	return &Trace{steps: script.Steps}, nil
}

// Len returns the number of steps.
func (t *Trace) Len() int {
	return len(t.steps)
}

// Run replays every step against surface. Visibility and wait steps act on
// scene.
func (t *Trace) Run(scene *Scene, surface *Surface) {
	for _, st := range t.steps {
		switch st.Action {
		case "press":
			surface.InjectPress(st.ID, st.X, st.Y)
		case "move":
			surface.InjectMove(st.ID, st.X, st.Y)
		case "release":
			surface.InjectRelease(st.ID)
		case "releaseAll":
			surface.InjectReleaseAll()
		case "drag":
			surface.InjectDrag(st.ID, st.FromX, st.FromY, st.ToX, st.ToY, st.Steps)
		case "pinch":
			surface.InjectPinch(st.ID, st.X, st.Y, st.FromSpread, st.ToSpread, st.Steps)
		case "frame":
			surface.Dispatch(TouchInput{Kind: touchKindByName[st.Kind], Touches: st.Touches})
		case "acquire":
			scene.TargetAcquired()
		case "lose":
			scene.TargetLost()
		case "wait":
			scene.Update(st.Seconds)
		}
	}
}
