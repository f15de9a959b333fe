package gesture

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventFields(t *testing.T) {
	start := StartEvent{Gesture: Gesture{TouchState: TouchState{
		TouchCount: 2, Position: Vec2{1, 2}, Spread: 5, HasSpread: true,
	}}}
	f := eventFields(start)
	assert.Equal(t, "twofingerstart", f["event"])
	assert.Equal(t, 2, f["touches"])
	assert.Equal(t, 5.0, f["spread"])

	mv := MoveEvent{TouchCount: 1, PositionChange: Vec2{3, 4}}
	f = eventFields(mv)
	assert.Equal(t, "onefingermove", f["event"])
	assert.Equal(t, 3.0, f["dx"])
	assert.Equal(t, 4.0, f["dy"])
	assert.NotContains(t, f, "dspread")
}

func TestDebugTap_LogsEvents(t *testing.T) {
	scene := NewScene()
	logger, hook := test.NewNullLogger()
	scene.SetLogger(logger)
	scene.SetDebugMode(true)

	sf := scene.NewSurface("canvas")
	scene.NewDetector(sf, DetectorConfig{})
	sf.InjectPress(1, 10, 10)
	sf.InjectMove(1, 20, 10)
	sf.InjectRelease(1)

	var events []any
	for _, e := range hook.AllEntries() {
		if e.Message == "gesture: event" {
			require.Equal(t, logrus.DebugLevel, e.Level)
			events = append(events, e.Data["event"])
		}
	}
	assert.Equal(t, []any{"onefingerstart", "onefingermove", "onefingerend"}, events)

	hook.Reset()
	scene.SetDebugMode(false)
	sf.InjectPress(1, 10, 10)
	assert.Empty(t, hook.AllEntries())
}
