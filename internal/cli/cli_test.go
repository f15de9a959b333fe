package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dragTrace = `{"steps": [
	{"action": "drag", "id": 1, "fromX": 100, "fromY": 100, "toX": 110, "toY": 100, "steps": 1}
]}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) ([]map[string]any, error) {
	t.Helper()
	configPath, strategy, verbose = "", "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		lines = append(lines, m)
	}
	return lines, err
}

func TestReplay_PrintsEventsAndTransform(t *testing.T) {
	trace := writeFile(t, "drag.json", dragTrace)

	lines, err := runCLI(t, "replay", trace, "--visible")
	require.NoError(t, err)
	require.Len(t, lines, 4)

	assert.Equal(t, "onefingerstart", lines[0]["event"])
	assert.Equal(t, "onefingermove", lines[1]["event"])
	assert.Equal(t, "onefingerend", lines[2]["event"])

	final := lines[3]
	assert.Equal(t, "transform", final["type"])
	tr := final["transform"].(map[string]any)
	assert.InDelta(t, 0.25, tr["rotationY"], 1e-9)
}

func TestReplay_NotVisibleLeavesTransform(t *testing.T) {
	trace := writeFile(t, "drag.json", dragTrace)

	lines, err := runCLI(t, "replay", trace, "--visible=false")
	require.NoError(t, err)
	tr := lines[len(lines)-1]["transform"].(map[string]any)
	assert.InDelta(t, 0, tr["rotationY"], 1e-12)
}

func TestReplay_ConfigAndStrategy(t *testing.T) {
	trace := writeFile(t, "drag.json", dragTrace)
	cfg := writeFile(t, "gesture.ini", "[handler]\nrotationFactor = 10\n")

	lines, err := runCLI(t, "replay", trace, "--visible", "--config", cfg, "--strategy", "step")
	require.NoError(t, err)
	tr := lines[len(lines)-1]["transform"].(map[string]any)
	assert.InDelta(t, 0.5, tr["rotationY"], 1e-9)
}

func TestReplay_Errors(t *testing.T) {
	_, err := runCLI(t, "replay", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "read trace")

	bad := writeFile(t, "bad.json", `{"steps": [{"action": "jump"}]}`)
	_, err = runCLI(t, "replay", bad)
	assert.ErrorContains(t, err, "unknown action")

	trace := writeFile(t, "drag.json", dragTrace)
	_, err = runCLI(t, "replay", trace, "--strategy", "zoom")
	assert.ErrorContains(t, err, "--strategy")
}
