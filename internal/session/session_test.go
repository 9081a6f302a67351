package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := `{
		"cwd": "/tmp/test",
		"session_id": "sess-123",
		"model": {"id": "claude-opus-4-6", "display_name": "Opus"},
		"cost": {"total_cost_usd": 8.42, "total_duration_ms": 900000},
		"workspace": {"project_dir": "/tmp/test", "current_dir": "/tmp/test/sub"},
		"transcript_path": "/tmp/sess-123.jsonl"
	}`

	s := Parse(strings.NewReader(input))

	assert.Equal(t, "/tmp/test", s.Dir())
	assert.Equal(t, "Opus", s.ModelName())
	assert.Equal(t, "claude-opus-4-6", s.Model.ID)
	assert.Equal(t, "sess-123", s.SessionID)
	assert.Equal(t, "/tmp/test", s.Workspace.ProjectDir)

	cost, ok := s.CostUSD()
	assert.True(t, ok)
	assert.InDelta(t, 8.42, cost, 1e-9)
}

func TestParseEmptyFallsBackToDefault(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	s := Parse(strings.NewReader(""))
	assert.Equal(t, cwd, s.Dir())
	assert.Equal(t, DefaultModel, s.ModelName())
	_, ok := s.CostUSD()
	assert.False(t, ok, "default payload has no cost")
}

func TestParseInvalidFallsBackToDefault(t *testing.T) {
	for _, input := range []string{"{invalid", "[1,2,3]", "null", `"text"`, `{"cwd": 1}{}`} {
		s := Parse(strings.NewReader(input))
		assert.Equal(t, DefaultModel, s.ModelName(), "input %q", input)
	}
}

func TestParseMismatchedTypeFallsBackToDefault(t *testing.T) {
	s := Parse(strings.NewReader(`{"cwd": "/x", "model": "Opus"}`))
	assert.Equal(t, DefaultModel, s.ModelName())
}

func TestDirFallsBackToWorkspace(t *testing.T) {
	s := Parse(strings.NewReader(`{"workspace": {"current_dir": "/srv/app"}}`))
	assert.Equal(t, "/srv/app", s.Dir())

	s = Parse(strings.NewReader(`{"model": {"display_name": "Haiku"}}`))
	assert.Equal(t, ".", s.Dir())
}

func TestModelNameMissing(t *testing.T) {
	s := Parse(strings.NewReader(`{"cwd": "/tmp"}`))
	assert.Equal(t, "unknown", s.ModelName())
}

func TestCostPresence(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		present bool
	}{
		{"absent", `{"cwd": "/tmp"}`, 0, false},
		{"null", `{"cost": null}`, 0, false},
		{"empty object", `{"cost": {}}`, 0, true},
		{"zero", `{"cost": {"total_cost_usd": 0}}`, 0, true},
		{"value", `{"cost": {"total_cost_usd": 1.5}}`, 1.5, true},
		{"string value", `{"cost": {"total_cost_usd": "2.25"}}`, 2.25, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Decode([]byte(tt.input))
			require.NoError(t, err)
			got, ok := s.CostUSD()
			assert.Equal(t, tt.present, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFromStdinNonTerminal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cwd": "/tmp/proj", "model": {"display_name": "Sonnet"}}`), 0o644))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	s := FromStdin(f)
	assert.Equal(t, "/tmp/proj", s.Dir())
	assert.Equal(t, "Sonnet", s.ModelName())
}
