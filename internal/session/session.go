// Package session decodes the JSON payload the assistant shell pipes to the
// statusline on stdin.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/go-viper/mapstructure/v2"
)

// DefaultModel is the model name used by the synthetic fallback payload.
const DefaultModel = "Claude"

type Model struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type Cost struct {
	TotalCostUSD float64 `json:"total_cost_usd"`
}

type Workspace struct {
	ProjectDir string `json:"project_dir"`
	CurrentDir string `json:"current_dir"`
}

// Session is one invocation's context. Cost is nil when the payload carried
// no "cost" object at all.
type Session struct {
	Cwd       string    `json:"cwd"`
	SessionID string    `json:"session_id"`
	Model     Model     `json:"model"`
	Cost      *Cost     `json:"cost"`
	Workspace Workspace `json:"workspace"`
}

// Default returns the payload used when stdin has nothing usable.
func Default() Session {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return Session{
		Cwd:   cwd,
		Model: Model{DisplayName: DefaultModel},
	}
}

// FromStdin reads the payload from f, or returns Default when f is an
// interactive terminal.
func FromStdin(f *os.File) Session {
	if term.IsTerminal(f.Fd()) {
		return Default()
	}
	return Parse(f)
}

// Parse reads one JSON object from r. Any read or decode failure yields Default.
func Parse(r io.Reader) Session {
	data, err := io.ReadAll(r)
	if err != nil {
		return Default()
	}
	s, err := Decode(data)
	if err != nil {
		return Default()
	}
	return s
}

// Decode decodes a JSON object into a Session. Scalar fields are weakly
// typed, so "1.5" and 1.5 are both accepted for the cost.
func Decode(data []byte) (Session, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Session{}, fmt.Errorf("parse payload: %w", err)
	}
	if raw == nil {
		return Session{}, errors.New("parse payload: not an object")
	}

	var s Session
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &s,
	})
	if err != nil {
		return Session{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Session{}, fmt.Errorf("decode payload: %w", err)
	}
	return s, nil
}

// Dir is the directory the statusline describes: cwd, then
// workspace.current_dir, then ".".
func (s Session) Dir() string {
	if s.Cwd != "" {
		return s.Cwd
	}
	if s.Workspace.CurrentDir != "" {
		return s.Workspace.CurrentDir
	}
	return "."
}

func (s Session) ModelName() string {
	if s.Model.DisplayName == "" {
		return "unknown"
	}
	return s.Model.DisplayName
}

// CostUSD reports the session cost and whether the payload carried a cost
// object.
func (s Session) CostUSD() (float64, bool) {
	if s.Cost == nil {
		return 0, false
	}
	return s.Cost.TotalCostUSD, true
}
