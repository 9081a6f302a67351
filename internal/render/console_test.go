package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dougsaus/statusline/internal/config"
	"github.com/dougsaus/statusline/internal/gitstate"
	"github.com/dougsaus/statusline/internal/toolchain"
)

func plainConfig() config.Config {
	cfg := config.Defaults()
	cfg.NoColor = true
	return cfg
}

func TestPrintPlain(t *testing.T) {
	var buf bytes.Buffer
	cfg := plainConfig()
	segs := Compose(basicSession(), gitstate.State{}, toolchain.Info{}, cfg)

	require.NoError(t, NewConsole(&buf, cfg).Print(segs))
	assert.Equal(t, "📁 proj 🤖 Opus 💰 $1.50", buf.String())
}

func TestPrintHasNoTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Defaults()
	require.NoError(t, NewConsole(&buf, cfg).Print(Compose(basicSession(), gitstate.State{}, nil, cfg)))
	assert.False(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestLineColored(t *testing.T) {
	cfg := config.Defaults()
	line := NewConsole(&bytes.Buffer{}, cfg).Line([]Segment{{Icon: "📁", Text: "proj", Color: Cyan}})
	assert.Contains(t, line, "\x1b[")
	assert.Contains(t, line, "📁 proj")
}

func TestLineFullRepoPlain(t *testing.T) {
	st := gitstate.State{
		IsRepo:       true,
		Label:        "main",
		StatusCounts: gitstate.StatusCounts{Staged: 1, Dirty: 2},
		Ahead:        3,
	}
	info := toolchain.Info{toolchain.Node: "v20.11.0", toolchain.NPM: "npm@10.2.4"}
	cfg := plainConfig()

	line := NewConsole(&bytes.Buffer{}, cfg).Line(Compose(basicSession(), st, info, cfg))
	assert.Equal(t, "📁 proj 🌿 main ⇡3 +1 !2 ⬢ v20.11.0 📦 npm@10.2.4 🤖 Opus 💰 $1.50", line)
}

func TestLineTruncatedToWidth(t *testing.T) {
	cfg := plainConfig()
	cfg.Width = 10
	segs := []Segment{{Text: strings.Repeat("x", 30), Color: Red}}

	line := NewConsole(&bytes.Buffer{}, cfg).Line(segs)
	assert.Equal(t, strings.Repeat("x", 10), line)
}

func TestLineColoredTruncationKeepsWidth(t *testing.T) {
	cfg := config.Defaults()
	cfg.Width = 12
	segs := []Segment{{Text: strings.Repeat("a", 20), Color: Red}, {Text: "tail", Color: Blue}}

	line := NewConsole(&bytes.Buffer{}, cfg).Line(segs)
	assert.LessOrEqual(t, lipgloss.Width(line), 12)
}

func TestLineZeroWidthDisablesTruncation(t *testing.T) {
	cfg := plainConfig()
	cfg.Width = 0
	long := strings.Repeat("y", 500)

	line := NewConsole(&bytes.Buffer{}, cfg).Line([]Segment{{Text: long, Color: Red}})
	assert.Equal(t, long, line)
}

func TestLineIsIdempotent(t *testing.T) {
	cfg := config.Defaults()
	c := NewConsole(&bytes.Buffer{}, cfg)
	segs := Compose(basicSession(), gitstate.State{IsRepo: true, Label: "dev", Stash: 1}, nil, cfg)
	assert.Equal(t, c.Line(segs), c.Line(segs))
}
