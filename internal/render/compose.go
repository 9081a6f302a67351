// Package render composes the status line from the gathered state and
// writes it to the console.
package render

import (
	"github.com/dougsaus/statusline/internal/config"
	"github.com/dougsaus/statusline/internal/format"
	"github.com/dougsaus/statusline/internal/gitstate"
	"github.com/dougsaus/statusline/internal/session"
	"github.com/dougsaus/statusline/internal/toolchain"
)

// Color is a lipgloss color spec (ANSI index).
type Color string

const (
	Red     Color = "1"
	Green   Color = "2"
	Yellow  Color = "3"
	Blue    Color = "4"
	Magenta Color = "5"
	Cyan    Color = "6"
	Orange  Color = "214"
)

const (
	iconDir    = "📁"
	iconGit    = "🌿"
	iconNode   = "⬢"
	iconNPM    = "📦"
	iconPython = "🐍"
	iconModel  = "🤖"
	iconCost   = "💰"
)

// Segment is one styled piece of the line. Icon, when set, is separated
// from Text by a space and shares its color.
type Segment struct {
	Icon  string
	Text  string
	Color Color
}

func (s Segment) String() string {
	if s.Icon == "" {
		return s.Text
	}
	return s.Icon + " " + s.Text
}

type indicator struct {
	symbol string
	count  int
	color  Color
}

// Compose builds the segments in display order. It has no side effects and
// does not validate its input.
func Compose(sess session.Session, st gitstate.State, info toolchain.Info, cfg config.Config) []Segment {
	segs := []Segment{{Icon: iconDir, Text: format.DirName(sess.Dir()), Color: Cyan}}

	if cfg.ShowGit && st.IsRepo {
		segs = append(segs, gitSegments(st)...)
	}
	if cfg.ShowToolchain {
		segs = append(segs, toolchainSegments(info)...)
	}
	if cfg.ShowModel {
		segs = append(segs, Segment{Icon: iconModel, Text: sess.ModelName(), Color: Magenta})
	}
	if cost, ok := sess.CostUSD(); ok && cfg.ShowCost {
		segs = append(segs, Segment{Icon: iconCost, Text: format.FmtCost(cost), Color: Green})
	}
	return segs
}

func gitSegments(st gitstate.State) []Segment {
	labelColor := Yellow
	if st.Detached() {
		labelColor = Green
	}
	segs := []Segment{{Icon: iconGit, Text: st.Label, Color: labelColor}}

	if op := st.Operation.String(); op != "" {
		segs = append(segs, Segment{Text: op, Color: Red})
		if st.Step > 0 && st.Total > 0 {
			segs = append(segs, Segment{Text: format.FmtSteps(st.Step, st.Total), Color: Red})
		}
	}

	indicators := []indicator{
		{"⇣", st.Behind, Cyan},
		{"⇡", st.Ahead, Cyan},
		{"*", st.Stash, Yellow},
		{"~", st.Conflicted, Red},
		{"+", st.Staged, Green},
		{"!", st.Dirty, Red},
		{"?", st.Untracked, Blue},
	}
	for _, ind := range indicators {
		if ind.count > 0 {
			segs = append(segs, Segment{Text: format.FmtCount(ind.symbol, ind.count), Color: ind.color})
		}
	}
	return segs
}

func toolchainSegments(info toolchain.Info) []Segment {
	var segs []Segment
	if node, ok := info[toolchain.Node]; ok {
		segs = append(segs, Segment{Icon: iconNode, Text: node, Color: Green})
		if npm, ok := info[toolchain.NPM]; ok {
			segs = append(segs, Segment{Icon: iconNPM, Text: npm, Color: Blue})
		}
	}
	if py, ok := info[toolchain.Python]; ok {
		segs = append(segs, Segment{Icon: iconPython, Text: py, Color: Yellow})
	}
	if rust, ok := info[toolchain.Rust]; ok {
		segs = append(segs, Segment{Text: rust, Color: Orange})
	}
	return segs
}
