package gitstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want StatusCounts
	}{
		{"empty", "", StatusCounts{}},
		{"staged add", "A  new.go\n", StatusCounts{Staged: 1}},
		{"unstaged modify", " M main.go\n", StatusCounts{Dirty: 1}},
		{"staged and dirty", "MM main.go\n", StatusCounts{Staged: 1, Dirty: 1}},
		{"rename", "R  old.go -> new.go\n", StatusCounts{Staged: 1}},
		{"deleted in worktree", " D gone.go\n", StatusCounts{Dirty: 1}},
		{"untracked", "?? notes.txt\n?? tmp/\n", StatusCounts{Untracked: 2}},
		{"conflict", "UU merge.go\n", StatusCounts{Conflicted: 1}},
		{"conflict both added", "AA both.go\n", StatusCounts{Staged: 1, Dirty: 1}},
		{"copied is neither", "C  copy.go\n", StatusCounts{}},
		{
			"mixed",
			"A  a.go\n M b.go\nUU c.go\n?? d.go\nAM e.go\n",
			StatusCounts{Conflicted: 1, Staged: 2, Dirty: 2, Untracked: 1},
		},
		{"crlf", " M a.go\r\n?? b\r\n", StatusCounts{Dirty: 1, Untracked: 1}},
		{"short line ignored", "M\n", StatusCounts{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStatus(tt.out))
		})
	}
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 0, countLines(""))
	assert.Equal(t, 0, countLines("\n"))
	assert.Equal(t, 2, countLines("stash@{0}: WIP on main\nstash@{1}: On main: x\n"))
}

func TestParseLeftRight(t *testing.T) {
	d, err := parseLeftRight("3\t5\n")
	require.NoError(t, err)
	assert.Equal(t, divergence{behind: 3, ahead: 5}, d)

	d, err = parseLeftRight("0\t0")
	require.NoError(t, err)
	assert.Equal(t, divergence{}, d)

	for _, bad := range []string{"", "3", "a\tb", "1\t2\t3"} {
		_, err := parseLeftRight(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
