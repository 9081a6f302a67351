package gitstate

import (
	"fmt"
	"strconv"
	"strings"
)

// stagedOrDirty are the status codes counted as a change in either column.
const stagedOrDirty = "ADMR"

// StatusCounts classifies working-tree entries. One entry may count as both
// staged and dirty.
type StatusCounts struct {
	Conflicted int
	Staged     int
	Dirty      int
	Untracked  int
}

// Add classifies one porcelain entry by its two-character XY code.
func (c *StatusCounts) Add(entry string) {
	if len(entry) < 2 {
		return
	}
	x, y := entry[0], entry[1]
	if x == 'U' && y == 'U' {
		c.Conflicted++
	}
	if strings.IndexByte(stagedOrDirty, x) >= 0 {
		c.Staged++
	}
	if strings.IndexByte(stagedOrDirty, y) >= 0 {
		c.Dirty++
	}
	if x == '?' && y == '?' {
		c.Untracked++
	}
}

// ParseStatus counts the entries of `git status --porcelain` output.
func ParseStatus(out string) StatusCounts {
	var c StatusCounts
	for _, line := range strings.Split(out, "\n") {
		c.Add(strings.TrimRight(line, "\r"))
	}
	return c
}

// countLines counts non-empty lines, as printed by `git stash list`.
func countLines(out string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

type divergence struct {
	behind, ahead int
}

// parseLeftRight parses `git rev-list --count --left-right @{u}...HEAD`,
// which prints "<behind>\t<ahead>".
func parseLeftRight(out string) (divergence, error) {
	fields := strings.Split(strings.TrimSpace(out), "\t")
	if len(fields) != 2 {
		return divergence{}, fmt.Errorf("unexpected rev-list output %q", out)
	}
	var d divergence
	var err error
	if d.behind, err = atoiOrZero(fields[0]); err != nil {
		return divergence{}, err
	}
	if d.ahead, err = atoiOrZero(fields[1]); err != nil {
		return divergence{}, err
	}
	return d, nil
}

func atoiOrZero(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
