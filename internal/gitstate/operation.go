package gitstate

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Operation is an in-progress multi-step git command.
type Operation int

const (
	OpNone Operation = iota
	OpRebaseInteractive
	OpRebaseMerge
	OpRebaseApply
	OpApplyMailbox
	OpApplyOrRebase
	OpMerge
	OpCherryPick
	OpRevert
	OpBisect
)

var operationLabels = [...]string{
	OpNone:              "",
	OpRebaseInteractive: "rebase-i",
	OpRebaseMerge:       "rebase-m",
	OpRebaseApply:       "rebase",
	OpApplyMailbox:      "am",
	OpApplyOrRebase:     "am/rebase",
	OpMerge:             "merge",
	OpCherryPick:        "cherry-pick",
	OpRevert:            "revert",
	OpBisect:            "bisect",
}

// String returns the status line label, empty for OpNone.
func (o Operation) String() string {
	if o < 0 || int(o) >= len(operationLabels) {
		return ""
	}
	return operationLabels[o]
}

// Progress is the detected operation with its step counters. Step and Total
// are zero when the operation has no counters or they could not be read.
type Progress struct {
	Operation Operation
	Step      int
	Total     int
}

// operationCheck matches when marker exists inside the git dir.
type operationCheck struct {
	marker string
	detect func(path string) Progress
}

// operationChecks are evaluated in order; the first existing marker wins.
var operationChecks = []operationCheck{
	{"rebase-merge", rebaseMerge},
	{"rebase-apply", rebaseApply},
	{"MERGE_HEAD", fixed(OpMerge)},
	{"CHERRY_PICK_HEAD", fixed(OpCherryPick)},
	{"REVERT_HEAD", fixed(OpRevert)},
	{"BISECT_LOG", fixed(OpBisect)},
}

// DetectOperation inspects gitDir for an in-progress operation.
func DetectOperation(gitDir string) Progress {
	if gitDir == "" {
		return Progress{}
	}
	for _, c := range operationChecks {
		path := filepath.Join(gitDir, c.marker)
		if exists(path) {
			return c.detect(path)
		}
	}
	return Progress{}
}

func fixed(op Operation) func(string) Progress {
	return func(string) Progress { return Progress{Operation: op} }
}

func rebaseMerge(dir string) Progress {
	p := Progress{Operation: OpRebaseMerge}
	if exists(filepath.Join(dir, "interactive")) {
		p.Operation = OpRebaseInteractive
	}
	p.Step, p.Total = readSteps(dir, "msgnum", "end")
	return p
}

func rebaseApply(dir string) Progress {
	p := Progress{Operation: OpApplyOrRebase}
	switch {
	case exists(filepath.Join(dir, "rebasing")):
		p.Operation = OpRebaseApply
	case exists(filepath.Join(dir, "applying")):
		p.Operation = OpApplyMailbox
	}
	p.Step, p.Total = readSteps(dir, "next", "last")
	return p
}

// readSteps reads the step and total counter files. Both are zero unless
// both parse.
func readSteps(dir, stepFile, totalFile string) (int, int) {
	step, err := readCounter(filepath.Join(dir, stepFile))
	if err != nil {
		return 0, 0
	}
	total, err := readCounter(filepath.Join(dir, totalFile))
	if err != nil {
		return 0, 0
	}
	return step, total
}

func readCounter(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
