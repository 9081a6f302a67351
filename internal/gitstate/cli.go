package gitstate

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/dougsaus/statusline/internal/command"
	"github.com/dougsaus/statusline/internal/output"
)

// CLI inspects repositories by running the git binary.
type CLI struct {
	Runner command.Runner
	Binary string
	Log    output.Logger
}

// NewCLI returns a CLI backed by the git found on PATH.
func NewCLI(log output.Logger) *CLI {
	if log == nil {
		log = output.Discard
	}
	return &CLI{Runner: command.Exec{}, Binary: "git", Log: log}
}

var _ Inspector = (*CLI)(nil)

func (c *CLI) git(ctx context.Context, dir string, args ...string) (string, error) {
	fullArgs := append([]string{"-C", dir}, args...)
	return c.Runner.Output(ctx, c.Binary, fullArgs...)
}

func (c *CLI) log() output.Logger {
	if c.Log == nil {
		return output.Discard
	}
	return c.Log
}

// Inspect returns the state of dir. A failing membership check means "not a
// repository" and short-circuits every other query.
func (c *CLI) Inspect(ctx context.Context, dir string) State {
	out, err := c.git(ctx, dir, "rev-parse", "--git-dir", "--is-inside-work-tree")
	if err != nil {
		c.log().VerboseLog("git: %s is not a repository: %v", dir, err)
		return State{}
	}

	st := State{IsRepo: true}
	st.Label = c.label(ctx, dir)

	p := DetectOperation(resolveGitDir(dir, out))
	st.Operation, st.Step, st.Total = p.Operation, p.Step, p.Total

	status, err := c.git(ctx, dir, "--no-optional-locks", "status", "--porcelain")
	st.StatusCounts = valueOr(c.log(), "status", ParseStatus(status), err, StatusCounts{})

	stash, err := c.git(ctx, dir, "stash", "list")
	st.Stash = valueOr(c.log(), "stash list", countLines(stash), err, 0)

	d, err := c.divergence(ctx, dir)
	d = valueOr(c.log(), "rev-list", d, err, divergence{})
	st.Ahead, st.Behind = d.ahead, d.behind

	return st
}

// label returns the current branch, or DetachedMarker plus the short hash.
func (c *CLI) label(ctx context.Context, dir string) string {
	out, err := c.git(ctx, dir, "branch", "--show-current")
	if branch := strings.TrimSpace(valueOr(c.log(), "branch", out, err, "")); branch != "" {
		return branch
	}

	out, err = c.git(ctx, dir, "rev-parse", "--short", "HEAD")
	if err != nil {
		c.log().VerboseLog("git rev-parse HEAD: %v", err)
		return DetachedLabel
	}
	return DetachedMarker + strings.TrimSpace(out)
}

func (c *CLI) divergence(ctx context.Context, dir string) (divergence, error) {
	out, err := c.git(ctx, dir, "rev-list", "--count", "--left-right", "@{u}...HEAD")
	if err != nil {
		return divergence{}, err
	}
	return parseLeftRight(out)
}

// resolveGitDir takes the first line of `rev-parse --git-dir` output,
// relative to dir unless absolute.
func resolveGitDir(dir, out string) string {
	gitDir, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	gitDir = strings.TrimSpace(gitDir)
	if gitDir == "" {
		gitDir = ".git"
	}
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(dir, gitDir)
	}
	return gitDir
}
