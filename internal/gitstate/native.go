package gitstate

import (
	"context"
	"errors"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/dougsaus/statusline/internal/output"
)

var errStop = errors.New("stop")

// logLimit bounds the commit walk used for ahead/behind counts.
const logLimit = 1000

// Native inspects repositories in-process with go-git, for hosts without a
// git binary.
type Native struct {
	Log output.Logger
}

// NewNative returns a go-git backed Inspector.
func NewNative(log output.Logger) *Native {
	if log == nil {
		log = output.Discard
	}
	return &Native{Log: log}
}

var _ Inspector = (*Native)(nil)

// Inspect returns the state of dir, or a zero State if dir is not inside a
// repository.
func (n *Native) Inspect(_ context.Context, dir string) State {
	log := n.Log
	if log == nil {
		log = output.Discard
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		log.VerboseLog("go-git: %s is not a repository: %v", dir, err)
		return State{}
	}

	st := State{IsRepo: true}

	head, headErr := repo.Head()
	st.Label = headLabel(repo, head, headErr)

	gitDir, commonDir := locateGitDirs(dir)
	p := DetectOperation(gitDir)
	st.Operation, st.Step, st.Total = p.Operation, p.Step, p.Total

	counts, err := worktreeCounts(repo)
	st.StatusCounts = valueOr(log, "status", counts, err, StatusCounts{})

	st.Stash = countStash(commonDir)

	if headErr == nil && head.Name().IsBranch() {
		d, err := aheadBehind(repo, head)
		d = valueOr(log, "upstream", d, err, divergence{})
		st.Ahead, st.Behind = d.ahead, d.behind
	}

	return st
}

// headLabel mirrors `git branch --show-current` with a short-hash fallback.
// An unborn branch still reports its name.
func headLabel(repo *git.Repository, head *plumbing.Reference, err error) string {
	if err == nil {
		if head.Name().IsBranch() {
			return head.Name().Short()
		}
		return DetachedMarker + head.Hash().String()[:7]
	}

	ref, refErr := repo.Storer.Reference(plumbing.HEAD)
	if refErr == nil && ref.Type() == plumbing.SymbolicReference && ref.Target().IsBranch() {
		return ref.Target().Short()
	}
	return DetachedLabel
}

// worktreeCounts maps go-git status codes onto the porcelain classifier.
func worktreeCounts(repo *git.Repository) (StatusCounts, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return StatusCounts{}, err
	}
	status, err := wt.Status()
	if err != nil {
		return StatusCounts{}, err
	}

	var c StatusCounts
	for _, fs := range status {
		c.Add(string([]byte{byte(fs.Staging), byte(fs.Worktree)}))
	}
	return c, nil
}

var errNoUpstream = errors.New("no upstream configured")

func aheadBehind(repo *git.Repository, head *plumbing.Reference) (divergence, error) {
	cfg, err := repo.Config()
	if err != nil {
		return divergence{}, err
	}

	branchCfg, ok := cfg.Branches[head.Name().Short()]
	if !ok || branchCfg.Remote == "" || branchCfg.Merge == "" {
		return divergence{}, errNoUpstream
	}

	upstreamRef := plumbing.NewRemoteReferenceName(branchCfg.Remote, branchCfg.Merge.Short())
	if branchCfg.Remote == "." {
		upstreamRef = branchCfg.Merge
	}
	upstream, err := repo.Reference(upstreamRef, true)
	if err != nil {
		return divergence{}, err
	}

	if head.Hash() == upstream.Hash() {
		return divergence{}, nil
	}

	upstreamSet := collectCommitHashes(repo, upstream.Hash(), logLimit)
	ahead, err := countMissing(repo, head.Hash(), upstreamSet)
	if err != nil {
		return divergence{}, err
	}

	headSet := collectCommitHashes(repo, head.Hash(), logLimit)
	behind, err := countMissing(repo, upstream.Hash(), headSet)
	if err != nil {
		return divergence{}, err
	}

	return divergence{behind: behind, ahead: ahead}, nil
}

// countMissing counts commits reachable from `from` that are not in seen.
func countMissing(repo *git.Repository, from plumbing.Hash, seen map[plumbing.Hash]bool) (int, error) {
	iter, err := repo.Log(&git.LogOptions{From: from})
	if err != nil {
		return 0, err
	}
	missing, total := 0, 0
	_ = iter.ForEach(func(c *object.Commit) error {
		total++
		if total > logLimit {
			return errStop
		}
		if !seen[c.Hash] {
			missing++
		}
		return nil
	})
	return missing, nil
}

func collectCommitHashes(repo *git.Repository, from plumbing.Hash, limit int) map[plumbing.Hash]bool {
	set := make(map[plumbing.Hash]bool)
	iter, err := repo.Log(&git.LogOptions{From: from})
	if err != nil {
		return set
	}
	count := 0
	_ = iter.ForEach(func(c *object.Commit) error {
		set[c.Hash] = true
		count++
		if count >= limit {
			return errStop
		}
		return nil
	})
	return set
}
