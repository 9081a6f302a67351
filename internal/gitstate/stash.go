package gitstate

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// countStash counts stash entries by reading the reflog file directly.
// go-git has no reflog API, so we read <common dir>/logs/refs/stash.
func countStash(commonDir string) int {
	if commonDir == "" {
		return 0
	}

	f, err := os.Open(filepath.Join(commonDir, "logs", "refs", "stash"))
	if err != nil {
		return 0
	}
	defer func() { _ = f.Close() }()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			count++
		}
	}
	return count
}

// locateGitDirs returns the per-worktree git dir (where operation markers
// live) and the common git dir (where refs and reflogs live). Both are the
// same for a regular checkout.
func locateGitDirs(cwd string) (gitDir, commonDir string) {
	dotGit := findDotGit(cwd)
	if dotGit == "" {
		return "", ""
	}

	info, err := os.Stat(dotGit)
	if err != nil {
		return "", ""
	}
	if info.IsDir() {
		return dotGit, dotGit
	}

	// .git is a file → linked worktree, parse the gitdir pointer
	data, err := os.ReadFile(dotGit)
	if err != nil {
		return "", ""
	}
	content := strings.TrimSpace(string(data))
	if !strings.HasPrefix(content, "gitdir: ") {
		return "", ""
	}
	gitDir = strings.TrimPrefix(content, "gitdir: ")
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(filepath.Dir(dotGit), gitDir)
	}

	commonDir = gitDir
	if data, err := os.ReadFile(filepath.Join(gitDir, "commondir")); err == nil {
		commonDir = strings.TrimSpace(string(data))
		if !filepath.IsAbs(commonDir) {
			commonDir = filepath.Join(gitDir, commonDir)
		}
	}
	return gitDir, filepath.Clean(commonDir)
}

// findDotGit walks up from cwd to the nearest .git entry.
func findDotGit(cwd string) string {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		dir = cwd
	}
	for {
		gitPath := filepath.Join(dir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			return gitPath
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
