// Package gitstate reports version-control state for a directory.
//
// Two backends produce the same State: CLI shells out to the git binary and
// Native reads the repository in-process with go-git. Neither returns an
// error; every failed query falls back to that field's zero value.
package gitstate

import (
	"context"
	"strings"

	"github.com/dougsaus/statusline/internal/output"
)

// DetachedMarker prefixes the short commit hash when HEAD is not on a branch.
const DetachedMarker = "@"

// DetachedLabel is used when HEAD is detached and its hash cannot be resolved.
const DetachedLabel = "detached"

// Inspector reports the repository state of a directory.
type Inspector interface {
	Inspect(ctx context.Context, dir string) State
}

// State is the repository snapshot rendered on the status line.
type State struct {
	IsRepo bool
	Label  string

	Operation Operation
	Step      int
	Total     int

	StatusCounts

	Stash  int
	Ahead  int
	Behind int
}

// Detached reports whether Label names a commit rather than a branch.
func (s State) Detached() bool {
	return strings.HasPrefix(s.Label, DetachedMarker)
}

// valueOr returns v, or fallback when err is set. The failure is reported
// to log under what.
func valueOr[T any](log output.Logger, what string, v T, err error, fallback T) T {
	if err != nil {
		log.VerboseLog("git %s: %v", what, err)
		return fallback
	}
	return v
}
