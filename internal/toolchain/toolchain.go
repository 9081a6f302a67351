// Package toolchain detects language ecosystems in a directory by their
// manifest files and reports the installed runtime versions.
package toolchain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dougsaus/statusline/internal/command"
	"github.com/dougsaus/statusline/internal/output"
)

// Info keys.
const (
	Node   = "node"
	NPM    = "npm"
	Python = "python"
	Rust   = "rust"
)

// Info maps an ecosystem key to its display string.
type Info map[string]string

type ecosystem struct {
	markers []string
	probe   func(ctx context.Context, d *Detector, info Info)
}

var ecosystems = []ecosystem{
	{[]string{"package.json"}, probeNode},
	{[]string{"requirements.txt", "pyproject.toml"}, probePython},
	{[]string{"Cargo.toml"}, probeRust},
}

// Detector runs version commands for the ecosystems present in a directory.
type Detector struct {
	Runner command.Runner
	Log    output.Logger
}

// NewDetector returns a Detector running binaries from PATH.
func NewDetector(log output.Logger) *Detector {
	if log == nil {
		log = output.Discard
	}
	return &Detector{Runner: command.Exec{}, Log: log}
}

// Detect returns version strings for every ecosystem whose marker file is in
// dir. An ecosystem whose command fails is left out.
func (d *Detector) Detect(ctx context.Context, dir string) Info {
	info := Info{}
	for _, eco := range ecosystems {
		if !hasAny(dir, eco.markers) {
			continue
		}
		eco.probe(ctx, d, info)
	}
	return info
}

func probeNode(ctx context.Context, d *Detector, info Info) {
	v, ok := d.version(ctx, "node", trimmed)
	if !ok {
		return
	}
	info[Node] = v

	if v, ok := d.version(ctx, "npm", trimmed); ok {
		info[NPM] = "npm@" + v
	}
}

func probePython(ctx context.Context, d *Detector, info Info) {
	if v, ok := d.version(ctx, "python3", pythonVersion); ok {
		info[Python] = "py" + v
	}
}

func probeRust(ctx context.Context, d *Detector, info Info) {
	if v, ok := d.version(ctx, "rustc", rustVersion); ok {
		info[Rust] = "🦀" + v
	}
}

// version runs `<bin> --version` and parses its output.
func (d *Detector) version(ctx context.Context, bin string, parse func(string) (string, error)) (string, bool) {
	out, err := d.Runner.Output(ctx, bin, "--version")
	if err == nil {
		out, err = parse(out)
	}
	if err != nil {
		d.log().VerboseLog("toolchain %s: %v", bin, err)
		return "", false
	}
	return out, true
}

func (d *Detector) log() output.Logger {
	if d.Log == nil {
		return output.Discard
	}
	return d.Log
}

func trimmed(out string) (string, error) {
	return strings.TrimSpace(out), nil
}

// pythonVersion turns "Python 3.12.1" into "3.12.1".
func pythonVersion(out string) (string, error) {
	return strings.TrimPrefix(strings.TrimSpace(out), "Python "), nil
}

// rustVersion takes the second field of "rustc 1.75.0 (82e1608df 2023-12-21)".
func rustVersion(out string) (string, error) {
	fields := strings.Fields(out)
	if len(fields) < 2 {
		return "", fmt.Errorf("unexpected rustc output %q", out)
	}
	return fields[1], nil
}

func hasAny(dir string, names []string) bool {
	for _, name := range names {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}
