package format

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// FmtCost formats a currency amount with two decimals: 1.5->"$1.50", 0->"$0.00".
func FmtCost(c float64) string {
	return fmt.Sprintf("$%.2f", c)
}

// FmtCount joins an indicator symbol and its count: ("⇡", 3)->"⇡3".
func FmtCount(symbol string, n int) string {
	return symbol + strconv.Itoa(n)
}

// FmtSteps formats operation progress: (2, 5)->"2/5".
func FmtSteps(step, total int) string {
	return fmt.Sprintf("%d/%d", step, total)
}

// DirName returns the last element of path. Relative paths are resolved
// against the process cwd first, so "." names the current directory.
func DirName(path string) string {
	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}
	return filepath.Base(path)
}
