package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/dougsaus/statusline/internal/config"
)

// Console is the output configuration for one run: destination, width and
// color profile. Colors are forced on since stdout is usually a pipe owned
// by the assistant shell.
type Console struct {
	out      io.Writer
	width    int
	renderer *lipgloss.Renderer
}

// NewConsole builds the console for cfg writing to out.
func NewConsole(out io.Writer, cfg config.Config) *Console {
	r := lipgloss.NewRenderer(out)
	if cfg.NoColor {
		r.SetColorProfile(termenv.Ascii)
	} else {
		r.SetColorProfile(termenv.ANSI256)
	}
	return &Console{out: out, width: cfg.Width, renderer: r}
}

// Line renders segments separated by single spaces, truncated to the
// console width.
func (c *Console) Line(segs []Segment) string {
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		style := c.renderer.NewStyle().Foreground(lipgloss.Color(string(s.Color)))
		parts = append(parts, style.Render(s.String()))
	}
	line := strings.Join(parts, " ")
	if c.width > 0 {
		line = c.renderer.NewStyle().MaxWidth(c.width).Render(line)
	}
	return line
}

// Print writes the line with no trailing newline.
func (c *Console) Print(segs []Segment) error {
	_, err := io.WriteString(c.out, c.Line(segs))
	return err
}
