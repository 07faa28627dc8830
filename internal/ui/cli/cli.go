// Package cli renders ants on a terminal.
package cli

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"mad-ant/internal/sims/ant"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	// CharsPerCell is the display width of one grid cell: terminal cells are roughly twice as
	// tall as wide.
	CharsPerCell = 2

	clearScreen = "\033[H\033[2J"
)

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the number of runes left.
func displayWidth(s string) int {
	return len([]rune(ansiFilter.ReplaceAllString(s, "")))
}

// View is what the printer needs from an ant.
type View interface {
	Cells() []uint8
	X() int
	Y() int
	Heading() ant.Direction
	Steps() uint64
}

// Printer renders ant grids as text.
type Printer struct {
	out         io.Writer
	color       bool
	clearScreen bool

	black, white, marker lipgloss.Style
}

// New creates a Printer writing to out. Colors use lipgloss and are only emitted when color
// is true. With clearScreen each Print first clears the terminal, for watching animations.
func New(out io.Writer, color, clearScreen bool) *Printer {
	r := lipgloss.NewRenderer(out)
	if color {
		// The renderer strips colors on non-terminals otherwise.
		r.SetColorProfile(termenv.ANSI256)
	}
	return &Printer{
		out:         out,
		color:       color,
		clearScreen: clearScreen,
		black:       r.NewStyle().Background(lipgloss.Color("0")),
		white:       r.NewStyle().Background(lipgloss.Color("15")),
		marker: r.NewStyle().
			Foreground(lipgloss.Color("9")).
			Background(lipgloss.Color("11")).
			Bold(true),
	}
}

// IsTerminal reports whether w is a terminal, so callers can default color on or off.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Render returns the grid of v as a multi-line block, with a status line at the top.
func (p *Printer) Render(v View) string {
	cells := v.Cells()
	size := squareSide(len(cells))
	var sb strings.Builder
	fmt.Fprintf(&sb, "step %d  ant (%d,%d) heading %s\n", v.Steps(), v.X(), v.Y(), v.Heading())
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			sb.WriteString(p.cell(cells[y*size+x], x == v.X() && y == v.Y(), v.Heading()))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (p *Printer) cell(color uint8, isAnt bool, heading ant.Direction) string {
	if isAnt {
		glyph := heading.Arrow() + " "
		if p.color {
			return p.marker.Render(glyph)
		}
		return glyph
	}
	if !p.color {
		if color != 0 {
			return "##"
		}
		return ". "
	}
	if color != 0 {
		return p.black.Render("  ")
	}
	return p.white.Render("  ")
}

// Print writes Render(v) to the output, centered when the output is a terminal.
func (p *Printer) Print(v View) error {
	block := p.Render(v)
	if p.clearScreen {
		block = clearScreen + block
	}
	width := 0
	if f, ok := p.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		width, _, _ = term.GetSize(int(f.Fd()))
	}
	_, err := io.WriteString(p.out, centered(block, width))
	return err
}

// centered indents every line of block so the widest one is centered on a terminal of the
// given width. A width of 0 leaves block untouched.
func centered(block string, width int) string {
	if width <= 0 {
		return block
	}
	lines := strings.Split(block, "\n")
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, displayWidth(line))
	}
	indent := strings.Repeat(" ", max(0, (width-blockWidth)/2))
	for i, line := range lines {
		if len(line) == 0 {
			continue
		}
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}

func squareSide(n int) int {
	side := 0
	for (side+1)*(side+1) <= n {
		side++
	}
	return side
}
