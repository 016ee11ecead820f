// Package render implements the console presenter for diff sessions: a
// fixed-width two-column table keyed by the longest key across both
// mappings, with long values word-wrapped inside their column.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/go-wordwrap"

	"github.com/danieljhkim/mapdiff/internal/diff"
)

var (
	addedColor     = color.New(color.FgGreen, color.Bold)
	deletedColor   = color.New(color.FgRed, color.Bold)
	differentColor = color.New(color.FgYellow, color.Bold)
	unchangedColor = color.New(color.FgHiBlack)
	noticeColor    = color.New(color.FgYellow)
)

// titleWidth is the banner width the pass title is centered in.
const titleWidth = 110

// statusWidth is the width of the trailing status column.
const statusWidth = 10

// ConsolePresenter renders session output to a writer.
type ConsolePresenter struct {
	out io.Writer
}

// NewConsolePresenter returns a presenter writing to out; a nil out means
// stdout.
func NewConsolePresenter(out io.Writer) *ConsolePresenter {
	if out == nil {
		out = os.Stdout
	}
	return &ConsolePresenter{out: out}
}

// Title prints the pass title centered in the banner width.
func (p *ConsolePresenter) Title(text string) {
	pad := titleWidth - runewidth.StringWidth(text)
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	fmt.Fprintf(p.out, "%s%s%s\n", strings.Repeat(" ", left), text, strings.Repeat(" ", pad-left))
}

// Row prints one key comparison. The first line carries the key and the
// status label; continuation lines of wrapped values leave both columns
// blank.
func (p *ConsolePresenter) Row(layout diff.Layout, key string, left, right any, status diff.Status) {
	lefts := wrapValue(left, layout.ValueWidth)
	rights := wrapValue(right, layout.ValueWidth)

	lines := len(lefts)
	if len(rights) > lines {
		lines = len(rights)
	}
	if lines == 0 {
		lines = 1
	}

	for i := 0; i < lines; i++ {
		var keyCell, leftCell, rightCell, statusCell string
		if i < len(lefts) {
			leftCell = lefts[i]
		}
		if i < len(rights) {
			rightCell = rights[i]
		}
		if i == 0 {
			keyCell = key
			statusCell = string(status)
		}

		// Colorize only the status cell after padding so the geometry
		// is computed on plain text.
		statusField := pad(statusCell, statusWidth)
		if i == 0 {
			plain := fmt.Sprintf("| %s || %s | %s || %s |",
				pad(keyCell, layout.KeyWidth),
				pad(leftCell, layout.ValueWidth),
				pad(rightCell, layout.ValueWidth),
				statusField)
			fmt.Fprintln(p.out, strings.Repeat("-", runewidth.StringWidth(plain)))
			statusField = statusColor(status).Sprint(statusField)
		}

		fmt.Fprintf(p.out, "| %s || %s | %s || %s |\n",
			pad(keyCell, layout.KeyWidth),
			pad(leftCell, layout.ValueWidth),
			pad(rightCell, layout.ValueWidth),
			statusField)
	}
}

// Summary prints one line per accepted instruction.
func (p *ConsolePresenter) Summary(instructions []diff.Instruction) {
	fmt.Fprintln(p.out, "Done diffing. Review the following changes:")
	for _, in := range instructions {
		switch in.Action {
		case diff.ActionAdd:
			fmt.Fprintf(p.out, "\tAdd %s=%v\n", in.Key, in.Value)
		case diff.ActionDelete:
			fmt.Fprintf(p.out, "\tDelete %s\n", in.Key)
		case diff.ActionKeep:
			fmt.Fprintf(p.out, "\tKeep %s=%v\n", in.Key, in.Value)
		case diff.ActionEdit:
			fmt.Fprintf(p.out, "\tChange %s to %v\n", in.Key, in.Value)
		default:
			fmt.Fprintf(p.out, "\tUnrecognized instruction %q for %s\n", in.Action, in.Key)
		}
	}
}

// Notice prints a short interactive message.
func (p *ConsolePresenter) Notice(text string) {
	_, _ = noticeColor.Fprintf(p.out, "\t%s\n", text)
}

// wrapValue converts a value to its display string and wraps it to the
// column width. An absent (nil) value yields no lines.
func wrapValue(v any, width int) []string {
	if v == nil {
		return nil
	}
	s := fmt.Sprint(v)
	if s == "" {
		return nil
	}
	return strings.Split(wordwrap.WrapString(s, uint(width)), "\n")
}

// pad right-pads a cell to the column width, measuring display width so
// wide runes keep the table aligned.
func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func statusColor(status diff.Status) *color.Color {
	switch status {
	case diff.StatusAdded:
		return addedColor
	case diff.StatusDeleted:
		return deletedColor
	case diff.StatusDifferent:
		return differentColor
	default:
		return unchangedColor
	}
}
