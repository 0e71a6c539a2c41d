package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/verte-zerg/drawfreq/internal/model"
)

// BarOptions controls text bar chart output.
type BarOptions struct {
	// Width is the total line width; 0 uses the terminal width.
	Width int
	// ForceColor emits ANSI colors even when w is not a terminal.
	ForceColor bool
	// Selected marks one entry index as hovered; -1 for none.
	Selected int
}

const (
	minBarWidth         = 10
	axisSeparator       = " │ "
	selectedMarker      = "▶ "
	unselectedMarker    = "  "
	highlightBarRune    = '█'
	otherBarRune        = '▒'
	legendMarker        = "■"
	colorReset          = "\x1b[0m"
	colorHighlight      = "\x1b[38;5;214m"
	colorOther          = "\x1b[38;5;67m"
	terminalWidthBackup = 80
	noDataNote          = "No data."
)

// Tooltip formats the hover text for one bar.
func Tooltip(e model.FrequencyEntry) string {
	return fmt.Sprintf("Number: %s, Frequency: %d", e.Number, e.Count)
}

// LegendLabels returns the highlighted and other legend labels for a top-N chart.
func LegendLabels(top int) (string, string) {
	if top <= 0 {
		top = DefaultTop
	}
	return fmt.Sprintf("Top %d Numbers", top), "Other Numbers"
}

// PlotBars renders a horizontal bar chart, one row per ranked entry.
func PlotBars(w io.Writer, chart model.Chart, opts BarOptions) error {
	useColor := shouldUseColor(w, opts.ForceColor)
	width := opts.Width
	if width <= 0 {
		width = terminalWidth()
	}

	if _, err := fmt.Fprintf(w, "%s (%s)\n", chart.Label, chart.ID); err != nil {
		return err
	}
	if len(chart.Entries) == 0 {
		if _, err := fmt.Fprintln(w, noDataNote); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, renderLegend(chart.Top, useColor)); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, "")
		return err
	}

	bound, step := NiceScale(float64(chart.Entries.MaxCount()), DefaultTickCount)
	if _, err := fmt.Fprintf(w, "Scale: 0-%s (step %s)\n", formatTick(bound), formatTick(step)); err != nil {
		return err
	}

	labelWidth, countWidth := columnWidths(chart.Entries)
	barWidth := BarWidthFor(width, labelWidth, countWidth)
	for i, e := range chart.Entries {
		line := renderBarRow(e, i == opts.Selected, chart.Highlight.Contains(e.Number), bound, labelWidth, barWidth, useColor)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, renderLegend(chart.Top, useColor)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// BarWidthFor computes the bar area that fits within the total width.
func BarWidthFor(totalWidth, labelWidth, countWidth int) int {
	if totalWidth <= 0 {
		return minBarWidth
	}
	fixed := utf8.RuneCountInString(selectedMarker) + labelWidth + utf8.RuneCountInString(axisSeparator) + 1 + countWidth
	barWidth := totalWidth - fixed
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}
	return barWidth
}

func columnWidths(entries model.RankedList) (int, int) {
	labelWidth, countWidth := 1, 1
	for _, e := range entries {
		if w := runewidth.StringWidth(e.Number); w > labelWidth {
			labelWidth = w
		}
		if w := len(fmt.Sprintf("%d", e.Count)); w > countWidth {
			countWidth = w
		}
	}
	return labelWidth, countWidth
}

func renderBarRow(e model.FrequencyEntry, selected, highlighted bool, bound float64, labelWidth, barWidth int, useColor bool) string {
	var b strings.Builder
	if selected {
		b.WriteString(selectedMarker)
	} else {
		b.WriteString(unselectedMarker)
	}
	b.WriteString(runewidth.FillLeft(e.Number, labelWidth))
	b.WriteString(axisSeparator)

	n := barLength(e.Count, bound, barWidth)
	ch := otherBarRune
	color := colorOther
	if highlighted || selected {
		ch = highlightBarRune
		color = colorHighlight
	}
	bar := strings.Repeat(string(ch), n)
	if useColor && n > 0 {
		b.WriteString(color)
		b.WriteString(bar)
		b.WriteString(colorReset)
	} else {
		b.WriteString(bar)
	}
	b.WriteByte(' ')
	fmt.Fprintf(&b, "%d", e.Count)
	return b.String()
}

func barLength(count int, bound float64, barWidth int) int {
	if bound <= 0 || count <= 0 {
		return 0
	}
	n := int(math.Round(float64(count) / bound * float64(barWidth)))
	if n < 1 {
		n = 1
	}
	if n > barWidth {
		n = barWidth
	}
	return n
}

func renderLegend(top int, useColor bool) string {
	topLabel, otherLabel := LegendLabels(top)
	hi := fmt.Sprintf("%s %s", string(highlightBarRune), topLabel)
	other := fmt.Sprintf("%s %s", string(otherBarRune), otherLabel)
	if useColor {
		hi = colorHighlight + legendMarker + colorReset + " " + topLabel
		other = colorOther + legendMarker + colorReset + " " + otherLabel
	}
	return "Legend: " + hi + "  " + other
}

func formatTick(v float64) string {
	return fmt.Sprintf("%g", roundTick(v))
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
