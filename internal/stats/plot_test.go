package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/drawfreq/internal/model"
)

func testChart() model.Chart {
	entries := model.RankedList{
		{Number: "7", Count: 10},
		{Number: "12", Count: 6},
		{Number: "3", Count: 1},
	}
	return model.Chart{
		ID:        "winning-chart",
		Label:     "Winning Numbers",
		Top:       2,
		Entries:   entries,
		Highlight: Highlight(entries, 2),
	}
}

func TestPlotBars(t *testing.T) {
	var buf bytes.Buffer
	if err := PlotBars(&buf, testChart(), BarOptions{Width: 40, Selected: -1}); err != nil {
		t.Fatalf("PlotBars failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Winning Numbers (winning-chart)", "Scale: 0-10 (step 1)", "Legend:", "Top 2 Numbers", "Other Numbers"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2+3+1 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[2], "█") || !strings.HasSuffix(lines[2], " 10") {
		t.Fatalf("expected highlighted full bar for top entry: %q", lines[2])
	}
	if !strings.Contains(lines[4], "▒") || strings.Contains(lines[4], "█") {
		t.Fatalf("expected plain bar for non-highlighted entry: %q", lines[4])
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no ANSI codes for non-terminal writer")
	}
}

func TestPlotBarsSelectedAndColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var buf bytes.Buffer
	if err := PlotBars(&buf, testChart(), BarOptions{Width: 40, Selected: 2, ForceColor: true}); err != nil {
		t.Fatalf("PlotBars failed: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if !strings.HasPrefix(lines[4], selectedMarker) {
		t.Fatalf("expected selection marker on row 3: %q", lines[4])
	}
	if !strings.Contains(lines[4], colorHighlight) {
		t.Fatalf("expected selected bar drawn in highlight color: %q", lines[4])
	}
}

func TestPlotBarsEmpty(t *testing.T) {
	var buf bytes.Buffer
	chart := model.Chart{ID: "cashball-chart", Label: "Cash Ball", Top: 5}
	if err := PlotBars(&buf, chart, BarOptions{Width: 40, Selected: -1}); err != nil {
		t.Fatalf("PlotBars failed on empty chart: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "No data.") || !strings.Contains(out, "Top 5 Numbers") {
		t.Fatalf("unexpected empty chart output:\n%s", out)
	}
}

func TestBarWidthFor(t *testing.T) {
	if got := BarWidthFor(0, 2, 2); got != minBarWidth {
		t.Fatalf("expected min width %d, got %d", minBarWidth, got)
	}
	// marker(2) + label(2) + separator(3) + space(1) + count(3)
	if got := BarWidthFor(80, 2, 3); got != 80-11 {
		t.Fatalf("expected width %d, got %d", 80-11, got)
	}
}

func TestTooltip(t *testing.T) {
	got := Tooltip(model.FrequencyEntry{Number: "7", Count: 42})
	if got != "Number: 7, Frequency: 42" {
		t.Fatalf("unexpected tooltip: %q", got)
	}
}
