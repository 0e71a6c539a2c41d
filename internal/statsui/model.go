// Package statsui provides the Bubble Tea chart browser.
package statsui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/drawfreq/internal/model"
	"github.com/verte-zerg/drawfreq/internal/stats"
)

const (
	tabWinning = iota
	tabCashBall
	tabRanks
)

// Lines printed by stats.PlotBars above the first bar row.
const chartHeaderLines = 2

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#FFA500"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	tooltipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#D3D3D3")).Padding(0, 1)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea chart browser.
type Model struct {
	report stats.Report

	tabs      []string
	activeTab int
	selected  []int
	viewports []viewport.Model
	rankTable table.Model

	width  int
	height int

	findMode  bool
	findInput textinput.Model
	findError string
}

// NewModel constructs a browser over a computed report.
func NewModel(report stats.Report) *Model {
	m := &Model{
		report:   report,
		tabs:     []string{model.CategoryWinning.Label(), model.CategoryCashBall.Label(), "Ranks"},
		selected: []int{0, 0},
	}
	m.viewports = []viewport.Model{viewport.New(0, 0), viewport.New(0, 0)}
	m.findInput = textinput.New()
	m.findInput.Prompt = "Number: "
	m.findInput.Placeholder = "07"
	m.findInput.CharLimit = 12
	m.findInput.Cursor.SetMode(cursor.CursorBlink)
	m.rankTable = buildRankTable(report, 0, 1)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.findMode {
			return m.updateFind(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l", "tab":
			m.moveTab(1)
			return m, tea.ClearScreen
		}
		if m.activeTab == tabRanks {
			var cmd tea.Cmd
			m.rankTable, cmd = m.rankTable.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "up", "k":
			m.moveSelection(-1)
		case "down", "j":
			m.moveSelection(1)
		case "g", "home":
			m.setSelection(0)
		case "G", "end":
			m.setSelection(len(m.activeChart().Entries) - 1)
		case "/":
			return m.startFind()
		default:
			vp := m.viewports[m.activeTab]
			var cmd tea.Cmd
			vp, cmd = vp.Update(msg)
			m.viewports[m.activeTab] = vp
			return m, cmd
		}
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

// Selected returns the entry under the cursor on a chart tab.
func (m *Model) Selected() (model.FrequencyEntry, bool) {
	if m.activeTab == tabRanks {
		return model.FrequencyEntry{}, false
	}
	entries := m.activeChart().Entries
	idx := m.selected[m.activeTab]
	if idx < 0 || idx >= len(entries) {
		return model.FrequencyEntry{}, false
	}
	return entries[idx], true
}

func (m *Model) activeChart() model.Chart {
	if m.activeTab == tabCashBall {
		return m.report.CashBall
	}
	return m.report.Winning
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 2
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
	m.rankTable.SetWidth(m.width)
	m.rankTable.SetHeight(maxInt(1, bodyHeight-1))
	promptWidth := lipgloss.Width(m.findInput.Prompt)
	m.findInput.Width = maxInt(10, m.width-promptWidth-2)
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabRanks {
		m.rankTable.Focus()
	} else {
		m.rankTable.Blur()
	}
}

func (m *Model) moveSelection(delta int) {
	m.setSelection(m.selected[m.activeTab] + delta)
}

func (m *Model) setSelection(idx int) {
	if m.activeTab == tabRanks {
		return
	}
	n := len(m.activeChart().Entries)
	if n == 0 {
		m.selected[m.activeTab] = 0
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	m.selected[m.activeTab] = idx
	m.renderChart(m.activeTab)
	m.scrollToSelection()
}

func (m *Model) scrollToSelection() {
	vp := &m.viewports[m.activeTab]
	if vp.Height <= 0 {
		return
	}
	row := chartHeaderLines + m.selected[m.activeTab]
	switch {
	case row < vp.YOffset:
		vp.SetYOffset(row)
	case row >= vp.YOffset+vp.Height:
		vp.SetYOffset(row - vp.Height + 1)
	}
}

func (m *Model) renderTabContents() {
	m.renderChart(tabWinning)
	m.renderChart(tabCashBall)
}

func (m *Model) renderChart(tab int) {
	chart := m.report.Winning
	if tab == tabCashBall {
		chart = m.report.CashBall
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	var buf bytes.Buffer
	if err := stats.PlotBars(&buf, chart, stats.BarOptions{
		Width:      width,
		ForceColor: true,
		Selected:   m.selected[tab],
	}); err != nil {
		m.viewports[tab].SetContent(fmt.Sprintf("Failed to render chart: %v", err))
		return
	}
	m.viewports[tab].SetContent(strings.TrimRight(buf.String(), "\n"))
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	return tabs + "\n" + padLines(m.renderSummary(), m.width)
}

func (m *Model) renderSummary() string {
	source := m.report.Source
	if source == "" {
		source = "-"
	}
	summary := fmt.Sprintf("Source: %s  rows=%d  top=%d  invalid=%d",
		source, m.report.Aggregation.Rows, m.report.Winning.Top, len(m.report.Aggregation.Invalid))
	return headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderBody() string {
	if m.findMode {
		lines := []string{"Find number (enter to jump, esc to cancel)", m.findInput.View()}
		if m.findError != "" {
			lines = append(lines, errorStyle.Render(m.findError))
		}
		return strings.Join(lines, "\n")
	}
	if m.activeTab == tabRanks {
		if len(m.rankTable.Rows()) == 0 {
			return "No data."
		}
		return tableMutedStyle.Render(m.rankTable.View())
	}
	return m.viewports[m.activeTab].View()
}

func (m *Model) renderFooter() string {
	return m.renderTooltip() + "\n" + m.renderHelp()
}

func (m *Model) renderTooltip() string {
	if m.findError != "" && !m.findMode {
		return errorStyle.Render(m.findError)
	}
	if m.activeTab == tabRanks {
		return ""
	}
	entry, ok := m.Selected()
	if !ok {
		return headerStyle.Render("No data.")
	}
	return tooltipStyle.Render(stats.Tooltip(entry))
}

func (m *Model) renderHelp() string {
	help := "Tabs: left/right  Select: up/down  First/last: g/G  Find: /  Quit: q"
	if m.activeTab == tabRanks {
		help = "Tabs: left/right  Scroll: up/down/pgup/pgdn  Quit: q"
	}
	if m.findMode {
		help = "enter: jump  esc: cancel  ctrl+c: quit"
	}
	return headerStyle.Render(help)
}

func (m *Model) startFind() (tea.Model, tea.Cmd) {
	m.findMode = true
	m.findError = ""
	m.findInput.SetValue("")
	return m, m.findInput.Focus()
}

func (m *Model) updateFind(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.findMode = false
		m.findError = ""
		m.findInput.Blur()
		return m, nil
	case tea.KeyEnter:
		if err := m.applyFind(); err != nil {
			m.findError = err.Error()
			return m, nil
		}
		m.findMode = false
		m.findError = ""
		m.findInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.findInput, cmd = m.findInput.Update(msg)
	return m, cmd
}

func (m *Model) applyFind() error {
	raw := strings.TrimSpace(m.findInput.Value())
	number, err := stats.Normalize(raw)
	if err != nil {
		return fmt.Errorf("not a number: %q", raw)
	}
	idx := m.activeChart().Entries.IndexOf(number)
	if idx < 0 {
		return fmt.Errorf("%s was never drawn as %s", number, strings.ToLower(m.activeChart().Label))
	}
	m.setSelection(idx)
	return nil
}

func buildRankTable(report stats.Report, width, height int) table.Model {
	columns := []table.Column{
		{Title: "Category", Width: 16},
		{Title: "Rank", Width: 5},
		{Title: "Number", Width: 7},
		{Title: "Count", Width: 7},
		{Title: "Share", Width: 8},
		{Title: "Top", Width: 4},
	}
	rows := make([]table.Row, 0, len(report.Winning.Entries)+len(report.CashBall.Entries))
	for _, chart := range report.Charts() {
		total := chart.Entries.Total()
		for i, e := range chart.Entries {
			top := ""
			if chart.Highlight.Contains(e.Number) {
				top = "*"
			}
			rows = append(rows, table.Row{
				chart.Label,
				fmt.Sprintf("%d", i+1),
				e.Number,
				fmt.Sprintf("%d", e.Count),
				fmt.Sprintf("%.2f%%", stats.Share(e.Count, total)*100),
				top,
			})
		}
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, height-1)),
	)
	t.SetWidth(width)
	t.SetStyles(rankTableStyles())
	return t
}

func rankTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#FFA500")).
		Bold(true)
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
