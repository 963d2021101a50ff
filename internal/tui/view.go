package tui

import (
	"fmt"
	"strings"

	"asset-log-explorer/internal/models"
	"asset-log-explorer/internal/views"

	"github.com/charmbracelet/lipgloss"
)

const (
	title = "Asset Log Explorer"
	help  = "q quit · ↑↓/jk move · ←→/hl tabs · tab view · enter open · d id · e ext · r requests · " +
		"s avg size · b bandwidth · g/G top/bottom · repeat toggles asc/desc"

	markerWidth    = 2
	minIDWidth     = 10
	extWidth       = 8
	requestsWidth  = 10
	avgWidth       = 12
	bandwidthWidth = 14
	columnGap      = 1
	columnCount    = 6

	// title, summary, header, two dividers, totals, help
	chromeLines = 7
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	faintStyle     = lipgloss.NewStyle().Faint(true)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	headerStyle    = lipgloss.NewStyle().Bold(true)
	dividerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	noticeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1"))

	kindColors = map[models.AssetKind]lipgloss.Color{
		models.KindImage:        lipgloss.Color("2"),
		models.KindFile:         lipgloss.Color("4"),
		models.KindQuery:        lipgloss.Color("3"),
		models.KindUnclassified: lipgloss.Color("8"),
	}
)

type column struct {
	label    string
	shortcut rune
	sortBy   models.SortColumn
	width    int
	align    lipgloss.Position
}

func (m Model) columns() []column {
	idWidth := m.width - (markerWidth + extWidth + requestsWidth + avgWidth + bandwidthWidth) - columnGap*(columnCount-1)
	if idWidth < minIDWidth {
		idWidth = minIDWidth
	}
	return []column{
		{label: "T", width: markerWidth, align: lipgloss.Left},
		{label: "ID", shortcut: 'd', sortBy: models.SortByID, width: idWidth, align: lipgloss.Left},
		{label: "Ext", shortcut: 'e', sortBy: models.SortByExtension, width: extWidth, align: lipgloss.Left},
		{label: "Requests", shortcut: 'r', sortBy: models.SortByRequests, width: requestsWidth, align: lipgloss.Right},
		{label: "Size (Avg)", shortcut: 's', sortBy: models.SortByAvgSize, width: avgWidth, align: lipgloss.Right},
		{label: "Bandwidth", shortcut: 'b', sortBy: models.SortByBandwidth, width: bandwidthWidth, align: lipgloss.Right},
	}
}

func (m Model) View() string {
	columns := m.columns()
	rows := m.controller.Rows()
	notice := m.controller.Notice()

	maxRows := m.height - chromeLines
	if notice != "" {
		maxRows--
	}
	start, end := visibleRange(len(rows), m.controller.Selected(), maxRows)

	lines := []string{
		m.renderTitle(),
		m.renderSummary(),
		m.renderHeader(columns),
		renderDivider(columns),
	}
	for i := start; i < end; i++ {
		lines = append(lines, renderRow(columns, rows[i], i == m.controller.Selected()))
	}
	lines = append(lines, renderDivider(columns))
	lines = append(lines, renderRow(columns, m.controller.Totals(), false))
	if notice != "" {
		lines = append(lines, noticeStyle.Render(truncate(" "+notice+" (press any key) ", m.width)))
	}
	lines = append(lines, faintStyle.Render(truncate(help, m.width)))

	return strings.Join(lines, "\n")
}

func (m Model) renderTitle() string {
	tabs := make([]string, 0, len(views.Tabs))
	for _, tab := range views.Tabs {
		if tab == m.controller.Tab() {
			tabs = append(tabs, activeTabStyle.Render(tab.Title()))
		} else {
			tabs = append(tabs, tabStyle.Render(tab.Title()))
		}
	}
	return strings.Join([]string{
		titleStyle.Render(title),
		faintStyle.Render(m.controller.Source()),
		strings.Join(tabs, " "),
		faintStyle.Render("←→ switch tabs"),
	}, "  ")
}

func (m Model) renderSummary() string {
	summary := m.controller.Summary()
	line := fmt.Sprintf("%s requests · %s transferred · %s lines read · %s lines skipped",
		formatCount(summary.Requests),
		formatBytes(summary.TotalBandwidth),
		formatCount(summary.LinesRead),
		formatCount(summary.Skipped()),
	)
	if summary.Skipped() > 0 {
		line += fmt.Sprintf(" (%s malformed, %s without url)", formatCount(summary.MalformedJSON), formatCount(summary.MissingURL))
	}
	return faintStyle.Render(truncate(line, m.width))
}

// renderHeader underlines each column's shortcut letter and marks the active sort column with its arrow.
func (m Model) renderHeader(columns []column) string {
	state := m.controller.SortState()
	cells := make([]string, 0, len(columns))
	for _, col := range columns {
		var label strings.Builder
		underlined := false
		for _, r := range col.label {
			if !underlined && col.shortcut != 0 && strings.EqualFold(string(r), string(col.shortcut)) {
				label.WriteString(headerStyle.Underline(true).Render(string(r)))
				underlined = true
				continue
			}
			label.WriteString(headerStyle.Render(string(r)))
		}
		if col.sortBy != "" && col.sortBy == state.Column {
			label.WriteString(headerStyle.Render(" " + state.Direction.Arrow()))
		}
		cells = append(cells, lipgloss.NewStyle().Width(col.width).Align(col.align).Render(label.String()))
	}
	return strings.Join(cells, strings.Repeat(" ", columnGap))
}

func renderDivider(columns []column) string {
	cells := make([]string, 0, len(columns))
	for _, col := range columns {
		cells = append(cells, strings.Repeat("─", col.width))
	}
	return dividerStyle.Render(strings.Join(cells, strings.Repeat(" ", columnGap)))
}

func renderRow(columns []column, row models.Row, selected bool) string {
	base := lipgloss.NewStyle()
	if selected {
		base = base.Reverse(true)
	}
	if row.Group || row.Label == "TOTAL" {
		base = base.Bold(true)
	}

	label := row.Label
	if label == "" {
		label = "  "
	}
	marker := ""
	if row.Kind != "" {
		marker = row.Kind.Marker()
	}

	values := []string{
		marker,
		label,
		row.Extension,
		formatCount(row.Requests),
		formatAvg(row.AvgSize),
		formatBytes(row.Bandwidth),
	}

	gap := base.Render(strings.Repeat(" ", columnGap))
	cells := make([]string, 0, len(columns))
	for i, col := range columns {
		style := base.Width(col.width).Align(col.align)
		if i == 0 {
			if color, ok := kindColors[row.Kind]; ok {
				style = style.Foreground(color)
			}
		}
		cells = append(cells, style.Render(truncate(values[i], col.width)))
	}
	return strings.Join(cells, gap)
}
