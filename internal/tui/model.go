package tui

import (
	"context"

	"asset-log-explorer/internal/browsers"
	"asset-log-explorer/internal/models"
	"asset-log-explorer/internal/views"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 100
	defaultHeight = 24
	noURLNotice   = "Nothing to open on this row"
)

// sortKeys maps the underlined header letters to their columns.
var sortKeys = map[string]models.SortColumn{
	"d": models.SortByID,
	"e": models.SortByExtension,
	"r": models.SortByRequests,
	"s": models.SortByAvgSize,
	"b": models.SortByBandwidth,
}

// openURLResultMsg carries the outcome of an open-url command back into Update.
type openURLResultMsg struct {
	url string
	err error
}

// Model is the bubbletea model of the explorer. All table state lives in the controller; the model
// only adds the terminal size and the opener.
type Model struct {
	ctx        context.Context
	controller views.Controller
	opener     browsers.Opener
	width      int
	height     int
}

func NewModel(ctx context.Context, controller views.Controller, opener browsers.Opener) Model {
	return Model{
		ctx:        ctx,
		controller: controller,
		opener:     opener,
		width:      defaultWidth,
		height:     defaultHeight,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case openURLResultMsg:
		if msg.err != nil {
			m.controller.SetNotice(msg.err.Error())
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	// any key only dismisses a visible notice
	if m.controller.DismissNotice() {
		return m, nil
	}

	switch key {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		m.controller.MoveUp()
	case "down", "j":
		m.controller.MoveDown()
	case "left", "h":
		m.controller.PrevTab()
	case "right", "l":
		m.controller.NextTab()
	case "tab":
		m.controller.ToggleTab()
	case "home", "g":
		m.controller.Home()
	case "end", "G":
		m.controller.End()
	case "enter":
		return m, m.openSelected()
	default:
		if column, ok := sortKeys[key]; ok {
			m.controller.ToggleSort(column)
		}
	}
	return m, nil
}

// openSelected returns a command that runs the opener off the update loop.
func (m Model) openSelected() tea.Cmd {
	url, err := m.controller.SelectedURL()
	if err != nil {
		m.controller.SetNotice(noURLNotice)
		return nil
	}

	ctx, opener := m.ctx, m.opener
	return func() tea.Msg {
		return openURLResultMsg{url: url, err: opener.Open(ctx, url)}
	}
}
