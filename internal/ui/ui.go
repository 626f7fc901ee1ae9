package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/vidcat/internal/models"
	"github.com/desertthunder/vidcat/internal/tasks"
	"github.com/desertthunder/vidcat/internal/views"
)

// searchDebounce is how long search input must be idle before a backend
// search is issued.
const searchDebounce = 300 * time.Millisecond

// ViewState represents the current view in the TUI.
type ViewState int

const (
	VideoTableView ViewState = iota
	FormView
	ConfirmDeleteView
	ErrorView
)

// Model represents the TUI application state.
type Model struct {
	ctx    context.Context
	view   ViewState
	engine *tasks.CatalogEngine
	logger *log.Logger

	width  int
	height int

	table  table.Model
	videos []models.VideoView

	search    textinput.Model
	searching bool
	searchSeq int
	lastQuery string

	form          formState
	pendingDelete *models.VideoView

	status string
	err    error
	help   help.Model
	keys   keyMap
}

type catalogSyncedMsg struct{ err error }

type searchDebouncedMsg struct{ seq int }

type videoSavedMsg struct {
	authors []models.AuthorEntity
	err     error
}

type videoDeletedMsg struct {
	author *models.AuthorEntity
	err    error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, engine *tasks.CatalogEngine, logger *log.Logger) *Model {
	search := textinput.New()
	search.Placeholder = "Search authors..."
	search.CharLimit = 64

	columns := []table.Column{
		{Title: "ID", Width: 10},
		{Title: "Name", Width: 28},
		{Title: "Author", Width: 20},
		{Title: "Categories", Width: 30},
	}
	tbl := table.New(table.WithColumns(columns), table.WithFocused(true))

	return &Model{
		ctx:    ctx,
		view:   VideoTableView,
		engine: engine,
		logger: logger,
		table:  tbl,
		search: search,
		help:   help.New(),
		keys:   newKeyMap(),
	}
}

// Init triggers the initial bulk fetch of the catalog.
func (m *Model) Init() tea.Cmd {
	return m.refreshCmd()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width - 4)
		m.table.SetHeight(msg.Height - 8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case VideoTableView:
			return m.handleTableKeys(msg)
		case FormView:
			return m.handleFormKeys(msg)
		case ConfirmDeleteView:
			return m.handleConfirmKeys(msg)
		case ErrorView:
			return m.handleErrorKeys(msg)
		}

	case catalogSyncedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = ErrorView
			return m, nil
		}
		m.reloadTable()
		return m, nil

	case searchDebouncedMsg:
		// Stale timers fire for superseded input; only the latest counts.
		if msg.seq != m.searchSeq {
			return m, nil
		}
		term := m.search.Value()
		if term == m.lastQuery {
			return m, nil
		}
		m.lastQuery = term
		if term == "" {
			return m, m.refreshCmd()
		}
		return m, m.searchCmd(term)

	case videoSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = ErrorView
			return m, nil
		}
		if msg.authors == nil {
			m.status = "Nothing to save"
		} else {
			m.status = "Saved"
		}
		m.view = VideoTableView
		m.reloadTable()
		return m, nil

	case videoDeletedMsg:
		m.pendingDelete = nil
		if msg.err != nil {
			m.err = msg.err
			m.view = ErrorView
			return m, nil
		}
		m.status = "Deleted"
		m.view = VideoTableView
		m.reloadTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// reloadTable recomputes the video views from the current snapshot.
func (m *Model) reloadTable() {
	snap := m.engine.Catalog().Snapshot()
	videoViews, dropped := views.AllVideos(snap)
	if dropped > 0 {
		m.logger.Warn("videos with dangling author references omitted from view", "count", dropped)
	}
	m.videos = videoViews

	rows := make([]table.Row, 0, len(videoViews))
	for _, v := range videoViews {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", v.ID),
			v.Name,
			v.Author.Name,
			categoryList(v.Categories),
		})
	}
	m.table.SetRows(rows)
}

func categoryList(categories []models.CategoryEntity) string {
	out := ""
	for i, c := range categories {
		if i > 0 {
			out += ", "
		}
		out += c.Name
	}
	return out
}

// selectedVideo returns the view under the table cursor.
func (m *Model) selectedVideo() *models.VideoView {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.videos) {
		return nil
	}
	v := m.videos[idx]
	return &v
}

func (m *Model) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search.Blur()
			return m, nil
		case "enter":
			m.searching = false
			m.search.Blur()
			m.searchSeq++
			return m, func() tea.Msg { return searchDebouncedMsg{seq: m.searchSeq} }
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.searchSeq++
			return m, tea.Batch(cmd, m.debounceCmd(m.searchSeq))
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case "n":
		m.openForm(nil)
		return m, textinput.Blink
	case "e":
		if v := m.selectedVideo(); v != nil {
			snap := m.engine.Catalog().Snapshot()
			if entity, ok := snap.Videos[v.ID]; ok {
				m.openForm(&entity)
				return m, textinput.Blink
			}
		}
		return m, nil
	case "d":
		if v := m.selectedVideo(); v != nil {
			m.pendingDelete = v
			m.view = ConfirmDeleteView
		}
		return m, nil
	case "r":
		return m, m.refreshCmd()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if m.pendingDelete != nil {
			return m, m.deleteCmd(m.pendingDelete.ID)
		}
		m.view = VideoTableView
		return m, nil
	case "n", "esc":
		m.pendingDelete = nil
		m.view = VideoTableView
		return m, nil
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleErrorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "enter":
		m.err = nil
		m.view = VideoTableView
		return m, nil
	}
	return m, nil
}

// Commands

func (m *Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return catalogSyncedMsg{err: m.engine.RefreshAll(m.ctx, nil)}
	}
}

func (m *Model) searchCmd(term string) tea.Cmd {
	return func() tea.Msg {
		return catalogSyncedMsg{err: m.engine.Search(m.ctx, nil, term)}
	}
}

func (m *Model) debounceCmd(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebouncedMsg{seq: seq}
	})
}

func (m *Model) saveCmd(video models.VideoEntity, original *models.VideoEntity) tea.Cmd {
	return func() tea.Msg {
		authors, err := m.engine.SaveVideo(m.ctx, nil, video, original)
		return videoSavedMsg{authors: authors, err: err}
	}
}

func (m *Model) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		author, err := m.engine.DeleteVideo(m.ctx, nil, id)
		return videoDeletedMsg{author: author, err: err}
	}
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case VideoTableView:
		return m.renderTable()
	case FormView:
		return m.renderForm()
	case ConfirmDeleteView:
		return m.renderConfirm()
	case ErrorView:
		return styles.err.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n" + styles.help.Render("esc to continue, q to quit")
	}
	return ""
}

func (m *Model) renderTable() string {
	header := styles.title.Render("Videos")
	searchLine := "Search: " + m.search.View()
	body := m.table.View()

	status := ""
	if m.status != "" {
		status = styles.ok.Render(m.status)
	}
	snap := m.engine.Catalog().Snapshot()
	if views.IsLoading(snap) {
		status = styles.warn.Render("Loading...")
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n%s\n%s", header, searchLine, body, status, m.help.View(m.keys))
}

func (m *Model) renderConfirm() string {
	name := ""
	if m.pendingDelete != nil {
		name = m.pendingDelete.Name
	}
	prompt := styles.title.Render("Delete video")
	question := fmt.Sprintf("Delete %q? This removes it from its author.", name)
	return fmt.Sprintf("%s\n%s\n\n%s", prompt, question, styles.help.Render("y to confirm, n to cancel"))
}
