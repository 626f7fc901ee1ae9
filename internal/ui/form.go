package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/vidcat/internal/models"
)

// formState holds the create/edit form for a video: a name field, an author
// picker, and category toggles. Field focus moves with tab/shift+tab.
type formState struct {
	editing *models.VideoEntity // nil for a new video

	name       textinput.Model
	authors    []models.AuthorEntity
	authorIdx  int
	categories []models.CategoryEntity
	selected   map[int64]bool

	focus      int // 0 = name, 1 = author, 2+n = category n
	validation string
}

// openForm switches to the form view, prefilled from the entity when editing.
func (m *Model) openForm(editing *models.VideoEntity) {
	snap := m.engine.Catalog().Snapshot()

	name := textinput.New()
	name.Placeholder = "Video name"
	name.CharLimit = 128
	name.Focus()

	form := formState{
		editing:    editing,
		name:       name,
		authors:    snap.AllAuthors(),
		categories: snap.AllCategories(),
		selected:   make(map[int64]bool),
	}

	if editing != nil {
		form.name.SetValue(editing.Name)
		for i, a := range form.authors {
			if a.ID == editing.AuthorID {
				form.authorIdx = i
				break
			}
		}
		for _, id := range editing.CatIDs {
			form.selected[id] = true
		}
	}

	m.form = form
	m.view = FormView
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.form

	switch msg.String() {
	case "esc":
		m.view = VideoTableView
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "down":
		f.focus = (f.focus + 1) % (2 + len(f.categories))
		m.syncFormFocus()
		return m, nil
	case "shift+tab", "up":
		f.focus = (f.focus - 1 + 2 + len(f.categories)) % (2 + len(f.categories))
		m.syncFormFocus()
		return m, nil
	case "left":
		if f.focus == 1 && len(f.authors) > 0 {
			f.authorIdx = (f.authorIdx - 1 + len(f.authors)) % len(f.authors)
			return m, nil
		}
	case "right":
		if f.focus == 1 && len(f.authors) > 0 {
			f.authorIdx = (f.authorIdx + 1) % len(f.authors)
			return m, nil
		}
	case " ":
		if f.focus >= 2 {
			cat := f.categories[f.focus-2]
			f.selected[cat.ID] = !f.selected[cat.ID]
			return m, nil
		}
	case "enter":
		return m.submitForm()
	}

	if f.focus == 0 {
		var cmd tea.Cmd
		f.name, cmd = f.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) syncFormFocus() {
	if m.form.focus == 0 {
		m.form.name.Focus()
	} else {
		m.form.name.Blur()
	}
}

// submitForm validates the draft and launches the save workflow.
func (m *Model) submitForm() (tea.Model, tea.Cmd) {
	f := &m.form

	var authorID int64
	if len(f.authors) > 0 {
		authorID = f.authors[f.authorIdx].ID
	}

	var catIDs []int64
	for _, c := range f.categories {
		if f.selected[c.ID] {
			catIDs = append(catIDs, c.ID)
		}
	}

	draft := models.VideoDraft{
		Name:     strings.TrimSpace(f.name.Value()),
		AuthorID: authorID,
		CatIDs:   catIDs,
	}
	if err := draft.Validate(); err != nil {
		f.validation = err.Error()
		return m, nil
	}

	var id int64
	if f.editing != nil {
		id = f.editing.ID
	}
	return m, m.saveCmd(draft.Entity(id), f.editing)
}

func (m *Model) renderForm() string {
	f := m.form

	title := "New video"
	if f.editing != nil {
		title = fmt.Sprintf("Edit video %d", f.editing.ID)
	}

	var b strings.Builder
	b.WriteString(styles.title.Render(title))
	b.WriteString("\n")

	b.WriteString(formLabel("Name", f.focus == 0))
	b.WriteString(f.name.View())
	b.WriteString("\n")

	author := "(no authors loaded)"
	if len(f.authors) > 0 {
		author = fmt.Sprintf("◀ %s ▶", f.authors[f.authorIdx].Name)
	}
	b.WriteString(formLabel("Author", f.focus == 1))
	b.WriteString(author)
	b.WriteString("\n")

	b.WriteString(formLabel("Categories", f.focus >= 2))
	b.WriteString("\n")
	for i, c := range f.categories {
		mark := "[ ]"
		if f.selected[c.ID] {
			mark = "[x]"
		}
		line := fmt.Sprintf("  %s %s", mark, c.Name)
		if f.focus == 2+i {
			line = styles.ok.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if f.validation != "" {
		b.WriteString("\n")
		b.WriteString(styles.err.Render(f.validation))
	}

	b.WriteString("\n")
	b.WriteString(styles.help.Render("tab to move, space to toggle, enter to save, esc to cancel"))
	return b.String()
}

func formLabel(text string, active bool) string {
	label := text + ": "
	if active {
		return styles.ok.Render(label)
	}
	return label
}
