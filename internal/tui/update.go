package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Cassandrat897/keepy-app/internal/db"
	"github.com/Cassandrat897/keepy-app/internal/export"
	"github.com/Cassandrat897/keepy-app/internal/logger"
	"github.com/Cassandrat897/keepy-app/internal/model"
	"github.com/Cassandrat897/keepy-app/internal/share"
	"github.com/Cassandrat897/keepy-app/internal/store"
)

// Init initializes the model
func (m Model) Init() tea.Cmd {
	if m.mode == ModeLocked {
		return textinput.Blink
	}
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeLocked:
			return m.updateLocked(msg)
		case ModeAddProfile, ModeEditProfile:
			return m.updateProfileForm(msg)
		case ModeAddCategory, ModeAddSub, ModeEditCategory:
			return m.updateCategoryForm(msg)
		case ModeAddFolder, ModeRenameFolder:
			return m.updateFolderForm(msg)
		case ModeSearch:
			return m.updateSearch(msg)
		case ModeConfirm:
			return m.updateConfirm(msg)
		case ModeHelp:
			m.mode = ModeNormal
			return m, nil
		}
		return m.handleNormalKeys(msg)
	}

	return m, nil
}

func (m Model) updateLocked(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, keys.Enter):
		if m.gate.Unlock(m.input.Value()) {
			m.mode = ModeNormal
			m.input.SetValue("")
			m.input.EchoMode = textinput.EchoNormal
			m.input.Blur()
			m.message = "Unlocked"
			return m, nil
		}
		logger.Warn("Unlock attempt failed")
		m.input.SetValue("")
		m.message = "Wrong code"
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleNormalKeys handles key presses in normal mode
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Tab):
		if m.pane == PaneSidebar {
			m.pane = PaneProfiles
		} else {
			m.pane = PaneSidebar
		}

	case key.Matches(msg, keys.Left):
		m.pane = PaneSidebar

	case key.Matches(msg, keys.Right):
		m.pane = PaneProfiles

	case key.Matches(msg, keys.Up):
		m.handleUp()

	case key.Matches(msg, keys.Down):
		m.handleDown()

	case key.Matches(msg, keys.Add):
		return m.startAddProfile()

	case key.Matches(msg, keys.Edit):
		return m.startEdit()

	case key.Matches(msg, keys.Delete):
		m.startDelete()

	case key.Matches(msg, keys.Category):
		return m.startAddCategory()

	case key.Matches(msg, keys.Sub):
		return m.startAddSub()

	case key.Matches(msg, keys.Folder):
		return m.startAddFolder()

	case key.Matches(msg, keys.Search):
		return m.startSearch()

	case key.Matches(msg, keys.Platform):
		m.cyclePlatformFilter()

	case key.Matches(msg, keys.Sort):
		m.cycleSortMode()

	case key.Matches(msg, keys.Theme):
		m.toggleTheme()

	case key.Matches(msg, keys.Share):
		m.handleShare()

	case key.Matches(msg, keys.Lock):
		m.gate.Lock()
		m.mode = ModeLocked
		m.input.SetValue("")
		m.input.Placeholder = "Access code"
		m.input.EchoMode = textinput.EchoPassword
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Escape):
		if m.searchText != "" || m.platformFilter != "" {
			m.searchText = ""
			m.platformFilter = ""
			m.refresh()
			m.message = "Filters cleared"
		}

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp
	}

	return m, nil
}

func (m *Model) handleUp() {
	if m.pane == PaneSidebar {
		if m.rowCursor > 0 {
			m.rowCursor--
			m.profCursor = 0
			m.refresh()
		}
	} else if m.profCursor > 0 {
		m.profCursor--
	}
}

func (m *Model) handleDown() {
	if m.pane == PaneSidebar {
		if m.rowCursor < len(m.rows)-1 {
			m.rowCursor++
			m.profCursor = 0
			m.refresh()
		}
	} else if m.profCursor < len(m.profiles)-1 {
		m.profCursor++
	}
}

func (m *Model) cyclePlatformFilter() {
	if m.platformFilter == "" {
		m.platformFilter = model.Platforms[0]
	} else {
		next := model.Platform("")
		for i, p := range model.Platforms {
			if p == m.platformFilter && i+1 < len(model.Platforms) {
				next = model.Platforms[i+1]
				break
			}
		}
		m.platformFilter = next
	}
	m.refresh()
	if m.platformFilter == "" {
		m.message = "Platform filter: all"
	} else {
		m.message = "Platform filter: " + m.platformFilter.Label()
	}
}

func (m *Model) cycleSortMode() {
	order := []model.SortMode{model.SortNewest, model.SortOldest, model.SortAZ, model.SortZA, model.SortColor}
	for i, s := range order {
		if s == m.sortMode {
			m.sortMode = order[(i+1)%len(order)]
			break
		}
	}
	m.refresh()
	m.message = "Sorted by " + string(m.sortMode)
}

func (m *Model) toggleTheme() {
	if m.theme == "dark" {
		m.theme = "light"
	} else {
		m.theme = "dark"
	}
	m.applyTheme()
	if err := m.kv.Set(db.KeyTheme, m.theme); err != nil {
		logger.Warn("Failed to persist theme", logger.F("error", err))
	}
	m.message = "Theme: " + m.theme
}

func (m *Model) handleShare() {
	if len(m.profiles) == 0 {
		m.message = "Nothing to share"
		return
	}
	report := export.Report(m.viewTitle(), m.profiles, m.folders, m.categories)
	where, err := share.Sharer{Command: m.cfg.ShareCommand}.Share(report)
	if err != nil {
		m.message = fmt.Sprintf("Share failed: %v", err)
		return
	}
	m.message = fmt.Sprintf("Report with %d profiles %s", len(m.profiles), where)
}

// Profile form

func (m Model) startAddProfile() (tea.Model, tea.Cmd) {
	if len(m.categories) == 0 {
		m.message = "Create a category first (c)"
		return m, nil
	}
	m.mode = ModeAddProfile
	m.formID = ""
	m.formPlat = model.PlatformInstagram
	m.buildProfileForm("", "", "")
	return m, textinput.Blink
}

func (m Model) startEdit() (tea.Model, tea.Cmd) {
	if m.pane == PaneProfiles {
		p := m.currentProfile()
		if p == nil {
			return m, nil
		}
		m.mode = ModeEditProfile
		m.formID = p.ID
		m.formPlat = p.Platform
		m.buildProfileForm(p.Username, p.DisplayName, p.Notes)
		return m, textinput.Blink
	}

	row := m.currentRow()
	if row == nil {
		return m, nil
	}
	switch row.kind {
	case rowFolder:
		if row.id == "" {
			m.message = "The unfiled bucket cannot be renamed"
			return m, nil
		}
		m.mode = ModeRenameFolder
		m.formID = row.id
		m.input.SetValue(row.name)
		m.input.Placeholder = "Folder name"
		m.input.Focus()
		m.input.CursorEnd()
		return m, textinput.Blink
	case rowCategory, rowSub:
		c, ok := m.st.Category(row.id)
		if !ok {
			return m, nil
		}
		m.mode = ModeEditCategory
		m.formID = c.ID
		m.formColor = c.Color
		m.input.SetValue(c.Name)
		m.input.Placeholder = "Category name"
		m.input.Focus()
		m.input.CursorEnd()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *Model) buildProfileForm(username, displayName, notes string) {
	m.form = make([]textinput.Model, fieldCount)
	for i := range m.form {
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Width = 40
		m.form[i] = ti
	}
	m.form[fieldUsername].Placeholder = "Username or URL"
	m.form[fieldUsername].SetValue(username)
	m.form[fieldDisplayName].Placeholder = "Display name (optional)"
	m.form[fieldDisplayName].SetValue(displayName)
	m.form[fieldNotes].Placeholder = "Notes (optional)"
	m.form[fieldNotes].SetValue(notes)
	m.formFocus = fieldUsername
	m.form[fieldUsername].Focus()
}

// profileForm assembles the current form state. The category comes from
// the sidebar selection for new profiles and is kept for edits.
func (m *Model) profileForm() store.ProfileForm {
	form := store.ProfileForm{
		ID:          m.formID,
		Username:    m.form[fieldUsername].Value(),
		DisplayName: m.form[fieldDisplayName].Value(),
		Platform:    m.formPlat,
		Notes:       m.form[fieldNotes].Value(),
	}
	if m.formID != "" {
		if p, ok := m.st.Profile(m.formID); ok {
			form.CategoryID = p.CategoryID
		}
	} else {
		form.CategoryID = m.selectionCategoryID()
		if form.CategoryID == "" && len(m.categories) > 0 {
			form.CategoryID = m.categories[0].ID
		}
	}
	return form
}

func (m Model) updateProfileForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, keys.Tab), msg.String() == "down":
		m.form[m.formFocus].Blur()
		m.formFocus = (m.formFocus + 1) % fieldCount
		m.form[m.formFocus].Focus()
		return m, textinput.Blink

	case msg.String() == "shift+tab", msg.String() == "up":
		m.form[m.formFocus].Blur()
		m.formFocus = (m.formFocus + fieldCount - 1) % fieldCount
		m.form[m.formFocus].Focus()
		return m, textinput.Blink

	case msg.String() == "ctrl+p":
		m.formPlat = nextPlatform(m.formPlat)
		return m, nil

	case key.Matches(msg, keys.Enter):
		// Pasting a URL into the username field picks the platform.
		m.formPlat = model.DetectPlatform(m.form[fieldUsername].Value(), m.formPlat)
		form := m.profileForm()
		if !m.st.CanSaveProfile(form) {
			m.message = "A username and a category are required"
			return m, nil
		}
		p, _ := m.st.SaveProfile(form)
		if m.formID == "" {
			m.message = fmt.Sprintf("Added: %s", p.Title())
		} else {
			m.message = fmt.Sprintf("Updated: %s", p.Title())
		}
		m.mode = ModeNormal
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.form[m.formFocus], cmd = m.form[m.formFocus].Update(msg)
	return m, cmd
}

func nextPlatform(p model.Platform) model.Platform {
	for i, cand := range model.Platforms {
		if cand == p {
			return model.Platforms[(i+1)%len(model.Platforms)]
		}
	}
	return model.Platforms[0]
}

// Category forms

func (m Model) startAddCategory() (tea.Model, tea.Cmd) {
	m.mode = ModeAddCategory
	m.formID = ""
	m.formColor = model.PastelColors[0]
	m.input.SetValue("")
	m.input.Placeholder = "Category name"
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) startAddSub() (tea.Model, tea.Cmd) {
	row := m.currentRow()
	if row == nil || (row.kind != rowCategory && row.kind != rowSub) {
		m.message = "Select a category first"
		return m, nil
	}
	parent, ok := m.st.Category(row.id)
	if !ok {
		return m, nil
	}
	if !parent.IsRoot() {
		m.message = "Subcategories cannot have children"
		return m, nil
	}
	m.mode = ModeAddSub
	m.formID = parent.ID
	m.input.SetValue("")
	m.input.Placeholder = "Subcategory name"
	m.input.Focus()
	return m, textinput.Blink
}

// categoryFolderID resolves the folder a new root category lands in: the
// selected folder, or the folder of the selected category.
func (m *Model) categoryFolderID() string {
	row := m.currentRow()
	if row == nil {
		return ""
	}
	switch row.kind {
	case rowFolder:
		return row.id
	case rowCategory, rowSub:
		if c, ok := m.st.Category(row.id); ok {
			if c.IsRoot() {
				return c.FolderID
			}
			if p, ok := m.st.Category(c.ParentID); ok {
				return p.FolderID
			}
		}
	}
	return ""
}

func (m Model) updateCategoryForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case msg.String() == "ctrl+p":
		if m.mode != ModeAddSub {
			m.formColor = nextColor(m.formColor)
		}
		return m, nil

	case key.Matches(msg, keys.Enter):
		var form store.CategoryForm
		switch m.mode {
		case ModeAddCategory:
			form = store.CategoryForm{
				Name:     m.input.Value(),
				Color:    m.formColor,
				FolderID: m.categoryFolderID(),
			}
			if form.FolderID == "" {
				form.Unfiled = true
			}
		case ModeAddSub:
			form = store.CategoryForm{
				Name:     m.input.Value(),
				ParentID: m.formID,
			}
		case ModeEditCategory:
			existing, ok := m.st.Category(m.formID)
			if !ok {
				m.mode = ModeNormal
				return m, nil
			}
			form = store.CategoryForm{
				ID:       existing.ID,
				Name:     m.input.Value(),
				Color:    m.formColor,
				ParentID: existing.ParentID,
				FolderID: existing.FolderID,
			}
		}

		if !m.st.CanSaveCategory(form) {
			m.message = "A name is required"
			return m, nil
		}
		saved, _ := m.st.SaveCategory(form)
		m.message = fmt.Sprintf("Saved category: %s", saved.Name)
		m.mode = ModeNormal
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func nextColor(color string) string {
	for i, c := range model.PastelColors {
		if c == color {
			return model.PastelColors[(i+1)%len(model.PastelColors)]
		}
	}
	return model.PastelColors[0]
}

// Folder forms

func (m Model) startAddFolder() (tea.Model, tea.Cmd) {
	m.mode = ModeAddFolder
	m.formID = ""
	m.input.SetValue("")
	m.input.Placeholder = "Folder name"
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) updateFolderForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, keys.Enter):
		name := m.input.Value()
		if name == "" {
			m.message = "A name is required"
			return m, nil
		}
		if m.mode == ModeRenameFolder {
			m.st.RenameFolder(m.formID, name)
			m.message = fmt.Sprintf("Renamed folder: %s", name)
		} else {
			m.st.CreateFolder(name)
			m.message = fmt.Sprintf("Created folder: %s", name)
		}
		m.mode = ModeNormal
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Search

func (m Model) startSearch() (tea.Model, tea.Cmd) {
	m.mode = ModeSearch
	m.input.SetValue(m.searchText)
	m.input.Placeholder = ""
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		m.searchText = ""
		m.refresh()
		return m, nil

	case key.Matches(msg, keys.Enter):
		m.mode = ModeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	// Live filter as the user types
	m.searchText = m.input.Value()
	m.refresh()
	return m, cmd
}

// Deletion

func (m *Model) startDelete() {
	if m.pane == PaneProfiles {
		p := m.currentProfile()
		if p == nil {
			return
		}
		id, title := p.ID, p.Title()
		m.askConfirm(fmt.Sprintf("Delete %q?", title), func(m *Model) {
			m.st.DeleteProfile(id)
			m.message = fmt.Sprintf("Deleted: %s", title)
		})
		return
	}

	row := m.currentRow()
	if row == nil || row.kind == rowAll {
		return
	}
	switch row.kind {
	case rowFolder:
		if row.id == "" {
			m.message = "The unfiled bucket cannot be deleted"
			return
		}
		id, name := row.id, row.name
		m.askConfirm(fmt.Sprintf("Delete folder %q? Its categories become unfiled.", name), func(m *Model) {
			m.st.DeleteFolder(id)
			m.message = fmt.Sprintf("Deleted folder: %s", name)
		})
	case rowCategory, rowSub:
		id, name := row.id, row.name
		prompt := fmt.Sprintf("Delete category %q? Profiles will be uncategorized.", name)
		if m.st.CategoryHasChildren(id) {
			prompt = fmt.Sprintf("Delete category %q and all its subcategories? Profiles will be uncategorized.", name)
		}
		m.askConfirm(prompt, func(m *Model) {
			removed := m.st.DeleteCategory(id)
			m.message = fmt.Sprintf("Deleted %d categories", len(removed))
		})
	}
}

func (m *Model) askConfirm(prompt string, run func(m *Model)) {
	if !m.cfg.ConfirmDelete {
		run(m)
		m.refresh()
		return
	}
	m.confirm = &confirmAction{prompt: prompt, run: run}
	m.mode = ModeConfirm
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.confirm != nil {
			m.confirm.run(&m)
		}
	default:
		m.message = "Cancelled"
	}
	m.confirm = nil
	m.mode = ModeNormal
	m.refresh()
	return m, nil
}
