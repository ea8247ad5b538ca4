package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/Cassandrat897/keepy-app/internal/auth"
	"github.com/Cassandrat897/keepy-app/internal/config"
	"github.com/Cassandrat897/keepy-app/internal/db"
	"github.com/Cassandrat897/keepy-app/internal/logger"
	"github.com/Cassandrat897/keepy-app/internal/model"
	"github.com/Cassandrat897/keepy-app/internal/store"
	"github.com/Cassandrat897/keepy-app/internal/view"
)

// Pane represents which pane is focused
type Pane int

const (
	PaneSidebar Pane = iota
	PaneProfiles
)

// Mode represents the current UI mode
type Mode int

const (
	ModeLocked Mode = iota
	ModeNormal
	ModeAddProfile
	ModeEditProfile
	ModeAddCategory
	ModeAddSub
	ModeEditCategory
	ModeAddFolder
	ModeRenameFolder
	ModeSearch
	ModeConfirm
	ModeHelp
)

// rowKind tags a sidebar row
type rowKind int

const (
	rowAll rowKind = iota
	rowFolder
	rowCategory
	rowSub
)

// sidebarRow is one selectable line in the sidebar: the all-profiles
// entry, a folder header, a root category, or a subcategory.
type sidebarRow struct {
	kind  rowKind
	id    string
	name  string
	color string
}

// confirmAction is a pending destructive action awaiting y/n.
type confirmAction struct {
	prompt string
	run    func(m *Model)
}

// Model is the main TUI model
type Model struct {
	kv   *db.KV
	st   *store.Store
	gate *auth.Gate
	cfg  *config.Config

	// Derived state, rebuilt by refresh()
	folders    []model.Folder
	categories []model.Category
	profiles   []model.Profile
	rows       []sidebarRow

	// UI state
	width      int
	height     int
	pane       Pane
	mode       Mode
	rowCursor  int
	profCursor int
	styles     Styles
	theme      string

	// Search / filter state
	searchText     string
	platformFilter model.Platform
	sortMode       model.SortMode

	// Single-line input (login, search, folder and category names)
	input textinput.Model

	// Profile form
	form      []textinput.Model
	formFocus int
	formID    string // profile or category id being edited
	formPlat  model.Platform
	formColor string

	confirm *confirmAction
	message string
}

// Profile form field order.
const (
	fieldUsername = iota
	fieldDisplayName
	fieldNotes
	fieldCount
)

// NewModel creates a new TUI model
func NewModel(kv *db.KV, st *store.Store, gate *auth.Gate, cfg *config.Config) Model {
	logger.Info("Initializing TUI model")

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		kv:       kv,
		st:       st,
		gate:     gate,
		cfg:      cfg,
		pane:     PaneSidebar,
		mode:     ModeNormal,
		sortMode: model.SortNewest,
		input:    ti,
		theme:    "dark",
	}

	if v, ok, err := kv.Get(db.KeyTheme); err == nil && ok && v == "light" {
		m.theme = "light"
	}
	m.applyTheme()

	if !gate.Unlocked() {
		m.mode = ModeLocked
		m.input.Placeholder = "Access code"
		m.input.EchoMode = textinput.EchoPassword
		m.input.Focus()
	}

	m.refresh()
	logger.Debug("TUI model initialized",
		logger.F("folders", len(m.folders)),
		logger.F("profiles", len(m.profiles)))
	return m
}

func (m *Model) applyTheme() {
	if m.theme == "light" {
		m.styles = NewStyles(lightPalette)
	} else {
		m.styles = NewStyles(darkPalette)
	}
}

// refresh rebuilds the derived sidebar rows and the visible profile list
// from the store.
func (m *Model) refresh() {
	m.folders = m.st.Folders()
	m.categories = m.st.Categories()

	rows := []sidebarRow{{kind: rowAll, name: "All Profiles"}}
	for _, group := range view.Tree(m.folders, m.categories, model.SortAZ) {
		rows = append(rows, sidebarRow{kind: rowFolder, id: group.Folder.ID, name: group.Folder.Name})
		for _, root := range group.Roots {
			rows = append(rows, sidebarRow{kind: rowCategory, id: root.ID, name: root.Name, color: root.Color})
			for _, sub := range root.Children {
				rows = append(rows, sidebarRow{kind: rowSub, id: sub.ID, name: sub.Name, color: sub.Color})
			}
		}
	}
	m.rows = rows

	if m.rowCursor >= len(m.rows) {
		m.rowCursor = len(m.rows) - 1
	}
	if m.rowCursor < 0 {
		m.rowCursor = 0
	}

	m.profiles = view.SortProfiles(
		view.FilterProfiles(m.st.Profiles(), m.categories, m.filter()),
		m.categories, m.sortMode)

	if m.profCursor >= len(m.profiles) {
		m.profCursor = len(m.profiles) - 1
	}
	if m.profCursor < 0 {
		m.profCursor = 0
	}
}

// filter derives the view filter from the sidebar selection plus the
// search and platform state.
func (m *Model) filter() view.Filter {
	f := view.Filter{Query: m.searchText, Platform: m.platformFilter}
	row := m.currentRow()
	if row == nil {
		return f
	}
	switch row.kind {
	case rowFolder:
		f.FolderID = row.id
	case rowCategory, rowSub:
		f.CategoryID = row.id
	}
	return f
}

func (m *Model) currentRow() *sidebarRow {
	if m.rowCursor < len(m.rows) {
		return &m.rows[m.rowCursor]
	}
	return nil
}

func (m *Model) currentProfile() *model.Profile {
	if m.profCursor < len(m.profiles) {
		return &m.profiles[m.profCursor]
	}
	return nil
}

// viewTitle names the current scope for the list header and the share
// report.
func (m *Model) viewTitle() string {
	row := m.currentRow()
	if row == nil || row.kind == rowAll {
		return "All Profiles"
	}
	return row.name
}

// selectionCategoryID resolves the category a new profile should default
// to: the selected category or subcategory, if any.
func (m *Model) selectionCategoryID() string {
	row := m.currentRow()
	if row != nil && (row.kind == rowCategory || row.kind == rowSub) {
		return row.id
	}
	return ""
}
