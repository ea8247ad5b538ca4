package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Cassandrat897/keepy-app/internal/export"
	"github.com/Cassandrat897/keepy-app/internal/model"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.mode == ModeLocked {
		return m.renderLocked()
	}

	sidebar := m.renderSidebar()
	profileList := m.renderProfileList()
	statusBar := m.renderStatusBar()

	mainContent := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, profileList)

	switch m.mode {
	case ModeAddProfile, ModeEditProfile:
		mainContent = m.placeModal(m.renderProfileModal())
	case ModeAddCategory, ModeAddSub, ModeEditCategory:
		mainContent = m.placeModal(m.renderCategoryModal())
	case ModeAddFolder, ModeRenameFolder:
		mainContent = m.placeModal(m.renderFolderModal())
	case ModeConfirm:
		mainContent = m.placeModal(m.renderConfirmModal())
	case ModeHelp:
		mainContent = m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left, mainContent, statusBar)
}

func (m Model) placeModal(modal string) string {
	return lipgloss.Place(
		m.width, m.height-2,
		lipgloss.Center, lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
	)
}

func (m Model) renderLocked() string {
	content := m.styles.Header.Render("🔒 Keepy") + "\n\n"
	content += "Enter the access code to continue.\n\n"
	content += m.input.View() + "\n\n"
	if m.message == "Wrong code" {
		content += m.styles.Danger.Render(m.message) + "\n\n"
	}
	content += m.styles.Help.Render("Enter:unlock  Ctrl+C:quit")

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		m.styles.Modal.Render(content),
	)
}

func (m Model) renderSidebar() string {
	sidebarWidth := 26
	var s string

	s += m.styles.Header.Render("Keepy") + "\n"
	s += m.styles.Divider.Render("─────────────────────") + "\n\n"

	for i, row := range m.rows {
		cursor := "  "
		style := m.styles.Item
		if i == m.rowCursor {
			cursor = "❯ "
			if m.pane == PaneSidebar {
				style = m.styles.ItemSelected
			}
		}

		var line string
		switch row.kind {
		case rowAll:
			line = cursor + "★ " + row.name
		case rowFolder:
			line = cursor + "📁 " + truncate(row.name, 18)
			style = style.Inherit(m.styles.FolderHeader)
		case rowCategory:
			line = cursor + "  " + colorDot(row.color) + " " + truncate(row.name, 16)
		case rowSub:
			line = cursor + "    · " + truncate(row.name, 14)
		}
		s += style.Render(line) + "\n"
	}

	s += "\n" + m.styles.Divider.Render("─────────────────────") + "\n"
	s += m.styles.Help.Render("f folder  c category")

	return m.styles.Sidebar.Width(sidebarWidth).Height(m.height - 2).Render(s)
}

func (m Model) renderProfileList() string {
	width := m.width - 28
	var s string

	header := fmt.Sprintf("%s (%d)", m.viewTitle(), len(m.profiles))
	if m.platformFilter != "" {
		header += "  [" + m.platformFilter.Label() + "]"
	}
	if m.sortMode != model.SortNewest {
		header += "  sort:" + string(m.sortMode)
	}
	s += m.styles.Header.Render(header) + "\n"
	s += m.styles.Divider.Render(strings.Repeat("─", max(width-4, 0))) + "\n\n"

	if len(m.profiles) == 0 {
		s += m.styles.Help.Render("  No profiles. Press 'a' to add one.")
	}

	for i, p := range m.profiles {
		cursor := "  "
		style := m.styles.Item
		if i == m.profCursor && m.pane == PaneProfiles {
			cursor = "❯ "
			style = m.styles.ItemSelected
		}

		categoryName := "Uncategorized"
		dot := colorDot("")
		if c, ok := m.st.Category(p.CategoryID); ok {
			categoryName = c.Name
			dot = colorDot(c.Color)
		}

		added := time.UnixMilli(p.CreatedAt).Format("Jan 2")
		line := fmt.Sprintf("%s%s [%s] %-24s %-14s %s",
			cursor, dot, p.Platform.Label(), truncate(p.Title(), 24),
			truncate(categoryName, 14), added)
		s += style.Render(line) + "\n"

		if i == m.profCursor && m.pane == PaneProfiles {
			s += m.styles.Help.Render("      "+export.ProfileLink(p)) + "\n"
			if p.Notes != "" {
				s += m.styles.Help.Render("      "+truncate(p.Notes, width-10)) + "\n"
			}
		}
	}

	return m.styles.List.Width(width).Height(m.height - 2).Render(s)
}

func (m Model) renderStatusBar() string {
	if m.mode == ModeSearch {
		return m.styles.StatusBar.Width(m.width).Render(
			fmt.Sprintf("/%s  [%d matches]  Enter:keep  Esc:clear", m.input.View(), len(m.profiles)))
	}

	help := "a:add  e:edit  d:del  /:search  p:platform  o:sort  S:share  t:theme  ?:help  q:quit"
	if m.searchText != "" {
		help = fmt.Sprintf("/%s  [%d matches]  Esc:clear", m.searchText, len(m.profiles))
	} else if m.message != "" {
		help = m.message
	}
	return m.styles.StatusBar.Width(m.width).Render(help)
}

func (m Model) renderProfileModal() string {
	title := "Add Profile"
	if m.mode == ModeEditProfile {
		title = "Edit Profile"
	} else if id := m.selectionCategoryID(); id != "" {
		if c, ok := m.st.Category(id); ok {
			title = "Add Profile to: " + c.Name
		}
	}

	labels := [fieldCount]string{"Username", "Name", "Notes"}
	content := lipgloss.NewStyle().Bold(true).Render(title) + "\n\n"
	for i, ti := range m.form {
		marker := "  "
		if i == m.formFocus {
			marker = "❯ "
		}
		content += fmt.Sprintf("%s%-9s %s\n", marker, labels[i], ti.View())
	}
	content += fmt.Sprintf("\n  Platform: %s\n\n", m.formPlat.Label())
	content += m.styles.Help.Render("Tab:next field  Ctrl+P:platform  Enter:save  Esc:cancel")
	return m.styles.Modal.Render(content)
}

func (m Model) renderCategoryModal() string {
	title := "New Category"
	switch m.mode {
	case ModeAddSub:
		if parent, ok := m.st.Category(m.formID); ok {
			title = "New Subcategory in: " + parent.Name
		} else {
			title = "New Subcategory"
		}
	case ModeEditCategory:
		title = "Edit Category"
	}

	content := lipgloss.NewStyle().Bold(true).Render(title) + "\n\n"
	content += m.input.View() + "\n\n"
	if m.mode == ModeAddSub {
		content += m.styles.Help.Render("Color is inherited from the parent") + "\n\n"
		content += m.styles.Help.Render("Enter:save  Esc:cancel")
	} else {
		content += "Color: " + colorDot(m.formColor) + " " + m.formColor + "\n\n"
		content += m.styles.Help.Render("Ctrl+P:color  Enter:save  Esc:cancel")
	}
	return m.styles.Modal.Render(content)
}

func (m Model) renderFolderModal() string {
	title := "New Folder"
	if m.mode == ModeRenameFolder {
		title = "Rename Folder"
	}
	content := lipgloss.NewStyle().Bold(true).Render(title) + "\n\n"
	content += m.input.View() + "\n\n"
	content += m.styles.Help.Render("Enter:save  Esc:cancel")
	return m.styles.Modal.Render(content)
}

func (m Model) renderConfirmModal() string {
	if m.confirm == nil {
		return ""
	}
	content := m.styles.Danger.Render("⚠ Confirm") + "\n\n"
	content += m.confirm.prompt + "\n\n"
	content += m.styles.Help.Render("y:confirm  any other key:cancel")
	return m.styles.Modal.Render(content)
}

func (m Model) renderHelp() string {
	help := `
╭──── Keyboard Shortcuts ────╮
│                            │
│  Navigation                │
│  ──────────                │
│  j/↓     Move down         │
│  k/↑     Move up           │
│  h/l/Tab Switch pane       │
│                            │
│  Actions                   │
│  ───────                   │
│  a       Add profile       │
│  e       Edit              │
│  d       Delete            │
│  c       New category      │
│  C       New subcategory   │
│  f       New folder        │
│                            │
│  View                      │
│  ────                      │
│  /       Search            │
│  p       Platform filter   │
│  o       Cycle sort        │
│  t       Toggle theme      │
│  S       Share view        │
│                            │
│  Other                     │
│  ─────                     │
│  L       Lock              │
│  ?       Toggle help       │
│  q       Quit              │
│                            │
╰────────────────────────────╯

      Press any key to close
`
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, help)
}
