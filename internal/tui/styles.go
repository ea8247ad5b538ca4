package tui

import "github.com/charmbracelet/lipgloss"

// Palette holds the theme colors. Two fixed palettes exist; the active
// one is persisted with the data so the choice survives restarts.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Surface   lipgloss.Color
	Text      lipgloss.Color
	TextMuted lipgloss.Color
	Border    lipgloss.Color
	Danger    lipgloss.Color
	Success   lipgloss.Color
}

var darkPalette = Palette{
	Primary:   lipgloss.Color("#4ECDC4"),
	Secondary: lipgloss.Color("#6C757D"),
	Surface:   lipgloss.Color("#16213e"),
	Text:      lipgloss.Color("#FFFFFF"),
	TextMuted: lipgloss.Color("#888888"),
	Border:    lipgloss.Color("#333333"),
	Danger:    lipgloss.Color("#FF6B6B"),
	Success:   lipgloss.Color("#95E1A3"),
}

var lightPalette = Palette{
	Primary:   lipgloss.Color("#0F766E"),
	Secondary: lipgloss.Color("#6C757D"),
	Surface:   lipgloss.Color("#E2E8F0"),
	Text:      lipgloss.Color("#1A202C"),
	TextMuted: lipgloss.Color("#718096"),
	Border:    lipgloss.Color("#CBD5E0"),
	Danger:    lipgloss.Color("#C53030"),
	Success:   lipgloss.Color("#2F855A"),
}

// Styles bundles every lipgloss style the view needs, built from the
// active palette.
type Styles struct {
	Header       lipgloss.Style
	Sidebar      lipgloss.Style
	List         lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	FolderHeader lipgloss.Style
	StatusBar    lipgloss.Style
	Modal        lipgloss.Style
	Help         lipgloss.Style
	Divider      lipgloss.Style
	Danger       lipgloss.Style
	Success      lipgloss.Style
}

// NewStyles builds the style set for a palette.
func NewStyles(p Palette) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Padding(0, 1),
		Sidebar: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(p.Border).
			Padding(1, 1),
		List: lipgloss.NewStyle().
			Padding(1, 2),
		Item: lipgloss.NewStyle().
			Padding(0, 1),
		ItemSelected: lipgloss.NewStyle().
			Padding(0, 1).
			Background(p.Surface).
			Bold(true),
		FolderHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),
		StatusBar: lipgloss.NewStyle().
			Foreground(p.TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.Border),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(1, 2),
		Help: lipgloss.NewStyle().
			Foreground(p.TextMuted),
		Divider: lipgloss.NewStyle().
			Foreground(p.Border),
		Danger: lipgloss.NewStyle().
			Foreground(p.Danger).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(p.Success),
	}
}

// colorDot renders the category color swatch.
func colorDot(hex string) string {
	if hex == "" {
		return "●"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●")
}
