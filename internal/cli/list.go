package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Cassandrat897/keepy-app/internal/export"
	"github.com/Cassandrat897/keepy-app/internal/model"
	"github.com/Cassandrat897/keepy-app/internal/store"
	"github.com/Cassandrat897/keepy-app/internal/view"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List profiles",
	Long: `List profiles, optionally narrowed by folder, category, platform or a
search query.

Examples:
  keepy list
  keepy list --category Travel
  keepy list --folder Life --platform instagram
  keepy list --search hiking --sort a-z`,
	RunE: runList,
}

var (
	listFolder   string
	listCategory string
	listPlatform string
	listSearch   string
	listSort     string
)

func init() {
	listCmd.Flags().StringVarP(&listFolder, "folder", "f", "", "Filter by folder name or id")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category name or id")
	listCmd.Flags().StringVarP(&listPlatform, "platform", "p", "", "Filter by platform")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Search username, display name and notes")
	listCmd.Flags().StringVar(&listSort, "sort", "newest", "Sort mode (a-z, z-a, newest, oldest, color)")
}

func runList(cmd *cobra.Command, args []string) error {
	kv, st, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	filter, title, err := buildFilter(st)
	if err != nil {
		return err
	}

	categories := st.Categories()
	profiles := view.FilterProfiles(st.Profiles(), categories, filter)
	profiles = view.SortProfiles(profiles, categories, model.SortMode(listSort))

	if len(profiles) == 0 {
		fmt.Println("No profiles found. Add one with: keepy add <username> --category <name>")
		return nil
	}

	fmt.Printf("\n📂 %s (%d)\n", title, len(profiles))
	fmt.Println(strings.Repeat("─", 72))
	for _, p := range profiles {
		printProfile(st, p)
	}
	fmt.Println()
	return nil
}

// buildFilter turns the list/share flags into a view filter plus a title
// for the output header.
func buildFilter(st *store.Store) (view.Filter, string, error) {
	filter := view.Filter{Query: listSearch}
	title := "All Profiles"

	if listCategory != "" {
		category, ok := findCategory(st, listCategory)
		if !ok {
			return view.Filter{}, "", fmt.Errorf("category not found: %s", listCategory)
		}
		filter.CategoryID = category.ID
		title = category.Name
	} else if listFolder != "" {
		folder, ok := findFolder(st, listFolder)
		if !ok {
			return view.Filter{}, "", fmt.Errorf("folder not found: %s", listFolder)
		}
		filter.FolderID = folder.ID
		title = folder.Name
	}

	if listPlatform != "" {
		platform := model.Platform(listPlatform)
		if !platform.Valid() {
			return view.Filter{}, "", fmt.Errorf("unknown platform: %s", listPlatform)
		}
		filter.Platform = platform
	}

	return filter, title, nil
}

func printProfile(st *store.Store, p model.Profile) {
	categoryName := "Uncategorized"
	if c, ok := st.Category(p.CategoryID); ok {
		categoryName = c.Name
	}

	shortID := p.ID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	added := time.UnixMilli(p.CreatedAt).Format("Jan 2 2006")
	name := p.Title()
	if len(name) > 28 {
		name = name[:25] + "..."
	}

	fmt.Printf("  %-8s  [%-9s]  %-28s  %-16s  %s\n",
		shortID, p.Platform.Label(), name, categoryName, added)
	fmt.Printf("            %s\n", export.ProfileLink(p))
}
