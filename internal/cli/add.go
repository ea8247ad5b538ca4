package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Cassandrat897/keepy-app/internal/model"
	"github.com/Cassandrat897/keepy-app/internal/store"
)

var addCmd = &cobra.Command{
	Use:   "add [username-or-url]",
	Short: "Add a new profile",
	Long: `Add a profile to a category. Pasting a full profile URL auto-detects
the platform and reduces the input to the bare handle.

Examples:
  keepy add cooluser --category Travel
  keepy add https://instagram.com/cooluser --category Travel
  keepy add example.com --platform website --category Shops --name "Nice shop"`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var (
	addPlatform string
	addCategory string
	addName     string
	addNotes    string
)

func init() {
	addCmd.Flags().StringVarP(&addPlatform, "platform", "p", "instagram", "Platform (instagram, facebook, x, tiktok, website)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category name or id")
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "Display name")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Notes")
}

func runAdd(cmd *cobra.Command, args []string) error {
	kv, st, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	input := args[0]
	platform := model.Platform(addPlatform)
	if !cmd.Flags().Changed("platform") {
		platform = model.DetectPlatform(input, platform)
	}
	if !platform.Valid() {
		return fmt.Errorf("unknown platform: %s", addPlatform)
	}

	category, ok := findCategory(st, addCategory)
	if !ok {
		return fmt.Errorf("category not found: %s", addCategory)
	}

	form := store.ProfileForm{
		Username:    input,
		DisplayName: addName,
		Platform:    platform,
		CategoryID:  category.ID,
		Notes:       addNotes,
	}
	if !st.CanSaveProfile(form) {
		fmt.Println("A username and a category are required.")
		return nil
	}

	p, _ := st.SaveProfile(form)
	fmt.Printf("✓ Added to [%s]: \"%s\" (%s)\n", category.Name, p.Title(), p.Platform.Label())
	return nil
}

// findCategory resolves a category by exact name (case-insensitive) or id
// prefix.
func findCategory(st *store.Store, arg string) (model.Category, bool) {
	if arg == "" {
		return model.Category{}, false
	}
	for _, c := range st.Categories() {
		if strings.EqualFold(c.Name, arg) {
			return c, true
		}
	}
	for _, c := range st.Categories() {
		if strings.HasPrefix(c.ID, arg) {
			return c, true
		}
	}
	return model.Category{}, false
}

// findFolder resolves a folder by exact name (case-insensitive) or id
// prefix.
func findFolder(st *store.Store, arg string) (model.Folder, bool) {
	if arg == "" {
		return model.Folder{}, false
	}
	for _, f := range st.Folders() {
		if strings.EqualFold(f.Name, arg) {
			return f, true
		}
	}
	for _, f := range st.Folders() {
		if strings.HasPrefix(f.ID, arg) {
			return f, true
		}
	}
	return model.Folder{}, false
}
