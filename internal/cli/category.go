package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cassandrat897/keepy-app/internal/model"
	"github.com/Cassandrat897/keepy-app/internal/store"
	"github.com/Cassandrat897/keepy-app/internal/view"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
	Long:  `Create, list, edit and delete categories and subcategories.`,
}

var categoryNewCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a category or subcategory",
	Long: `Create a category. A top-level category needs a folder (or --unfiled,
which files it under "General"). A subcategory inherits folder and color
from its parent.

Examples:
  keepy category new "Travel" --folder Life
  keepy category new "Hiking" --parent Travel
  keepy category new "Inbox" --unfiled`,
	Args: cobra.ExactArgs(1),
	RunE: runCategoryNew,
}

var categoryListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the category tree",
	RunE:    runCategoryList,
}

var categoryEditCmd = &cobra.Command{
	Use:   "edit [name-or-id]",
	Short: "Edit a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryEdit,
}

var categoryDeleteCmd = &cobra.Command{
	Use:     "delete [name-or-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a category and its subcategories",
	Args:    cobra.ExactArgs(1),
	RunE:    runCategoryDelete,
}

var (
	categoryColor   string
	categoryParent  string
	categoryFolder  string
	categoryUnfiled bool
	categoryRename  string
)

func init() {
	categoryNewCmd.Flags().StringVarP(&categoryColor, "color", "c", model.PastelColors[0], "Category color (hex)")
	categoryNewCmd.Flags().StringVarP(&categoryParent, "parent", "P", "", "Parent category (makes this a subcategory)")
	categoryNewCmd.Flags().StringVarP(&categoryFolder, "folder", "f", "", "Folder name or id")
	categoryNewCmd.Flags().BoolVar(&categoryUnfiled, "unfiled", false, "Create without a folder")

	categoryEditCmd.Flags().StringVar(&categoryRename, "name", "", "New name")
	categoryEditCmd.Flags().StringVarP(&categoryColor, "color", "c", "", "New color (hex)")
	categoryEditCmd.Flags().StringVarP(&categoryFolder, "folder", "f", "", "Move to folder")

	categoryCmd.AddCommand(categoryNewCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryEditCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
}

func runCategoryNew(cmd *cobra.Command, args []string) error {
	kv, st, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	form := store.CategoryForm{
		Name:    args[0],
		Color:   categoryColor,
		Unfiled: categoryUnfiled,
	}

	if categoryParent != "" {
		parent, ok := findCategory(st, categoryParent)
		if !ok {
			return fmt.Errorf("parent category not found: %s", categoryParent)
		}
		if !parent.IsRoot() {
			return fmt.Errorf("%s is a subcategory and cannot have children", parent.Name)
		}
		form.ParentID = parent.ID
	}
	if categoryFolder != "" {
		folder, ok := findFolder(st, categoryFolder)
		if !ok {
			return fmt.Errorf("folder not found: %s", categoryFolder)
		}
		form.FolderID = folder.ID
	}

	if !st.CanSaveCategory(form) {
		fmt.Println("A top-level category needs a folder: pass --folder, --parent or --unfiled.")
		return nil
	}

	saved, _ := st.SaveCategory(form)
	if saved.ParentID != "" {
		fmt.Printf("✓ Created subcategory: %s (color inherited)\n", saved.Name)
	} else {
		fmt.Printf("✓ Created category: %s\n", saved.Name)
	}
	return nil
}

func runCategoryList(cmd *cobra.Command, args []string) error {
	kv, st, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	tree := view.Tree(st.Folders(), st.Categories(), model.SortAZ)
	if len(tree) == 0 {
		fmt.Println("No categories found. Add one with: keepy category new <name> --folder <folder>")
		return nil
	}

	fmt.Println()
	for _, group := range tree {
		fmt.Printf("📁 %s\n", group.Folder.Name)
		for _, root := range group.Roots {
			fmt.Printf("   %s %s  (%s)\n", "●", root.Name, shortID(root.ID))
			for _, sub := range root.Children {
				fmt.Printf("     · %s  (%s)\n", sub.Name, shortID(sub.ID))
			}
		}
	}
	fmt.Println()
	return nil
}

func runCategoryEdit(cmd *cobra.Command, args []string) error {
	kv, st, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	category, ok := findCategory(st, args[0])
	if !ok {
		return fmt.Errorf("category not found: %s", args[0])
	}

	form := store.CategoryForm{
		ID:       category.ID,
		Name:     category.Name,
		Color:    category.Color,
		ParentID: category.ParentID,
		FolderID: category.FolderID,
	}
	if categoryRename != "" {
		form.Name = categoryRename
	}
	if cmd.Flags().Changed("color") {
		form.Color = categoryColor
	}
	if categoryFolder != "" {
		folder, ok := findFolder(st, categoryFolder)
		if !ok {
			return fmt.Errorf("folder not found: %s", categoryFolder)
		}
		form.FolderID = folder.ID
	}

	saved, ok := st.SaveCategory(form)
	if !ok {
		fmt.Println("Nothing saved: the category needs a name and a folder.")
		return nil
	}
	fmt.Printf("✓ Updated category: %s\n", saved.Name)
	return nil
}

func runCategoryDelete(cmd *cobra.Command, args []string) error {
	kv, st, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	category, ok := findCategory(st, args[0])
	if !ok {
		return fmt.Errorf("category not found: %s", args[0])
	}

	message := fmt.Sprintf("Delete category %q? Profiles will be uncategorized. [y/N]: ", category.Name)
	if st.CategoryHasChildren(category.ID) {
		message = fmt.Sprintf("Delete category %q and all its subcategories? Profiles will be uncategorized. [y/N]: ", category.Name)
	}
	if !confirm(message) {
		fmt.Println("Cancelled.")
		return nil
	}

	removed := st.DeleteCategory(category.ID)
	fmt.Printf("🗑️  Deleted %d categor%s\n", len(removed), pluralY(len(removed)))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
