package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var folderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Manage folders",
	Long:  `Create, list, rename and delete the folders that group categories.`,
}

var folderNewCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a new folder",
	Args:  cobra.ExactArgs(1),
	RunE:  runFolderNew,
}

var folderListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all folders",
	RunE:    runFolderList,
}

var folderRenameCmd = &cobra.Command{
	Use:   "rename [name-or-id] [new-name]",
	Short: "Rename a folder",
	Args:  cobra.ExactArgs(2),
	RunE:  runFolderRename,
}

var folderDeleteCmd = &cobra.Command{
	Use:     "delete [name-or-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a folder (its categories become unfiled)",
	Args:    cobra.ExactArgs(1),
	RunE:    runFolderDelete,
}

func init() {
	folderCmd.AddCommand(folderNewCmd)
	folderCmd.AddCommand(folderListCmd)
	folderCmd.AddCommand(folderRenameCmd)
	folderCmd.AddCommand(folderDeleteCmd)
}

func runFolderNew(cmd *cobra.Command, args []string) error {
	kv, st, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	f, ok := st.CreateFolder(args[0])
	if !ok {
		fmt.Println("A folder needs a name.")
		return nil
	}
	fmt.Printf("✓ Created folder: %s (id: %s)\n", f.Name, shortID(f.ID))
	return nil
}

func runFolderList(cmd *cobra.Command, args []string) error {
	kv, st, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	folders := st.Folders()
	if len(folders) == 0 {
		fmt.Println("No folders found.")
		return nil
	}

	categories := st.Categories()
	fmt.Println()
	for _, f := range folders {
		count := 0
		for _, c := range categories {
			if c.FolderID == f.ID {
				count++
			}
		}
		fmt.Printf("  %-8s  %-20s  %d categories\n", shortID(f.ID), f.Name, count)
	}
	fmt.Println()
	return nil
}

func runFolderRename(cmd *cobra.Command, args []string) error {
	kv, st, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	folder, ok := findFolder(st, args[0])
	if !ok {
		return fmt.Errorf("folder not found: %s", args[0])
	}
	if !st.RenameFolder(folder.ID, args[1]) {
		fmt.Println("A folder needs a name.")
		return nil
	}
	fmt.Printf("✓ Renamed folder to: %s\n", args[1])
	return nil
}

func runFolderDelete(cmd *cobra.Command, args []string) error {
	kv, st, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	folder, ok := findFolder(st, args[0])
	if !ok {
		return fmt.Errorf("folder not found: %s", args[0])
	}

	if !confirm(fmt.Sprintf("Delete folder %q? Its categories will become unfiled. [y/N]: ", folder.Name)) {
		fmt.Println("Cancelled.")
		return nil
	}

	st.DeleteFolder(folder.ID)
	fmt.Printf("🗑️  Deleted folder: %s\n", folder.Name)
	return nil
}
