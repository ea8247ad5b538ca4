package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cassandrat897/keepy-app/internal/logger"
	"github.com/Cassandrat897/keepy-app/internal/model"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete ALL folders, categories and profiles",
	Long: `Wipe every folder, category and profile. The access state and theme
are kept. Consider 'keepy export' first.`,
	RunE: runClear,
}

func runClear(cmd *cobra.Command, args []string) error {
	kv, st, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	n := len(st.Profiles())
	if !confirm(fmt.Sprintf("Delete ALL data (%d profiles)? This cannot be undone. [y/N]: ", n)) {
		fmt.Println("Cancelled.")
		return nil
	}

	st.ReplaceAll([]model.Folder{}, []model.Category{}, []model.Profile{})
	logger.Info("All data cleared")
	fmt.Println("🗑️  All data deleted.")
	return nil
}
