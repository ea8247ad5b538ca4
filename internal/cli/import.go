package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Cassandrat897/keepy-app/internal/export"
	"github.com/Cassandrat897/keepy-app/internal/logger"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a JSON backup, replacing all current data",
	Long: `Load a backup file written by 'keepy export'. The import replaces
everything: current folders, categories and profiles are overwritten.
An invalid file leaves the current data untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}

	snap, err := export.ParseSnapshot(data)
	if err != nil {
		if errors.Is(err, export.ErrInvalidSnapshot) {
			fmt.Println("Invalid backup file. Nothing was imported.")
			return nil
		}
		return err
	}

	kv, st, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	if !confirm(fmt.Sprintf("Import %d profiles, %d categories, %d folders? This replaces ALL current data. [y/N]: ",
		len(snap.Profiles), len(snap.Categories), len(snap.Folders))) {
		fmt.Println("Cancelled.")
		return nil
	}

	st.ReplaceAll(snap.Folders, snap.Categories, snap.Profiles)
	logger.Info("Imported backup", logger.F("path", args[0]),
		logger.F("profiles", len(snap.Profiles)))
	fmt.Println("✓ Import complete.")
	return nil
}
