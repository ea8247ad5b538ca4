package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Cassandrat897/keepy-app/internal/export"
	"github.com/Cassandrat897/keepy-app/internal/logger"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export everything to a JSON backup",
	Long: `Write all folders, categories and profiles to a JSON backup file.
Without an argument the file is named keepy-backup-YYYY-MM-DD.json in
the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	kv, st, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	snap := export.NewSnapshot(st.Folders(), st.Categories(), st.Profiles())
	data, err := snap.Marshal()
	if err != nil {
		return err
	}

	path := export.Filename(time.Now())
	if len(args) == 1 {
		path = args[0]
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	logger.Info("Exported backup", logger.F("path", path),
		logger.F("profiles", len(snap.Profiles)))
	fmt.Printf("✓ Exported %d profiles, %d categories, %d folders to %s\n",
		len(snap.Profiles), len(snap.Categories), len(snap.Folders), path)
	return nil
}
