package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cassandrat897/keepy-app/internal/config"
	"github.com/Cassandrat897/keepy-app/internal/export"
	"github.com/Cassandrat897/keepy-app/internal/model"
	"github.com/Cassandrat897/keepy-app/internal/share"
	"github.com/Cassandrat897/keepy-app/internal/view"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Share the current view as a text report",
	Long: `Build a grouped text report of the profiles matching the given filters
and hand it to the configured share command, or copy it to the
clipboard. Pass --print to write the report to stdout instead.

Examples:
  keepy share
  keepy share --category Travel
  keepy share --folder Life --print`,
	RunE: runShare,
}

var sharePrint bool

func init() {
	shareCmd.Flags().StringVarP(&listFolder, "folder", "f", "", "Filter by folder name or id")
	shareCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category name or id")
	shareCmd.Flags().StringVarP(&listPlatform, "platform", "p", "", "Filter by platform")
	shareCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Search username, display name and notes")
	shareCmd.Flags().BoolVar(&sharePrint, "print", false, "Print the report instead of sharing")
}

func runShare(cmd *cobra.Command, args []string) error {
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
	profiles = view.SortProfiles(profiles, categories, model.SortAZ)
	if len(profiles) == 0 {
		fmt.Println("Nothing to share: no profiles match.")
		return nil
	}

	report := export.Report(title, profiles, st.Folders(), categories)
	if sharePrint {
		fmt.Print(report)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	where, err := share.Sharer{Command: cfg.ShareCommand}.Share(report)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Report with %d profiles %s\n", len(profiles), where)
	return nil
}
