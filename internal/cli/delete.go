package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Cassandrat897/keepy-app/internal/config"
	"github.com/Cassandrat897/keepy-app/internal/model"
	"github.com/Cassandrat897/keepy-app/internal/store"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [profile-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a profile",
	Long: `Delete a profile by its id (a unique prefix is enough).

Examples:
  keepy delete 3f2a91
  keepy rm 3f2a91`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	kv, st, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	profile, ok := findProfile(st, args[0])
	if !ok {
		return fmt.Errorf("profile not found: %s", args[0])
	}

	// Check config
	cfg, _ := config.Load() // Ignore error, use defaults
	if cfg.ConfirmDelete {
		fmt.Printf("About to delete: \"%s\" (ID: %s)\n", profile.Title(), profile.ID)
		if !confirm("Are you sure? [y/N]: ") {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	st.DeleteProfile(profile.ID)
	fmt.Printf("🗑️  Deleted: \"%s\"\n", profile.Title())
	return nil
}

// findProfile resolves a profile by id prefix or exact username.
func findProfile(st *store.Store, arg string) (model.Profile, bool) {
	for _, p := range st.Profiles() {
		if strings.HasPrefix(p.ID, arg) {
			return p, true
		}
	}
	for _, p := range st.Profiles() {
		if strings.EqualFold(p.Username, arg) {
			return p, true
		}
	}
	return model.Profile{}, false
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	var response string
	_, _ = fmt.Scanln(&response)
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
