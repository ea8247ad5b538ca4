package cli

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Cassandrat897/keepy-app/internal/auth"
	"github.com/Cassandrat897/keepy-app/internal/config"
	"github.com/Cassandrat897/keepy-app/internal/logger"
)

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Unlock access with the access code",
	Long: `Prompt for the access code and unlock the app. The unlocked state
persists until 'keepy lock' is run.`,
	RunE: runUnlock,
}

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Lock access again",
	RunE:  runLock,
}

func runUnlock(cmd *cobra.Command, args []string) error {
	kv, _, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	gate := auth.NewGate(kv, cfg.AccessCode)

	if gate.Unlocked() {
		fmt.Println("Already unlocked.")
		return nil
	}

	fmt.Print("Access code: ")
	code, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read access code: %w", err)
	}

	if !gate.Unlock(string(code)) {
		logger.Warn("Unlock attempt failed")
		fmt.Println("Wrong code.")
		return nil
	}
	fmt.Println("✓ Unlocked.")
	return nil
}

func runLock(cmd *cobra.Command, args []string) error {
	kv, _, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	auth.NewGate(kv, cfg.AccessCode).Lock()
	fmt.Println("🔒 Locked.")
	return nil
}
