package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Cassandrat897/keepy-app/internal/auth"
	"github.com/Cassandrat897/keepy-app/internal/config"
	"github.com/Cassandrat897/keepy-app/internal/db"
	"github.com/Cassandrat897/keepy-app/internal/logger"
	"github.com/Cassandrat897/keepy-app/internal/store"
	"github.com/Cassandrat897/keepy-app/internal/tui"
)

var (
	logLevel   string
	logFile    string
	logConsole bool
)

var rootCmd = &cobra.Command{
	Use:   "keepy",
	Short: "Keepy - organize your saved profiles and links",
	Long: `Keepy is a terminal organizer for social-media profiles and website
links. Profiles live in a folder → category → subcategory hierarchy and
everything stays on this machine.

Run 'keepy' without arguments to launch the interactive TUI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config from file (or defaults if not exists)
		cfg, err := config.Load()
		if err != nil {
			cfg = config.DefaultConfig()
		}

		// Override with CLI flags if provided
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}
		if cmd.Flags().Changed("log-console") {
			cfg.LogConsole = logConsole
		}

		logConfig := logger.Config{
			Level:      logger.ParseLevel(cfg.LogLevel),
			FilePath:   cfg.LogFile,
			MaxSize:    10 * 1024 * 1024, // 10MB
			MaxAge:     7,
			MaxBackups: 5,
			Console:    cfg.LogConsole,
		}

		if err := logger.Init(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger.Info("Keepy started", logger.F("command", cmd.Name()))
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		kv, st, err := openStore()
		if err != nil {
			logger.Error("Failed to open store", logger.F("error", err))
			return err
		}
		defer func() {
			_ = kv.Close()
			logger.Info("Database closed")
		}()

		cfg, err := config.Load()
		if err != nil {
			cfg = config.DefaultConfig()
		}
		gate := auth.NewGate(kv, cfg.AccessCode)

		logger.Info("Launching TUI")
		m := tui.NewModel(kv, st, gate, cfg)
		p := tea.NewProgram(m, tea.WithAltScreen())

		if _, err := p.Run(); err != nil {
			logger.Error("TUI error", logger.F("error", err))
			return fmt.Errorf("failed to run TUI: %w", err)
		}

		logger.Info("TUI exited normally")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Info("Keepy exiting", logger.F("command", cmd.Name()))
		logger.Close()
	},
}

// openStore opens the KV database and loads the entity store.
func openStore() (*db.KV, *store.Store, error) {
	kv, err := db.OpenDefault()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	st, err := store.Open(kv)
	if err != nil {
		_ = kv.Close()
		return nil, nil, fmt.Errorf("failed to load data: %w", err)
	}
	return kv, st, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add logging flags
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", false, "Enable console logging")

	// Add subcommands
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(folderCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(unlockCmd)
	rootCmd.AddCommand(lockCmd)
	rootCmd.AddCommand(clearCmd)
}
