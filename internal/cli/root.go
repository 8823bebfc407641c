package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/ironproject/internal/config"
	"github.com/existflow/ironproject/internal/draft"
	"github.com/existflow/ironproject/internal/logger"
	"github.com/existflow/ironproject/internal/tui"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	logFile    string
	logConsole bool
	outFormat  string
	outPath    string

	// appConfig is loaded before any command runs
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "ironproject",
	Short: "IronProject - Compose new projects from the terminal",
	Long: `IronProject is a terminal form for composing a project: title, status,
priority, dates, labels and milestones. Submitting the form prints the
project as JSON or YAML.

Run 'ironproject' without arguments to launch the interactive form.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config from file (or defaults if not exists)
		cfg, err := config.Load()
		if err != nil {
			logger.Warn("Failed to load config, using defaults", logger.F("error", err))
			cfg = config.DefaultConfig()
		}

		// Override with CLI flags if provided
		configChanged := false
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
			configChanged = true
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
			configChanged = true
		}
		if cmd.Flags().Changed("log-console") {
			cfg.LogConsole = logConsole
			configChanged = true
		}

		// Save config if changed via CLI flags
		if configChanged {
			if err := cfg.Save(); err != nil {
				logger.Warn("Failed to save config", logger.F("error", err))
			}
		}

		if err := logger.Init(loggerConfig(cfg)); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		appConfig = cfg
		logger.Info("IronProject started", logger.F("command", cmd.Name()))
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		emitter, closeOut, err := newEmitter(cmd)
		if err != nil {
			return err
		}
		defer closeOut()

		logger.Info("Launching project form")
		m := tui.NewModel(newStore(appConfig))
		p := tea.NewProgram(m, tea.WithAltScreen())

		final, err := p.Run()
		if err != nil {
			logger.Error("TUI error", logger.F("error", err))
			return fmt.Errorf("failed to run TUI: %w", err)
		}

		form, ok := final.(tui.Model)
		if !ok {
			return nil
		}
		if project, submitted := form.Submitted(); submitted {
			return emitter.Emit(project)
		}

		if form.Cancelled() {
			logger.Info("Project form closed without submitting")
			fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled, nothing created")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Info("IronProject exiting", logger.F("command", cmd.Name()))
		logger.Close()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loggerConfig applies the user's log settings over the logger defaults
func loggerConfig(cfg *config.Config) logger.Config {
	logConfig := logger.DefaultConfig()
	logConfig.Level = logger.ParseLevel(cfg.LogLevel)
	logConfig.FilePath = cfg.LogFile
	logConfig.Console = cfg.LogConsole
	return logConfig
}

// newStore creates a draft store seeded with the configured label catalog
func newStore(cfg *config.Config) *draft.Store {
	return draft.New(draft.Config{
		Labels:            cfg.Labels,
		DefaultLabelColor: cfg.DefaultLabelColor,
	})
}

func init() {
	// Add logging flags
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", false, "Enable console logging")

	// Output flags
	rootCmd.PersistentFlags().StringVarP(&outFormat, "format", "f", "", "Output format (json, yaml); defaults to the config setting")
	rootCmd.PersistentFlags().StringVarP(&outPath, "out", "o", "", "Write the project to a file instead of stdout")

	// Add subcommands
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(labelsCmd)
}
