package cmd

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/charchat/internal/app"
	"github.com/zhubert/charchat/internal/catalog"
	"github.com/zhubert/charchat/internal/config"
	"github.com/zhubert/charchat/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	themeFlag             string
	catalogPath           string
	userFlag              string
	logFilePath           string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "charchat",
	Short: "Character feed and chat in your terminal",
	Long: `charchat pages through a catalog of characters and opens a one-to-one
chat with one of them. Messages can be copied, edited and deleted from a
context menu (right click or hold the mouse on a bubble).`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&logFilePath, "log-file", logger.DefaultLogPath, "Write the debug log to this file")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Load characters and chat history from a YAML file")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "Theme for this run (midnight, nord, dracula, light)")
	rootCmd.Flags().StringVar(&userFlag, "user", "", "Your name in character greetings for this run")
}

func initConfig() {
	if err := logger.Init(logFilePath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if quietMode {
		logger.SetLevel(logger.LevelInfo)
	} else if debugMode {
		logger.SetLevel(logger.LevelDebug)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("charchat %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("charchat %s\n", version)
}

// loadCatalog returns the --catalog file, or the built-in catalog.
func loadCatalog() (*catalog.Catalog, error) {
	if catalogPath != "" {
		return catalog.LoadFile(catalogPath)
	}
	return catalog.Default()
}

// applyOverrides applies the one-run flags on top of the loaded config.
func applyOverrides(cfg *config.Config) error {
	if themeFlag != "" {
		if !config.IsValidTheme(themeFlag) {
			return fmt.Errorf("unknown theme %q (valid: %v)", themeFlag, config.ValidThemes)
		}
		cfg.SetTheme(themeFlag)
	}
	if userFlag != "" {
		cfg.SetUserName(userFlag)
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := applyOverrides(cfg); err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("error loading catalog: %w", err)
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	logger.Info("charchat %s starting with %d characters", version, len(cat.Characters))

	m := app.New(cfg, cat, version)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		logger.Error("program exited: %v", err)
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
