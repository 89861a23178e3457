// Package cmd contains the mosaic command line interface.
package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/mosaicterm/mosaic/internal/app"
	"github.com/mosaicterm/mosaic/internal/config"
	"github.com/mosaicterm/mosaic/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "mosaic",
	Short: "Tiling panel workspace for multi-session chat assistants",
	Long: `Mosaic is a TUI workspace that arranges chat sessions and supporting
panels in a tiling layout. Panels can be split, tabbed, reordered by
drag, pinned to the header bar, and the arrangement persists between
runs.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("mosaic %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("mosaic %s\n", version)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if cfg.GetDebug() {
		logger.SetDebug(true)
	}

	defer logger.Close()

	m, err := app.New(cfg, version)
	if err != nil {
		return fmt.Errorf("error creating app: %w", err)
	}
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
