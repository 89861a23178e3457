package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mosaicterm/mosaic/internal/config"
	"github.com/mosaicterm/mosaic/internal/logger"
)

var skipConfirm bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove the saved layout, focus history, and log files",
	Long: `Deletes the persisted workspace layout and focus history so the next
run starts from the default arrangement. Log files are removed as well.

Prompts for confirmation unless the --yes flag is used.`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	return runResetWithReader(os.Stdin)
}

// runResetWithReader allows injecting a reader for testing
func runResetWithReader(input io.Reader) error {
	if !skipConfirm {
		fmt.Print("Remove saved layout, focus history, and logs? [y/N] ")
		reader := bufio.NewReader(input)
		answer, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("error reading confirmation: %w", err)
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	store, err := config.NewLayoutStore()
	if err != nil {
		return fmt.Errorf("error opening layout store: %w", err)
	}
	if err := store.Reset(); err != nil {
		return fmt.Errorf("error removing saved layout: %w", err)
	}
	fmt.Println("Saved layout removed.")

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}
	if logsCleared > 0 {
		fmt.Printf("Removed %d log file(s).\n", logsCleared)
	}
	return nil
}
