package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/amonks/devflow/internal/dashboardtui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive dashboard",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("tui requires an interactive terminal")
	}
	s, err := openSession(cmd, openOptions{fileLogOnly: true})
	if err != nil {
		return err
	}
	defer s.close()

	return dashboardtui.Run(cmd.Context(), s.app)
}
