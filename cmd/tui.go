package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hawkins/vecbind/internal/logging"
	"github.com/hawkins/vecbind/internal/ui"
	"github.com/spf13/cobra"
)

// runTUI opens the browser. Logs go to log_file, or nowhere, so they never
// draw over the alt screen.
func (c *cli) runTUI(cmd *cobra.Command) error {
	var logOut io.Writer = io.Discard
	if c.cfg.LogFile != "" {
		f, err := os.OpenFile(c.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logging.SetOutput(logOut)
	defer logging.SetOutput(os.Stderr)

	s, err := c.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	km, err := c.keymap(cmd.Context(), s)
	if err != nil {
		return err
	}

	app, err := ui.New(km, ui.Options{
		Profile:   c.cfg.Profile,
		Store:     s,
		Overrides: c.cfg.Overrides,
	})
	if err != nil {
		return err
	}

	logging.Infof("browsing profile %s", c.cfg.Profile)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
