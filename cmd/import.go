package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hawkins/vecbind/internal/keymap"
	"github.com/hawkins/vecbind/internal/logging"
	"github.com/hawkins/vecbind/internal/store"
	"github.com/spf13/cobra"
)

func newImportCmd(c *cli) *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Validate a document and save it as a profile",
		Long: `Reads a json, yaml or toml document, rejects it when check reports an
error, and saves it to the profile store. The profile is named after the
file unless --as is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			doc, err := readDocument(path)
			if err != nil {
				return err
			}
			problems := keymap.Check(doc)
			for _, p := range problems {
				if p.Severity == keymap.SeverityError {
					return fmt.Errorf("%s: %s", path, p)
				}
				logging.Warnf("%s: %s", path, p)
			}
			km, err := keymap.FromDocument(doc)
			if err != nil {
				return err
			}

			name := as
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}
			if err := store.ValidateProfile(name); err != nil {
				return err
			}

			s, err := c.openStore()
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.Save(cmd.Context(), name, km); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%d layers)\n", name, len(km.Layers()))
			return nil
		},
	}
	cmd.Flags().StringVar(&as, "as", "", "profile name (default: file name)")

	return cmd
}
