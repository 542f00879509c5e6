package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hawkins/vecbind/internal/keymap"
	"github.com/spf13/cobra"
)

func newProfilesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List built-in and stored profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			stored, err := s.List(cmd.Context())
			if err != nil {
				return err
			}

			sources := make(map[string][]string)
			for _, name := range keymap.BuiltinNames() {
				sources[name] = append(sources[name], "built-in")
			}
			for _, name := range stored {
				sources[name] = append(sources[name], "stored")
			}
			names := make([]string, 0, len(sources))
			for name := range sources {
				names = append(names, name)
			}
			sort.Strings(names)

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				active := ""
				if name == c.cfg.Profile {
					active = "*"
				}
				rows = append(rows, []string{active, name, strings.Join(sources[name], ", ")})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"", "PROFILE", "SOURCE"}, rows))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "rm NAME",
		Short: "Delete a stored profile",
		Long:  `Deletes a profile from the store. A deleted built-in profile falls back to its built-in bindings.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	})

	return cmd
}
