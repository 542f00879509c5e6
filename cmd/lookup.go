package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/hawkins/vecbind/internal/keymap"
	"github.com/hawkins/vecbind/internal/logging"
	"github.com/hawkins/vecbind/internal/store"
	"github.com/spf13/cobra"
)

func newLookupCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup KEYSTROKE...",
		Short: "Print the action bound to each keystroke",
		Long: `Resolves keystrokes such as "a", "ctrl+z" or "C-z" through the active
profile. Keys without a binding print (unbound); that is not an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withKeymap(cmd, func(_ store.Store, km *keymap.Keymap) error {
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, arg := range args {
					action, ok := km.ResolveString(arg)
					if !ok {
						logging.Debugf("lookup: %q unbound", arg)
						fmt.Fprintf(w, "%s\t(unbound)\n", arg)
						continue
					}
					fmt.Fprintf(w, "%s\t%s\n", arg, action)
				}
				return w.Flush()
			})
		},
	}
}

func newKeyForCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "keyfor ACTION...",
		Short: "Print the keystroke bound to each action",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withKeymap(cmd, func(_ store.Store, km *keymap.Keymap) error {
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, arg := range args {
					action := keymap.Action(arg)
					if !keymap.IsKnown(action) {
						logging.Warnf("%q is not a built-in action", arg)
					}
					ks, ok := km.KeyFor(action)
					if !ok {
						fmt.Fprintf(w, "%s\t(none)\n", arg)
						continue
					}
					fmt.Fprintf(w, "%s\t%s\n", arg, ks)
				}
				return w.Flush()
			})
		},
	}
}
