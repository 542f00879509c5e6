package cmd

import (
	"fmt"
	"strings"

	"github.com/hawkins/vecbind/internal/keymap"
	"github.com/hawkins/vecbind/internal/store"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
)

func newFindCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "find QUERY",
		Short: "Fuzzy-search actions and show their keys",
		Long:  `Matches QUERY against the built-in actions and every action the profile binds, best match first.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withKeymap(cmd, func(_ store.Store, km *keymap.Keymap) error {
				actions := searchableActions(km)
				matches := fuzzy.Find(strings.Join(args, " "), actions)
				if len(matches) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no matching actions")
					return nil
				}

				rows := make([][]string, 0, len(matches))
				for _, m := range matches {
					action := keymap.Action(m.Str)
					key := "(unbound)"
					if ks, ok := km.KeyFor(action); ok {
						key = ks.String()
					}
					rows = append(rows, []string{m.Str, key, keymap.Describe(action)})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ACTION", "KEY", "DESCRIPTION"}, rows))
				return nil
			})
		},
	}
}

// searchableActions is the built-in action set plus any custom action km binds
func searchableActions(km *keymap.Keymap) []string {
	seen := make(map[keymap.Action]bool)
	var out []string
	add := func(a keymap.Action) {
		if a == keymap.NoAction || seen[a] {
			return
		}
		seen[a] = true
		out = append(out, string(a))
	}
	for _, a := range keymap.KnownActions() {
		add(a)
	}
	for _, l := range km.Layers() {
		for _, b := range l.Bindings() {
			add(b.Action)
		}
	}
	return out
}
