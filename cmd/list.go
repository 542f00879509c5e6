package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/hawkins/vecbind/internal/keymap"
	"github.com/hawkins/vecbind/internal/store"
	"github.com/hawkins/vecbind/internal/styles"
	"github.com/spf13/cobra"
)

func newListCmd(c *cli) *cobra.Command {
	var layerName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the bindings of the active profile",
		Long:  `Lists every binding layer by layer, keys in keyboard order. Reserved keys show as (unassigned).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withKeymap(cmd, func(_ store.Store, km *keymap.Keymap) error {
				layers := km.Layers()
				if layerName != "" {
					l, ok := km.Layer(layerName)
					if !ok {
						return fmt.Errorf("%w: %s", keymap.ErrUnknownLayer, layerName)
					}
					layers = []*keymap.Layer{l}
				}

				var rows [][]string
				for _, l := range layers {
					for _, b := range l.Bindings() {
						ks := keymap.Keystroke{Mod: l.Modifier(), Key: b.Key}
						rows = append(rows, []string{l.Name(), ks.String(), b.Action.String(), keymap.Describe(b.Action)})
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"LAYER", "KEY", "ACTION", "DESCRIPTION"}, rows))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&layerName, "layer", "l", "", "only list this layer")

	return cmd
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.TableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeaderStyle
			}
			return styles.TableCellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	return t.Render()
}
