package cmd

import (
	"fmt"
	"os"

	"github.com/hawkins/vecbind/internal/codec"
	"github.com/hawkins/vecbind/internal/keymap"
	"github.com/hawkins/vecbind/internal/store"
	"github.com/hawkins/vecbind/internal/styles"
	"github.com/spf13/cobra"
)

func newCheckCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "check [FILE]",
		Short: "Lint a keymap document",
		Long: `Reports every problem in a keymap document: duplicate keys or actions in a
layer, invalid keys, unknown modifiers and unknown actions. Without FILE the
active profile is checked. Exits non-zero when an error is found; warnings
alone pass.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				doc  keymap.Document
				name string
			)
			if len(args) == 1 {
				name = args[0]
				var err error
				if doc, err = readDocument(name); err != nil {
					return err
				}
			} else {
				name = c.cfg.Profile
				err := c.withKeymap(cmd, func(_ store.Store, km *keymap.Keymap) error {
					doc = km.Document()
					return nil
				})
				if err != nil {
					return err
				}
			}

			problems := keymap.Check(doc)
			out := cmd.OutOrStdout()
			for _, p := range problems {
				style := styles.ProblemWarningStyle
				if p.Severity == keymap.SeverityError {
					style = styles.ProblemErrorStyle
				}
				fmt.Fprintln(out, style.Render(p.String()))
			}
			if problems.HasErrors() {
				return fmt.Errorf("%s: %d problems found", name, len(problems))
			}
			fmt.Fprintf(out, "%s: ok\n", name)
			return nil
		},
	}
}

// readDocument decodes a file in the format named by its extension
func readDocument(path string) (keymap.Document, error) {
	format, err := codec.FormatFromPath(path)
	if err != nil {
		return keymap.Document{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return keymap.Document{}, err
	}
	return codec.Unmarshal(data, format)
}
