package cmd

import (
	"fmt"
	"os"

	"github.com/hawkins/vecbind/internal/codec"
	"github.com/hawkins/vecbind/internal/keymap"
	"github.com/hawkins/vecbind/internal/logging"
	"github.com/hawkins/vecbind/internal/store"
	"github.com/spf13/cobra"
)

func newExportCmd(c *cli) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active profile as a document",
		Long: `Writes the active profile, overrides applied, to stdout or --out. The format
comes from --type, else from the extension of --out, else yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := exportFormat(format, out)
			if err != nil {
				return err
			}
			return c.withKeymap(cmd, func(_ store.Store, km *keymap.Keymap) error {
				data, err := codec.Marshal(km.Document(), f)
				if err != nil {
					return err
				}
				if out == "" {
					_, err = cmd.OutOrStdout().Write(data)
					return err
				}
				if err := os.WriteFile(out, data, 0o644); err != nil {
					return err
				}
				logging.Infof("exported %s to %s", c.cfg.Profile, out)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&format, "type", "t", "", "document format: json, yaml or toml")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	return cmd
}

func exportFormat(format, out string) (codec.Format, error) {
	switch {
	case format != "":
		return codec.ParseFormat(format)
	case out != "":
		f, err := codec.FormatFromPath(out)
		if err != nil {
			return "", fmt.Errorf("--out %s: %w", out, err)
		}
		return f, nil
	}
	return codec.YAML, nil
}
