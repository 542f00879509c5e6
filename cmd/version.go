package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var version = "dev" // set by the linker

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		// version needs no config
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			v, commit := resolveBuildVersion(nil)
			fmt.Fprintf(cmd.OutOrStdout(), "version: %s\n", v)
			if commit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", commit)
			}
		},
	}
}

// resolveBuildVersion prefers the module version and VCS revision recorded in
// the binary. A nil info reads the running binary's.
func resolveBuildVersion(info *debug.BuildInfo) (string, string) {
	resolved, commit := version, ""
	if info == nil {
		var ok bool
		if info, ok = debug.ReadBuildInfo(); !ok {
			return resolved, commit
		}
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		resolved = info.Main.Version
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			commit = s.Value
		}
	}
	return resolved, commit
}
