package cli

import (
	"fmt"

	"github.com/aryankumar/blox/internal/cli/cmdutil"
	"github.com/aryankumar/blox/internal/object"
	"github.com/aryankumar/blox/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Display detailed version information for the Blox CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(cmd)
		},
	}

	return cmd
}

func runVersion(cmd *cobra.Command) error {
	info := version.Get()

	// Without -o the plain summary is printed
	if viper.GetString("output") == "" {
		fmt.Fprintln(cmd.OutOrStdout(), info.String())
		return nil
	}

	formatter, err := cmdutil.Formatter(nil)
	if err != nil {
		return err
	}
	return formatter.Format(cmd.OutOrStdout(), versionObject(info))
}

// versionObject renders version information as an object tree
func versionObject(info version.Info) object.Object {
	return object.NewBuilder().
		Add("Version", object.String(info.Version)).
		Add("Commit", object.String(info.Commit)).
		Add("Build time", object.String(info.BuildTime)).
		Add("Go version", object.String(info.GoVersion)).
		Add("Platform", object.Enum(info.Platform)).
		Build()
}
