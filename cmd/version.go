package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fluidity-money/contact/server"
)

func newVersionCmd(b Build) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), server.FormatBuildVersion(b.Version))
			return err
		},
	}
}
