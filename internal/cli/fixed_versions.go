package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rosdep-pin/internal/app"
)

func newFixedVersionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixed-versions <package.xml>",
		Short: "Print the version_eq pins declared by a package.xml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFixedVersions(cmd.Context(), cmd, args[0])
		},
	}
	return cmd
}

func runFixedVersions(ctx context.Context, cmd *cobra.Command, manifest string) error {
	service := newAppService()
	result, err := service.FixedVersions(ctx, app.FixedVersionsRequest{Manifest: manifest})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, entry := range result.Entries {
		fmt.Fprintln(out, entry)
	}
	return nil
}
