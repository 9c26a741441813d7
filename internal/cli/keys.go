package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rosdep-pin/internal/app"
)

type keysOptions struct {
	FromPaths       string
	ContainSrc      bool
	DependencyTypes []string
}

func newKeysCommand() *cobra.Command {
	opts := keysOptions{}
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the rosdep keys that would be resolved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runKeys(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.FromPaths, "from-paths", "", "Root directory to search for ROS packages")
	cmd.Flags().BoolVar(&opts.ContainSrc, "contain-src", false, "Include packages found in the source tree")
	cmd.Flags().StringArrayVar(&opts.DependencyTypes, "dependency-types", nil, "Dependency types to consider")
	return cmd
}

func runKeys(ctx context.Context, cmd *cobra.Command, opts keysOptions) error {
	service := newAppService()
	result, err := service.Keys(ctx, app.KeysRequest{
		FromPaths:       resolveString(cmd, opts.FromPaths, "from_paths", "from-paths"),
		ContainSrc:      resolveBool(cmd, opts.ContainSrc, "contain_src", "contain-src"),
		DependencyTypes: resolveStrings(cmd, opts.DependencyTypes, "dependency_types", "dependency-types"),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, key := range result.Keys {
		fmt.Fprintln(out, key)
	}
	return nil
}
