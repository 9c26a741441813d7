package cli

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rosdep-pin/internal/app"
)

type resolveOptions struct {
	FromPaths        string
	FixedPackageList string
	ScanWorkspace    bool
	OutputApt        string
	OutputPip        string
	Report           string
	ContainSrc       bool
	DependencyTypes  []string
	RosDistro        string
	Unresolved       string
	StrictVersions   bool
}

func bindResolveFlags(cmd *cobra.Command, opts *resolveOptions) {
	cmd.Flags().StringVar(&opts.FromPaths, "from-paths", "", "Root directory to search for ROS packages")
	cmd.Flags().StringVar(&opts.FixedPackageList, "fixed-package-list", "", "package.xml to read version_eq pins from")
	cmd.Flags().BoolVar(&opts.ScanWorkspace, "scan-workspace", false, "Read version_eq pins from every package.xml under --from-paths")
	cmd.Flags().StringVar(&opts.OutputApt, "output-apt", "", "Destination file for the apt package list")
	cmd.Flags().StringVar(&opts.OutputPip, "output-pip", "", "Destination file for the pip package list")
	cmd.Flags().StringVar(&opts.Report, "report", "", "Destination file for a YAML resolution report")
	cmd.Flags().BoolVar(&opts.ContainSrc, "contain-src", false, "Include packages found in the source tree when listing keys")
	cmd.Flags().StringArrayVar(&opts.DependencyTypes, "dependency-types", nil, "Dependency types to consider (build, buildtool, build_export, buildtool_export, exec, test, doc)")
	cmd.Flags().StringVar(&opts.RosDistro, "rosdistro", "", "ROS distribution (defaults to $ROS_DISTRO)")
	cmd.Flags().StringVar(&opts.Unresolved, "unresolved", "warn", "Handling of pins for keys rosdep did not resolve (ignore, warn, error)")
	cmd.Flags().BoolVar(&opts.StrictVersions, "strict-versions", false, "Fail on pins that do not parse as Debian or PEP 440 versions")

	_ = viper.BindPFlag("from_paths", cmd.Flags().Lookup("from-paths"))
	_ = viper.BindPFlag("fixed_package_list", cmd.Flags().Lookup("fixed-package-list"))
	_ = viper.BindPFlag("scan_workspace", cmd.Flags().Lookup("scan-workspace"))
	_ = viper.BindPFlag("output_apt", cmd.Flags().Lookup("output-apt"))
	_ = viper.BindPFlag("output_pip", cmd.Flags().Lookup("output-pip"))
	_ = viper.BindPFlag("report", cmd.Flags().Lookup("report"))
	_ = viper.BindPFlag("contain_src", cmd.Flags().Lookup("contain-src"))
	_ = viper.BindPFlag("dependency_types", cmd.Flags().Lookup("dependency-types"))
	_ = viper.BindPFlag("ros_distro", cmd.Flags().Lookup("rosdistro"))
	_ = viper.BindPFlag("unresolved", cmd.Flags().Lookup("unresolved"))
	_ = viper.BindPFlag("strict_versions", cmd.Flags().Lookup("strict-versions"))
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		FromPaths:        resolveString(cmd, opts.FromPaths, "from_paths", "from-paths"),
		FixedPackageList: resolveString(cmd, opts.FixedPackageList, "fixed_package_list", "fixed-package-list"),
		ScanWorkspace:    resolveBool(cmd, opts.ScanWorkspace, "scan_workspace", "scan-workspace"),
		OutputApt:        resolveString(cmd, opts.OutputApt, "output_apt", "output-apt"),
		OutputPip:        resolveString(cmd, opts.OutputPip, "output_pip", "output-pip"),
		ReportPath:       resolveString(cmd, opts.Report, "report", "report"),
		ContainSrc:       resolveBool(cmd, opts.ContainSrc, "contain_src", "contain-src"),
		DependencyTypes:  resolveStrings(cmd, opts.DependencyTypes, "dependency_types", "dependency-types"),
		RosDistro:        resolveString(cmd, opts.RosDistro, "ros_distro", "rosdistro"),
		Unresolved:       resolveString(cmd, opts.Unresolved, "unresolved", "unresolved"),
		StrictVersions:   resolveBool(cmd, opts.StrictVersions, "strict_versions", "strict-versions"),
	})
	if err != nil {
		return err
	}
	log.Info().
		Int("keys", result.Keys).
		Int("skipped", len(result.Skipped)).
		Int("apt", result.AptCount).
		Int("pip", result.PipCount).
		Msg("resolution complete")
	return nil
}
