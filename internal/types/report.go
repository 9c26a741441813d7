package types

// ResolutionReport is the serialized form of a merged resolution.
type ResolutionReport struct {
	RosDistro string                `yaml:"ros_distro"`
	FromPaths string                `yaml:"from_paths"`
	Manifests []string              `yaml:"manifests,omitempty"`
	Packages  []ResolvedPackageInfo `yaml:"packages"`
	Skipped   []string              `yaml:"skipped,omitempty"`
	Unmatched []string              `yaml:"unresolved_fixed_versions,omitempty"`
}
