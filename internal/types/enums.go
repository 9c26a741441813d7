package types

type InstallMethod string

const (
	InstallMethodNone    InstallMethod = ""
	InstallMethodApt     InstallMethod = "apt"
	InstallMethodPip     InstallMethod = "pip"
	InstallMethodUnknown InstallMethod = "unknown"
)

// DependencyType is a rosdep dependency-type filter as accepted by
// `rosdep keys --dependency-types`.
type DependencyType string

const (
	DependencyTypeBuild           DependencyType = "build"
	DependencyTypeBuildtool       DependencyType = "buildtool"
	DependencyTypeBuildExport     DependencyType = "build_export"
	DependencyTypeBuildtoolExport DependencyType = "buildtool_export"
	DependencyTypeExec            DependencyType = "exec"
	DependencyTypeTest            DependencyType = "test"
	DependencyTypeDoc             DependencyType = "doc"
)

type UnresolvedLevel string

const (
	UnresolvedLevelIgnore UnresolvedLevel = "ignore"
	UnresolvedLevelWarn   UnresolvedLevel = "warn"
	UnresolvedLevelError  UnresolvedLevel = "error"
)
