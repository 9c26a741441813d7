package app

type ResolveRequest struct {
	FromPaths        string
	FixedPackageList string
	ScanWorkspace    bool
	OutputApt        string
	OutputPip        string
	ReportPath       string
	ContainSrc       bool
	DependencyTypes  []string
	RosDistro        string
	Unresolved       string
	StrictVersions   bool
}

type ResolveResult struct {
	Keys       int
	Skipped    []string
	Manifests  []string
	Unresolved []string
	AptCount   int
	PipCount   int
}

type KeysRequest struct {
	FromPaths       string
	ContainSrc      bool
	DependencyTypes []string
}

type KeysResult struct {
	Keys []string
}

type FixedVersionsRequest struct {
	Manifest string
}

type FixedVersionsResult struct {
	Package string
	Entries []string
}
