package types

// KeysRequest describes which keys rosdep should discover.
type KeysRequest struct {
	FromPaths       string
	DependencyTypes []DependencyType
	ContainSrc      bool
}

