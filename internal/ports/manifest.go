package ports

import "rosdep-pin/internal/types"

// ManifestPort extracts fixed-version pins from package.xml files.
type ManifestPort interface {
	ExtractFixedVersions(path string) (types.FixedVersions, error)
}

