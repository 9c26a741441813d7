package types

// FixedVersions holds the exact version pins (version_eq) declared in one
// package.xml, keyed by dependency name.
type FixedVersions struct {
	Source   string
	Package  string
	Versions map[string]string
}
