package types

import "sort"

// ResolvedPackageInfo describes how rosdep satisfies a single key.
type ResolvedPackageInfo struct {
	Key            string        `yaml:"key"`
	Method         InstallMethod `yaml:"method"`
	ResolvedNames  []string      `yaml:"resolved_names"`
	TargetVersions []string      `yaml:"target_versions,omitempty"`
}

// Resolution maps rosdep keys to their resolved package information. It
// is built once per run and owned by that run.
type Resolution map[string]*ResolvedPackageInfo

// Keys returns the keys in ascending order.
func (r Resolution) Keys() []string {
	keys := make([]string, 0, len(r))
	for key := range r {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Sorted returns the entries in ascending key order.
func (r Resolution) Sorted() []*ResolvedPackageInfo {
	entries := make([]*ResolvedPackageInfo, 0, len(r))
	for _, key := range r.Keys() {
		entries = append(entries, r[key])
	}
	return entries
}
