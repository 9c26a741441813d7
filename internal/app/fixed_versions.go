package app

import (
	"context"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// FixedVersions reports the version_eq pins of one manifest as sorted
// name=version entries.
func (s Service) FixedVersions(_ context.Context, req FixedVersionsRequest) (FixedVersionsResult, error) {
	manifest := strings.TrimSpace(req.Manifest)
	if manifest == "" {
		return FixedVersionsResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	fixed, err := s.Manifest.ExtractFixedVersions(manifest)
	if err != nil {
		return FixedVersionsResult{}, err
	}
	entries := make([]string, 0, len(fixed.Versions))
	for name, version := range fixed.Versions {
		entries = append(entries, name+"="+version)
	}
	sort.Strings(entries)
	return FixedVersionsResult{Package: fixed.Package, Entries: entries}, nil
}
