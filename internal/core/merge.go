package core

import (
	"context"
	"sort"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"rosdep-pin/internal/ports"
	"rosdep-pin/internal/types"
)

// ApplyFixedVersions appends each fixed version to the target versions of
// its resolved key. Dependencies missing from the resolution are handed to
// policy and returned. Dependencies are visited in name order.
func ApplyFixedVersions(ctx context.Context, resolution types.Resolution, fixed types.FixedVersions, policy ports.UnresolvedPolicyPort) ([]string, error) {
	names := make([]string, 0, len(fixed.Versions))
	for name := range fixed.Versions {
		names = append(names, name)
	}
	sort.Strings(names)

	var unresolved []string
	for _, name := range names {
		version := fixed.Versions[name]
		assert.NotEmpty(ctx, version, "fixed version must not be empty")
		info, ok := resolution[name]
		if !ok {
			unresolved = append(unresolved, name)
			if policy == nil {
				continue
			}
			if err := policy.Unresolved(ctx, name, version, fixed.Source); err != nil {
				return unresolved, err
			}
			continue
		}
		info.TargetVersions = append(info.TargetVersions, version)
	}
	log.Ctx(ctx).Debug().
		Str("manifest", fixed.Source).
		Int("applied", len(names)-len(unresolved)).
		Int("unresolved", len(unresolved)).
		Msg("fixed versions merged")
	return unresolved, nil
}
