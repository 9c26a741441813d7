package core

import (
	"context"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosdep-pin/internal/types"
)

type recordingPolicy struct {
	calls []string
	err   error
}

func (p *recordingPolicy) Unresolved(_ context.Context, dependency string, version string, _ string) error {
	p.calls = append(p.calls, dependency+"="+version)
	return p.err
}

func sampleResolution() types.Resolution {
	return types.Resolution{
		"foo": {Key: "foo", Method: types.InstallMethodApt, ResolvedNames: []string{"libfoo1", "libfoo2"}},
		"bar": {Key: "bar", Method: types.InstallMethodPip, ResolvedNames: []string{"bar"}},
	}
}

func TestApplyFixedVersions(t *testing.T) {
	resolution := sampleResolution()
	policy := &recordingPolicy{}
	unresolved, err := ApplyFixedVersions(t.Context(), resolution, types.FixedVersions{
		Source:   "package.xml",
		Versions: map[string]string{"foo": "2.0", "missing": "1.0"},
	}, policy)
	require.NoError(t, err)

	assert.Equal(t, []string{"missing"}, unresolved)
	assert.Equal(t, []string{"missing=1.0"}, policy.calls)
	assert.Equal(t, []string{"2.0"}, resolution["foo"].TargetVersions)
	assert.Empty(t, resolution["bar"].TargetVersions)
}

func TestApplyFixedVersionsUnresolvedDoesNotAffectOutput(t *testing.T) {
	baseline, err := BuildPackageList(t.Context(), sampleResolution(), types.InstallMethodApt)
	require.NoError(t, err)

	resolution := sampleResolution()
	_, err = ApplyFixedVersions(t.Context(), resolution, types.FixedVersions{
		Versions: map[string]string{"not_resolved": "3.1"},
	}, nil)
	require.NoError(t, err)

	lines, err := BuildPackageList(t.Context(), resolution, types.InstallMethodApt)
	require.NoError(t, err)
	assert.Equal(t, baseline, lines)
}

func TestApplyFixedVersionsPolicyError(t *testing.T) {
	policy := &recordingPolicy{err: errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg("unresolved")}
	_, err := ApplyFixedVersions(t.Context(), sampleResolution(), types.FixedVersions{
		Versions: map[string]string{"missing": "1.0"},
	}, policy)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestApplyFixedVersionsAppendsAcrossManifests(t *testing.T) {
	resolution := sampleResolution()
	for _, version := range []string{"2.0", "2.1"} {
		_, err := ApplyFixedVersions(t.Context(), resolution, types.FixedVersions{
			Versions: map[string]string{"foo": version},
		}, nil)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"2.0", "2.1"}, resolution["foo"].TargetVersions)
}
