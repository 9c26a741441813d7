package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosdep-pin/internal/types"
)

func TestParseDependencyTypes(t *testing.T) {
	got, err := ParseDependencyTypes([]string{"build exec", "test", "build", " doc "})
	require.NoError(t, err)
	want := []types.DependencyType{
		types.DependencyTypeBuild,
		types.DependencyTypeExec,
		types.DependencyTypeTest,
		types.DependencyTypeDoc,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected dependency types (-want +got):\n%s", diff)
	}
}

func TestParseDependencyTypesEmpty(t *testing.T) {
	got, err := ParseDependencyTypes(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseDependencyTypesInvalid(t *testing.T) {
	_, err := ParseDependencyTypes([]string{"build runtime"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"runtime"`)
}
