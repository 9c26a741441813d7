package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"rosdep-pin/internal/types"
)

// pinSeparators holds the version pin syntax per install method.
var pinSeparators = map[types.InstallMethod]string{
	types.InstallMethodApt: "=",
	types.InstallMethodPip: "==",
}

// BuildPackageList returns the install lines for every entry resolved by
// method, in key order. An entry carrying more than one target version is
// rejected rather than reconciled.
func BuildPackageList(ctx context.Context, resolution types.Resolution, method types.InstallMethod) ([]string, error) {
	separator, ok := pinSeparators[method]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported install method: %q", method))
	}
	var lines []string
	for _, info := range resolution.Sorted() {
		if info.Method != method {
			continue
		}
		assert.NotEmpty(ctx, info.Key, "resolved package key must be set")
		switch len(info.TargetVersions) {
		case 0:
			lines = append(lines, info.ResolvedNames...)
		case 1:
			for _, name := range info.ResolvedNames {
				lines = append(lines, name+separator+info.TargetVersions[0])
			}
		default:
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("multiple target versions for %s package %s: %v", method, info.Key, info.TargetVersions))
		}
	}
	return lines, nil
}
