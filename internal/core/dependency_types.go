package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rosdep-pin/internal/shared"
	"rosdep-pin/internal/types"
)

var validDependencyTypes = map[types.DependencyType]struct{}{
	types.DependencyTypeBuild:           {},
	types.DependencyTypeBuildtool:       {},
	types.DependencyTypeBuildExport:     {},
	types.DependencyTypeBuildtoolExport: {},
	types.DependencyTypeExec:            {},
	types.DependencyTypeTest:            {},
	types.DependencyTypeDoc:             {},
}

// ParseDependencyTypes splits space separated values, validates every
// token and drops repeats while keeping first-seen order.
func ParseDependencyTypes(values []string) ([]types.DependencyType, error) {
	var result []types.DependencyType
	seen := map[types.DependencyType]struct{}{}
	for _, token := range shared.SplitFields(values) {
		depType := types.DependencyType(token)
		if _, ok := validDependencyTypes[depType]; !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid dependency type %q (want one of build, buildtool, build_export, buildtool_export, exec, test, doc)", token))
		}
		if _, ok := seen[depType]; ok {
			continue
		}
		seen[depType] = struct{}{}
		result = append(result, depType)
	}
	return result, nil
}
