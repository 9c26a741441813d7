package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rosdep-pin/internal/core"
	"rosdep-pin/internal/types"
)

// Keys lists the rosdep keys the resolve pipeline would work on.
func (s Service) Keys(ctx context.Context, req KeysRequest) (KeysResult, error) {
	fromPaths := strings.TrimSpace(req.FromPaths)
	if fromPaths == "" {
		return KeysResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("from-paths is required")
	}
	depTypes, err := core.ParseDependencyTypes(req.DependencyTypes)
	if err != nil {
		return KeysResult{}, err
	}
	keys, err := s.Rosdep.ListKeys(ctx, types.KeysRequest{
		FromPaths:       fromPaths,
		DependencyTypes: depTypes,
		ContainSrc:      req.ContainSrc,
	})
	if err != nil {
		return KeysResult{}, err
	}
	return KeysResult{Keys: keys}, nil
}
