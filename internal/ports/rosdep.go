package ports

import (
	"context"

	"rosdep-pin/internal/types"
)

// RosdepPort is the narrow capability the pipeline needs from rosdep.
type RosdepPort interface {
	// ListKeys returns the rosdep keys required by the packages found
	// under the request's search root.
	ListKeys(ctx context.Context, request types.KeysRequest) ([]string, error)

	// ResolveKey returns the non-blank output lines describing how rosdep
	// installs key on rosDistro.
	ResolveKey(ctx context.Context, rosDistro string, key string) ([]string, error)
}
