package core

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rosdep-pin/internal/ports"
	"rosdep-pin/internal/types"
)

// ResolverInvoker drives rosdep: one key listing, then one resolve call
// per key.
type ResolverInvoker struct {
	rosdep ports.RosdepPort
}

func NewResolverInvoker(rosdep ports.RosdepPort) ResolverInvoker {
	return ResolverInvoker{rosdep: rosdep}
}

// CollectResult is the tagged resolver output plus the keys whose resolve
// call failed.
type CollectResult struct {
	Keys    []string
	Lines   []string
	Skipped []string
}

// Collect returns the resolver output for every discovered key, each
// block opened by its header line. A failing key listing is fatal; a
// failing resolve only drops that key.
func (i ResolverInvoker) Collect(ctx context.Context, request types.KeysRequest, rosDistro string) (CollectResult, error) {
	keys, err := i.rosdep.ListKeys(ctx, request)
	if err != nil {
		return CollectResult{}, err
	}
	result := CollectResult{Keys: keys}
	if len(keys) == 0 {
		return result, nil
	}
	if rosDistro == "" {
		return CollectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("ROS_DISTRO is not set")
	}
	for _, key := range keys {
		lines, err := i.rosdep.ResolveKey(ctx, rosDistro, key)
		if err != nil {
			if ctx.Err() != nil {
				return CollectResult{}, ctx.Err()
			}
			log.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("skipping key that rosdep could not resolve")
			result.Skipped = append(result.Skipped, key)
			continue
		}
		result.Lines = append(result.Lines, HeaderLine(key))
		for _, line := range lines {
			if echoed, ok := HeaderKey(line); ok && echoed == key {
				continue
			}
			result.Lines = append(result.Lines, line)
		}
	}
	log.Ctx(ctx).Debug().
		Int("keys", len(keys)).
		Int("skipped", len(result.Skipped)).
		Msg("rosdep resolution collected")
	return result, nil
}
