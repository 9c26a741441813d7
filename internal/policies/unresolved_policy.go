package policies

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rosdep-pin/internal/ports"
	"rosdep-pin/internal/types"
)

// UnresolvedPolicy handles fixed versions declared for dependencies that
// rosdep did not resolve.
type UnresolvedPolicy struct {
	Level types.UnresolvedLevel
}

// NewUnresolvedPolicy parses level; an empty level means warn.
func NewUnresolvedPolicy(level string) (UnresolvedPolicy, error) {
	normalized := types.UnresolvedLevel(strings.ToLower(strings.TrimSpace(level)))
	switch normalized {
	case "":
		return UnresolvedPolicy{Level: types.UnresolvedLevelWarn}, nil
	case types.UnresolvedLevelIgnore, types.UnresolvedLevelWarn, types.UnresolvedLevelError:
		return UnresolvedPolicy{Level: normalized}, nil
	default:
		return UnresolvedPolicy{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown unresolved level: %s (want ignore, warn or error)", level))
	}
}

func (p UnresolvedPolicy) Unresolved(ctx context.Context, dependency string, version string, source string) error {
	switch p.Level {
	case types.UnresolvedLevelIgnore:
		return nil
	case types.UnresolvedLevelError:
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("dependency %s pinned to %s in %s was not resolved by rosdep", dependency, version, source))
	default:
		log.Ctx(ctx).Warn().
			Str("dependency", dependency).
			Str("version", version).
			Str("manifest", source).
			Msg("dependency not resolved by rosdep, fixed version dropped")
		return nil
	}
}

var _ ports.UnresolvedPolicyPort = UnresolvedPolicy{}
