package core

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rosdep-pin/internal/types"
)

var (
	rosdepHeaderPattern = regexp.MustCompile(`#ROSDEP\[(.*?)\]`)
	methodMarkerPattern = regexp.MustCompile(`^#([A-Za-z][A-Za-z0-9_-]*)$`)
)

// HeaderLine renders the marker line that opens a key's block.
func HeaderLine(key string) string {
	return fmt.Sprintf("#ROSDEP[%s]", key)
}

// HeaderKey returns the key carried by a header line.
func HeaderKey(line string) (string, bool) {
	match := rosdepHeaderPattern.FindStringSubmatch(line)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// ParseResolution converts tagged rosdep output into a Resolution. Lines
// are classified in order: header, method marker, resolved names. A
// marker or names line before the first header is a structural error.
func ParseResolution(ctx context.Context, lines []string) (types.Resolution, error) {
	var entries []*types.ResolvedPackageInfo

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if key, ok := HeaderKey(line); ok {
			if strings.TrimSpace(key) == "" {
				return nil, structuralError(i, "empty rosdep key in resolver output")
			}
			entries = append(entries, &types.ResolvedPackageInfo{Key: key})
			continue
		}
		if method, ok := parseMethodMarker(line); ok {
			if len(entries) == 0 {
				return nil, structuralError(i, "install method found before rosdep key in resolver output")
			}
			entries[len(entries)-1].Method = method
			continue
		}
		if len(entries) == 0 {
			return nil, structuralError(i, "resolved package name found before rosdep key in resolver output")
		}
		entries[len(entries)-1].ResolvedNames = strings.Fields(line)
	}

	resolution := make(types.Resolution, len(entries))
	for _, entry := range entries {
		if _, exists := resolution[entry.Key]; exists {
			log.Ctx(ctx).Warn().Str("key", entry.Key).Msg("rosdep key resolved twice, keeping the later block")
		}
		resolution[entry.Key] = entry
	}
	log.Ctx(ctx).Debug().Int("keys", len(resolution)).Msg("resolver output parsed")
	return resolution, nil
}

func parseMethodMarker(line string) (types.InstallMethod, bool) {
	match := methodMarkerPattern.FindStringSubmatch(line)
	if match == nil {
		return types.InstallMethodNone, false
	}
	switch types.InstallMethod(match[1]) {
	case types.InstallMethodApt:
		return types.InstallMethodApt, true
	case types.InstallMethodPip:
		return types.InstallMethodPip, true
	default:
		return types.InstallMethodUnknown, true
	}
}

func structuralError(index int, msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%s (line %d)", msg, index+1))
}
