package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"
	"github.com/rs/zerolog/log"

	"rosdep-pin/internal/types"
)

// ValidateFixedVersion checks that version parses under the versioning
// scheme of method: Debian policy for apt, PEP 440 for pip. Other methods
// are not checked.
func ValidateFixedVersion(method types.InstallMethod, version string) error {
	switch method {
	case types.InstallMethodApt:
		if _, err := debversion.NewVersion(version); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid Debian version %q", version)).
				WithCause(err)
		}
	case types.InstallMethodPip:
		if _, err := pep440.Parse(version); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid PEP 440 version %q", version)).
				WithCause(err)
		}
	}
	return nil
}

// ValidateTargetVersions checks every merged pin. Invalid pins are logged,
// or returned as an error when strict is set.
func ValidateTargetVersions(ctx context.Context, resolution types.Resolution, strict bool) error {
	for _, info := range resolution.Sorted() {
		for _, version := range info.TargetVersions {
			err := ValidateFixedVersion(info.Method, version)
			if err == nil {
				continue
			}
			if strict {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("invalid fixed version %q for %s package %s", version, info.Method, info.Key)).
					WithCause(err)
			}
			log.Ctx(ctx).Warn().
				Str("key", info.Key).
				Str("method", string(info.Method)).
				Str("version", version).
				Msg("fixed version does not parse for its install method")
		}
	}
	return nil
}
