package adapters

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rosdep-pin/internal/ports"
	"rosdep-pin/internal/shared"
	"rosdep-pin/internal/types"
)

// CommandRunner runs an external command and returns its standard output.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands on the host with the process environment.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = os.Environ()
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return output, shared.CommandError(stderr.Bytes(), err)
	}
	return output, nil
}

type RosdepCommandAdapter struct {
	Binary string
	Runner CommandRunner
}

func NewRosdepCommandAdapter() RosdepCommandAdapter {
	return RosdepCommandAdapter{Binary: "rosdep", Runner: ExecRunner{}}
}

func (a RosdepCommandAdapter) ListKeys(ctx context.Context, request types.KeysRequest) ([]string, error) {
	if strings.TrimSpace(request.FromPaths) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("search path is empty")
	}
	args := []string{"keys", "--from-paths", request.FromPaths}
	if !request.ContainSrc {
		args = append(args, "--ignore-src")
	}
	for _, depType := range request.DependencyTypes {
		args = append(args, "--dependency-types", string(depType))
	}
	output, err := a.Runner.Run(ctx, a.binary(), args...)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("rosdep keys failed").
			WithCause(err)
	}
	keys := uniqueSorted(nonBlankLines(output))
	log.Debug().Int("keys", len(keys)).Str("path", request.FromPaths).Msg("rosdep keys listed")
	return keys, nil
}

func (a RosdepCommandAdapter) ResolveKey(ctx context.Context, rosDistro string, key string) ([]string, error) {
	output, err := a.Runner.Run(ctx, a.binary(), "resolve", "--rosdistro", rosDistro, key)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("rosdep resolve failed for " + key).
			WithCause(err)
	}
	return nonBlankLines(output), nil
}

func (a RosdepCommandAdapter) binary() string {
	if strings.TrimSpace(a.Binary) == "" {
		return "rosdep"
	}
	return a.Binary
}

func nonBlankLines(output []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func uniqueSorted(values []string) []string {
	seen := map[string]struct{}{}
	var result []string
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	sort.Strings(result)
	return result
}

var _ ports.RosdepPort = RosdepCommandAdapter{}
