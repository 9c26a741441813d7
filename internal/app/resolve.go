package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rosdep-pin/internal/core"
	"rosdep-pin/internal/policies"
	"rosdep-pin/internal/types"
)

// Resolve runs the whole pipeline: rosdep resolution, fixed version merge
// and package list emission.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	fromPaths := strings.TrimSpace(req.FromPaths)
	if fromPaths == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("from-paths is required")
	}
	depTypes, err := core.ParseDependencyTypes(req.DependencyTypes)
	if err != nil {
		return ResolveResult{}, err
	}
	policy, err := policies.NewUnresolvedPolicy(req.Unresolved)
	if err != nil {
		return ResolveResult{}, err
	}

	log.Ctx(ctx).Info().Str("path", fromPaths).Msg("resolving rosdep keys")
	collected, err := core.NewResolverInvoker(s.Rosdep).Collect(ctx, types.KeysRequest{
		FromPaths:       fromPaths,
		DependencyTypes: depTypes,
		ContainSrc:      req.ContainSrc,
	}, strings.TrimSpace(req.RosDistro))
	if err != nil {
		return ResolveResult{}, err
	}
	resolution, err := core.ParseResolution(ctx, collected.Lines)
	if err != nil {
		return ResolveResult{}, err
	}
	logResolution(ctx, "resolved package", resolution)

	manifests, err := s.manifestPaths(fromPaths, req)
	if err != nil {
		return ResolveResult{}, err
	}
	result := ResolveResult{
		Keys:      len(resolution),
		Skipped:   collected.Skipped,
		Manifests: manifests,
	}
	for _, manifest := range manifests {
		fixed, err := s.Manifest.ExtractFixedVersions(manifest)
		if err != nil {
			return ResolveResult{}, err
		}
		log.Ctx(ctx).Debug().
			Str("manifest", manifest).
			Int("fixed", len(fixed.Versions)).
			Msg("fixed versions extracted")
		unresolved, err := core.ApplyFixedVersions(ctx, resolution, fixed, policy)
		if err != nil {
			return ResolveResult{}, err
		}
		result.Unresolved = append(result.Unresolved, unresolved...)
	}
	if err := core.ValidateTargetVersions(ctx, resolution, req.StrictVersions); err != nil {
		return ResolveResult{}, err
	}
	if len(manifests) > 0 {
		logResolution(ctx, "pinned package", resolution)
	}

	// Build every requested list before writing any of them.
	outputs := []struct {
		path   string
		method types.InstallMethod
		count  *int
		lines  []string
	}{
		{path: strings.TrimSpace(req.OutputApt), method: types.InstallMethodApt, count: &result.AptCount},
		{path: strings.TrimSpace(req.OutputPip), method: types.InstallMethodPip, count: &result.PipCount},
	}
	for i := range outputs {
		if outputs[i].path == "" {
			continue
		}
		lines, err := core.BuildPackageList(ctx, resolution, outputs[i].method)
		if err != nil {
			return ResolveResult{}, err
		}
		outputs[i].lines = lines
		*outputs[i].count = len(lines)
	}
	for _, output := range outputs {
		if output.path == "" {
			continue
		}
		if err := s.PackageList.WritePackageList(output.path, output.lines); err != nil {
			return ResolveResult{}, err
		}
	}

	if reportPath := strings.TrimSpace(req.ReportPath); reportPath != "" {
		report := buildReport(resolution, req, fromPaths, result)
		if err := s.Report.WriteReport(reportPath, report); err != nil {
			return ResolveResult{}, err
		}
	}
	return result, nil
}

// manifestPaths lists the manifests to read fixed versions from: the
// explicit one first, then every workspace manifest when scanning.
func (s Service) manifestPaths(fromPaths string, req ResolveRequest) ([]string, error) {
	var paths []string
	seen := map[string]struct{}{}
	if explicit := strings.TrimSpace(req.FixedPackageList); explicit != "" {
		paths = append(paths, explicit)
		seen[explicit] = struct{}{}
	}
	if !req.ScanWorkspace {
		return paths, nil
	}
	found, err := s.Workspace.FindPackageXML(fromPaths)
	if err != nil {
		return nil, err
	}
	for _, path := range found {
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		paths = append(paths, path)
	}
	return paths, nil
}

func buildReport(resolution types.Resolution, req ResolveRequest, fromPaths string, result ResolveResult) types.ResolutionReport {
	report := types.ResolutionReport{
		RosDistro: strings.TrimSpace(req.RosDistro),
		FromPaths: fromPaths,
		Manifests: result.Manifests,
		Skipped:   result.Skipped,
		Unmatched: result.Unresolved,
	}
	for _, info := range resolution.Sorted() {
		report.Packages = append(report.Packages, *info)
	}
	return report
}

func logResolution(ctx context.Context, msg string, resolution types.Resolution) {
	logger := log.Ctx(ctx)
	for _, info := range resolution.Sorted() {
		logger.Debug().
			Str("key", info.Key).
			Str("method", string(info.Method)).
			Strs("names", info.ResolvedNames).
			Strs("versions", info.TargetVersions).
			Msg(msg)
	}
}
