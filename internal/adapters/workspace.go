package adapters

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rosdep-pin/internal/ports"
)

// ignoreMarkers are the files colcon, catkin and ament honour to exclude a
// directory from package discovery.
var ignoreMarkers = []string{"COLCON_IGNORE", "CATKIN_IGNORE", "AMENT_IGNORE"}

type WorkspaceAdapter struct{}

func NewWorkspaceAdapter() WorkspaceAdapter {
	return WorkspaceAdapter{}
}

// FindPackageXML returns every package.xml below root in lexical order,
// skipping colcon/catkin output trees and ignored directories.
func (a WorkspaceAdapter) FindPackageXML(root string) ([]string, error) {
	if root == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("workspace root is empty")
	}
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (shouldSkipWorkspaceDir(d.Name()) || hasIgnoreMarker(path)) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == "package.xml" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan workspace").
			WithCause(err)
	}
	sort.Strings(paths)
	return paths, nil
}

func shouldSkipWorkspaceDir(name string) bool {
	switch name {
	case "install", "build", "log", ".git", ".colcon", ".ros", "devel":
		return true
	default:
		return false
	}
}

func hasIgnoreMarker(dir string) bool {
	for _, marker := range ignoreMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

var _ ports.WorkspacePort = WorkspaceAdapter{}
