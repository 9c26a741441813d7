package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FixtureRunner answers rosdep invocations from files under Dir:
// keys.txt for `rosdep keys` and resolve/<key>.txt for `rosdep resolve`.
// A missing resolve fixture behaves like a key rosdep cannot resolve.
type FixtureRunner struct {
	Dir string
	// Calls records every invocation as name followed by its arguments.
	Calls [][]string
}

func (r *FixtureRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	r.Calls = append(r.Calls, append([]string{name}, args...))
	if len(args) == 0 {
		return nil, fmt.Errorf("%s: no subcommand", name)
	}
	switch args[0] {
	case "keys":
		return os.ReadFile(filepath.Join(r.Dir, "keys.txt"))
	case "resolve":
		key := args[len(args)-1]
		data, err := os.ReadFile(filepath.Join(r.Dir, "resolve", key+".txt"))
		if err != nil {
			return nil, fmt.Errorf("ERROR: no rosdep rule for %q", key)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%s: unsupported subcommand %q", name, args[0])
	}
}
