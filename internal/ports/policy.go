package ports

import "context"

// UnresolvedPolicyPort decides what happens to a fixed version whose
// dependency rosdep did not resolve.
type UnresolvedPolicyPort interface {
	Unresolved(ctx context.Context, dependency string, version string, source string) error
}
