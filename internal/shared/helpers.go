// Package shared provides small helpers used by more than one layer of
// rosdep-pin.
package shared

import (
	"fmt"
	"strings"
)

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	trimmed := strings.TrimSpace(string(output))
	if trimmed == "" {
		return err
	}
	return fmt.Errorf("%s: %w", trimmed, err)
}

// SplitFields flattens values that may hold several space separated
// tokens.
func SplitFields(values []string) []string {
	var result []string
	for _, value := range values {
		result = append(result, strings.Fields(value)...)
	}
	return result
}
