package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandError(t *testing.T) {
	base := errors.New("exit status 1")

	err := CommandError([]byte("  ERROR: no rosdep rule\n"), base)
	assert.EqualError(t, err, "ERROR: no rosdep rule: exit status 1")
	assert.ErrorIs(t, err, base)

	assert.Same(t, base, CommandError([]byte(" \n"), base))
}

func TestSplitFields(t *testing.T) {
	assert.Equal(t, []string{"build", "exec", "test"}, SplitFields([]string{"build exec", " test "}))
	assert.Empty(t, SplitFields([]string{"", "  "}))
	assert.Empty(t, SplitFields(nil))
}
