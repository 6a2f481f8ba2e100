package shell_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cppkg/pkg/shell"
)

func newExecutor() *shell.Executor {
	return shell.NewExecutor(log.New(io.Discard))
}

func TestExecutor_Run_Success(t *testing.T) {
	res := newExecutor().Run(context.Background(), shell.Command{
		Name:  "sh",
		Args:  []string{"-c", "echo hello"},
		Quiet: true,
	})

	require.False(t, res.Failed())
	require.NoError(t, res.Error())
	assert.Equal(t, "hello\n", res.Output)
}

func TestExecutor_Run_NonZeroExit(t *testing.T) {
	res := newExecutor().Run(context.Background(), shell.Command{
		Name:  "sh",
		Args:  []string{"-c", "echo oops >&2; exit 3"},
		Quiet: true,
	})

	require.True(t, res.Failed())
	assert.Equal(t, 3, res.ExitCode)
	assert.Contains(t, res.Output, "oops")
	require.Error(t, res.Error())
}

func TestExecutor_Run_MissingBinary(t *testing.T) {
	res := newExecutor().Run(context.Background(), shell.Command{
		Name:  "cppkg-definitely-not-a-binary",
		Quiet: true,
	})

	require.True(t, res.Failed())
	assert.Equal(t, -1, res.ExitCode)
}

func TestExecutor_Run_WorkingDir(t *testing.T) {
	dir := t.TempDir()
	res := newExecutor().Run(context.Background(), shell.Command{
		Name:  "sh",
		Args:  []string{"-c", "touch marker && ls"},
		Dir:   dir,
		Quiet: true,
	})

	require.False(t, res.Failed())
	assert.Contains(t, res.Output, "marker")
}

func TestCommand_With(t *testing.T) {
	base := shell.Command{Name: "git", Args: []string{"clone"}}
	withDest := base.With("/tmp/dest")

	assert.Equal(t, []string{"clone"}, base.Args)
	assert.Equal(t, []string{"clone", "/tmp/dest"}, withDest.Args)
	assert.Equal(t, "git clone /tmp/dest", withDest.String())
}

func TestResult_Tags(t *testing.T) {
	ok := shell.Success("")
	assert.False(t, ok.Failed())
	assert.NoError(t, ok.Error())

	cause := errors.New("boom")
	bad := shell.Failure(128, "fatal", cause)
	assert.True(t, bad.Failed())
	assert.Equal(t, 128, bad.ExitCode)
	assert.Error(t, bad.Error())
	assert.Same(t, cause, bad.Err)
}
