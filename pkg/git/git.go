// File: cpp-package-manager/pkg/git/git.go
package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"

	"cppkg/pkg/shell"
)

// ShellRemote fetches packages by running the git binary.
type ShellRemote struct {
	urlTemplate string
	runner      shell.Runner
}

// NewShellRemote creates a ShellRemote. urlTemplate maps a package name to a
// repository URL through a single %s, e.g. "https://github.com/%s.git".
func NewShellRemote(urlTemplate string, runner shell.Runner) *ShellRemote {
	return &ShellRemote{urlTemplate: urlTemplate, runner: runner}
}

// URL returns the repository URL of a package.
func (r *ShellRemote) URL(name string) string {
	return fmt.Sprintf(r.urlTemplate, name)
}

// CloneCommand returns the command that clones version of name. The
// destination directory is appended by the caller.
func (r *ShellRemote) CloneCommand(name, version string) shell.Command {
	return shell.Command{
		Name: "git",
		Args: []string{"clone", "-q", "--depth", "1", "-b", version, r.URL(name)},
	}
}

// Clone clones version of name into dest with output captured, then strips the
// repository metadata so dest holds sources only.
func (r *ShellRemote) Clone(ctx context.Context, name, version, dest string) shell.Result {
	cmd := r.CloneCommand(name, version).With(dest)
	cmd.Quiet = true

	res := r.runner.Run(ctx, cmd)
	if res.Failed() {
		return res
	}
	if err := os.RemoveAll(filepath.Join(dest, ".git")); err != nil {
		return shell.Failure(-1, res.Output, zerr.Wrap(err, "failed to remove .git directory"))
	}
	return res
}

// ListVersions lists the tags of a package's repository.
func (r *ShellRemote) ListVersions(ctx context.Context, name string) ([]string, error) {
	res := r.runner.Run(ctx, shell.Command{
		Name:  "git",
		Args:  []string{"ls-remote", "--tags", "--refs", r.URL(name)},
		Quiet: true,
	})
	if res.Failed() {
		return nil, zerr.With(zerr.Wrap(res.Error(), "could not list tags"), "package", name)
	}
	return ParseTags(res.Output), nil
}

// ParseTags extracts tag names from `git ls-remote --tags` output.
func ParseTags(output string) []string {
	tags := make([]string, 0)
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		tag, ok := strings.CutPrefix(fields[1], "refs/tags/")
		if !ok {
			continue
		}
		tags = append(tags, strings.TrimSuffix(tag, "^{}"))
	}
	return tags
}
