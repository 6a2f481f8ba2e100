// File: cpp-package-manager/pkg/git/gogit.go
package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/storage/memory"
	"go.trai.ch/zerr"

	"cppkg/pkg/shell"
)

// GoGitRemote fetches packages in-process with go-git, without a git binary.
type GoGitRemote struct {
	urlTemplate string
	auth        transport.AuthMethod
}

// NewGoGitRemote creates a GoGitRemote. HTTP credentials are taken from
// GITHUB_TOKEN, GITLAB_TOKEN or GIT_TOKEN when set.
func NewGoGitRemote(urlTemplate string) *GoGitRemote {
	return &GoGitRemote{urlTemplate: urlTemplate, auth: tokenAuth(os.Getenv)}
}

// URL returns the repository URL of a package.
func (r *GoGitRemote) URL(name string) string {
	return fmt.Sprintf(r.urlTemplate, name)
}

// Clone shallow-clones the tag for version into dest. The tag is tried as
// given and with the "v" prefix toggled.
func (r *GoGitRemote) Clone(ctx context.Context, name, version, dest string) shell.Result {
	var lastErr error
	for _, tag := range tagCandidates(version) {
		_, err := gogit.PlainCloneContext(ctx, dest, false, &gogit.CloneOptions{
			URL:           r.URL(name),
			Auth:          r.auth,
			ReferenceName: plumbing.NewTagReferenceName(tag),
			SingleBranch:  true,
			Depth:         1,
		})
		if err != nil {
			lastErr = err
			_ = os.RemoveAll(dest)
			continue
		}
		if err := os.RemoveAll(filepath.Join(dest, ".git")); err != nil {
			return shell.Failure(-1, "", zerr.Wrap(err, "failed to remove .git directory"))
		}
		return shell.Success("")
	}
	return shell.Failure(-1, "", zerr.With(zerr.Wrap(lastErr, "failed to clone"), "version", version))
}

// ListVersions lists the tags of a package's repository without cloning it.
func (r *GoGitRemote) ListVersions(ctx context.Context, name string) ([]string, error) {
	remote := gogit.NewRemote(memory.NewStorage(), &gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{r.URL(name)},
	})
	refs, err := remote.ListContext(ctx, &gogit.ListOptions{Auth: r.auth})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list remote refs"), "package", name)
	}

	tags := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref.Name().IsTag() {
			tags = append(tags, ref.Name().Short())
		}
	}
	return tags, nil
}

func tagCandidates(version string) []string {
	if noV, found := strings.CutPrefix(version, "v"); found {
		return []string{version, noV}
	}
	return []string{version, "v" + version}
}

func tokenAuth(getenv func(string) string) transport.AuthMethod {
	if token := getenv("GITHUB_TOKEN"); token != "" {
		return &http.BasicAuth{Username: "x-access-token", Password: token}
	}
	if token := getenv("GITLAB_TOKEN"); token != "" {
		return &http.BasicAuth{Username: "gitlab-ci-token", Password: token}
	}
	if token := getenv("GIT_TOKEN"); token != "" {
		return &http.BasicAuth{Username: "git", Password: token}
	}
	return nil
}
