// Package repo fetches remote templates and initializes generated projects
// as git repositories.
package repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"

	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
	"github.com/dnaka91/cargo-hatch/internal/output"
)

const remoteName = "origin"

// Options configure how remote repositories are accessed.
type Options struct {
	// SSHKey is a private key file used for SSH remotes. When empty the SSH
	// agent is asked.
	SSHKey string
}

// FindRepoName extracts "<owner>/<name>" from URLs of the forms
// git@<host>:<owner>/<name>(.git) and http(s)://<host>/<owner>/<name>(.git).
func FindRepoName(url string) (string, bool) {
	var name string

	switch {
	case strings.HasPrefix(url, "git@"):
		_, after, ok := strings.Cut(url, ":")
		if !ok {
			return "", false
		}
		name = after
	case strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://"):
		rest := strings.TrimPrefix(strings.TrimPrefix(url, "http://"), "https://")
		_, after, ok := strings.Cut(rest, "/")
		if !ok {
			return "", false
		}
		name = after
	default:
		return "", false
	}

	name = strings.TrimSuffix(name, ".git")
	if strings.Count(name, "/") != 1 {
		return "", false
	}
	owner, repo, _ := strings.Cut(name, "/")
	if owner == "" || repo == "" {
		return "", false
	}
	return name, true
}

// CacheDir returns where the repository at url is kept below cacheRoot.
func CacheDir(cacheRoot, url string) (string, error) {
	name, ok := FindRepoName(url)
	if !ok {
		return "", oerrors.NewConfigError(
			fmt.Sprintf("cannot determine repository name from %q", url),
			"", "repository",
			"use a URL like git@github.com:owner/name.git or https://github.com/owner/name",
		)
	}
	return filepath.Join(cacheRoot, filepath.FromSlash(name)), nil
}

// CloneOrUpdate clones url into target, or brings an existing clone in
// target up to date with the remote's current head.
func CloneOrUpdate(ctx context.Context, url, target string, opts Options) error {
	auth, err := authFor(url, opts)
	if err != nil {
		return err
	}

	if _, err := os.Stat(filepath.Join(target, git.GitDirName)); err == nil {
		output.Debug("updating repository", "url", url, "path", target)
		return update(ctx, url, target, auth)
	}

	output.Debug("cloning repository", "url", url, "path", target)
	return clone(ctx, url, target, auth)
}

func clone(ctx context.Context, url, target string, auth transport.AuthMethod) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return oerrors.WrapIO(err, "creating "+filepath.Dir(target))
	}

	_, err := git.PlainCloneContext(ctx, target, false, &git.CloneOptions{
		URL:        url,
		Auth:       auth,
		RemoteName: remoteName,
	})
	if err != nil {
		return oerrors.WrapIO(err, "cloning "+url)
	}
	return nil
}

// update fetches the branch HEAD points to and hard resets the work tree to
// it, dropping any local changes.
func update(ctx context.Context, url, target string, auth transport.AuthMethod) error {
	r, err := git.PlainOpen(target)
	if err != nil {
		return oerrors.WrapIO(err, "opening "+target)
	}

	head, err := r.Head()
	if err != nil {
		return oerrors.WrapIO(err, "reading HEAD of "+target)
	}

	branch := head.Name()
	remoteRef := plumbing.NewRemoteReferenceName(remoteName, branch.Short())
	refSpec := config.RefSpec(fmt.Sprintf("+%s:%s", branch, remoteRef))

	err = r.FetchContext(ctx, &git.FetchOptions{
		RemoteName: remoteName,
		RemoteURL:  url,
		RefSpecs:   []config.RefSpec{refSpec},
		Auth:       auth,
		Force:      true,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return oerrors.WrapIO(err, "fetching "+url)
	}

	ref, err := r.Reference(remoteRef, true)
	if err != nil {
		return oerrors.WrapIO(err, "resolving "+remoteRef.String())
	}

	wt, err := r.Worktree()
	if err != nil {
		return oerrors.WrapIO(err, "opening work tree of "+target)
	}
	if err := wt.Reset(&git.ResetOptions{Commit: ref.Hash(), Mode: git.HardReset}); err != nil {
		return oerrors.WrapIO(err, "resetting "+target)
	}
	if err := wt.Clean(&git.CleanOptions{Dir: true}); err != nil {
		return oerrors.WrapIO(err, "cleaning "+target)
	}

	return nil
}

// authFor only sets up authentication for SSH remotes.
func authFor(url string, opts Options) (transport.AuthMethod, error) {
	ep, err := transport.NewEndpoint(url)
	if err != nil {
		return nil, oerrors.NewConfigError(err.Error(), "", "repository", "")
	}
	if ep.Protocol != "ssh" {
		return nil, nil
	}

	user := ep.User
	if user == "" {
		user = "git"
	}

	if opts.SSHKey != "" {
		auth, err := ssh.NewPublicKeysFromFile(user, opts.SSHKey, "")
		if err != nil {
			return nil, oerrors.NewConfigError(
				fmt.Sprintf("loading SSH key: %v", err), opts.SSHKey, "git.ssh_key",
				"check the key path in the settings file; encrypted keys need the SSH agent",
			)
		}
		return auth, nil
	}

	auth, err := ssh.NewSSHAgentAuth(user)
	if err != nil {
		return nil, oerrors.NewConfigError(
			fmt.Sprintf("connecting to SSH agent: %v", err), "", "git.ssh_key",
			"start an SSH agent or set git.ssh_key in the settings file",
		)
	}
	return auth, nil
}

// Init creates an empty git repository in target.
func Init(target string) error {
	if _, err := git.PlainInit(target, false); err != nil {
		if errors.Is(err, git.ErrRepositoryAlreadyExists) {
			return nil
		}
		return oerrors.WrapIO(err, "initializing git repository in "+target)
	}
	return nil
}
