package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dnaka91/cargo-hatch/internal/config"
	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
	"github.com/dnaka91/cargo-hatch/internal/identity"
	"github.com/dnaka91/cargo-hatch/internal/output"
	"github.com/dnaka91/cargo-hatch/internal/prompt"
	"github.com/dnaka91/cargo-hatch/internal/repo"
	"github.com/dnaka91/cargo-hatch/internal/settings"
	"github.com/dnaka91/cargo-hatch/internal/templates"
)

// Prompter answers template settings and yes/no questions.
type Prompter interface {
	settings.Prompter
	settings.Confirmer
}

// newPrompter is replaced in tests. Prompts go to stderr so that stdout only
// carries the generation summary.
var newPrompter = func() Prompter {
	return prompt.New(os.Stdin, os.Stderr)
}

// generateRequest describes one project generation.
type generateRequest struct {
	// TemplateDir is the directory holding .hatch.toml.
	TemplateDir string

	// Name is the optional project directory below the working directory.
	Name string

	// Bookmark supplies defaults for the template settings. Zero for git
	// and local templates.
	Bookmark config.Bookmark
}

// generate runs the full pipeline: prepare the target, collect files, load
// and answer the settings, filter, render and initialize a git repository.
func generate(ctx context.Context, cfg *config.Config, req generateRequest, p Prompter) error {
	info, err := os.Stat(req.TemplateDir)
	if err != nil || !info.IsDir() {
		return oerrors.NewNotFoundError(
			"template directory does not exist",
			req.TemplateDir,
			"check the repository and folder of the template",
		)
	}

	projectName, target, err := prepareTarget(ctx, req.Name, p)
	if err != nil {
		return fmt.Errorf("preparing target directory: %w", err)
	}

	files, err := templates.Collect(req.TemplateDir)
	if err != nil {
		return fmt.Errorf("collecting files: %w", err)
	}

	repoSettings, err := settings.Load(req.TemplateDir)
	if err != nil {
		return err
	}
	output.Debug("loaded template",
		"path", req.TemplateDir,
		"files", len(files),
		"settings", len(repoSettings.Settings),
		"ignore_rules", len(repoSettings.Ignore),
	)

	author, err := identity.Resolve(identity.Author{Name: cfg.Git.Name, Email: cfg.Git.Email})
	if err != nil {
		return err
	}

	vc, err := settings.NewContext(ctx, repoSettings, settings.Builtins{
		ProjectName: projectName,
		GitName:     author.Name,
		GitEmail:    author.Email,
	}, p)
	if err != nil {
		return fmt.Errorf("creating context: %w", err)
	}

	defaults := req.Bookmark.DefaultsFor(repoSettings.Names())
	if err := settings.FillContext(ctx, vc, repoSettings.Settings, defaults, p); err != nil {
		return fmt.Errorf("filling context: %w", err)
	}

	files, err = templates.ApplyIgnoreRules(files, repoSettings.Ignore, vc)
	if err != nil {
		return err
	}

	if err := templates.Render(files, vc, target); err != nil {
		return fmt.Errorf("rendering templates: %w", err)
	}

	if err := repo.Init(target); err != nil {
		return fmt.Errorf("initializing git repository: %w", err)
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Created project '%s' in %s\n", projectName, target)))
	output.Print(output.RenderFileTree(projectName, templates.Summary(files)))

	return nil
}

// prepareTarget resolves the project directory and makes sure it can be
// written. A non-empty directory is only cleared after confirmation.
func prepareTarget(ctx context.Context, name string, c settings.Confirmer) (string, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", "", oerrors.WrapIO(err, "getting current directory")
	}

	target := cwd
	if name != "" {
		target = filepath.Join(cwd, name)
	}
	target = filepath.Clean(target)

	projectName := filepath.Base(target)
	if projectName == string(filepath.Separator) || projectName == "." {
		return "", "", oerrors.NewConfigError(
			"directory can't be used as project name", target, "", "pass a project name",
		)
	}

	info, err := os.Stat(target)
	switch {
	case os.IsNotExist(err):
		return projectName, target, nil
	case err != nil:
		return "", "", oerrors.WrapIO(err, "reading "+target)
	case !info.IsDir():
		return "", "", oerrors.NewConfigError(
			"target directory appears to be an existing file", target, "", "",
		)
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return "", "", oerrors.WrapIO(err, "listing "+target)
	}
	if len(entries) == 0 {
		return projectName, target, nil
	}

	ok, err := c.Confirm(ctx,
		fmt.Sprintf("target directory %s already exists, clear it and continue?", target), false)
	if err != nil {
		return "", "", err
	}
	if !ok {
		return "", "", oerrors.Wrap(oerrors.ErrCancelled, "generation cancelled by user")
	}

	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(target, entry.Name())); err != nil {
			return "", "", oerrors.WrapIO(err, "clearing "+target)
		}
	}
	output.Debug("cleared target directory", "path", target, "entries", len(entries))

	return projectName, target, nil
}

// fetchTemplate clones or updates the remote url into the cache and returns
// the local template directory.
func fetchTemplate(ctx context.Context, cfg *config.Config, url, folder string) (string, error) {
	cacheRoot, err := config.EnsureCacheDir()
	if err != nil {
		return "", oerrors.WrapIO(err, "creating cache directory")
	}

	dir, err := repo.CacheDir(cacheRoot, url)
	if err != nil {
		return "", err
	}

	err = output.RunWithSpinner(ctx, fmt.Sprintf("Fetching %s", url), func() error {
		return repo.CloneOrUpdate(ctx, url, dir, repo.Options{SSHKey: cfg.Git.SSHKey})
	})
	if err != nil {
		return "", fmt.Errorf("fetching template: %w", err)
	}

	return joinFolder(dir, folder), nil
}

func joinFolder(dir, folder string) string {
	if folder == "" {
		return dir
	}
	return filepath.Join(dir, filepath.FromSlash(folder))
}

// projectNameArg returns the optional project name argument at index i.
func projectNameArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}

// runGenerate wraps generate with config loading and error reporting.
func runGenerate(cmd *cobra.Command, resolve func(*config.Config) (generateRequest, error)) error {
	cfg, err := loadedConfig()
	if err != nil {
		return reportError(err)
	}

	req, err := resolve(cfg)
	if err != nil {
		return reportError(err)
	}

	return reportError(generate(cmd.Context(), cfg, req, newPrompter()))
}
