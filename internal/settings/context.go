package settings

import (
	"context"
	"fmt"

	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
	"github.com/dnaka91/cargo-hatch/internal/output"
	"github.com/dnaka91/cargo-hatch/internal/vars"
)

// Builtins are the values every template context starts with.
type Builtins struct {
	ProjectName string
	GitName     string
	GitEmail    string
}

var crateTypes = MustOrderedSet(string(CrateBin), string(CrateLib))

// NewContext creates the rendering context with the builtin keys. When the
// template does not fix a crate type, the operator is asked for one.
func NewContext(ctx context.Context, rs *RepoSettings, b Builtins, p Prompter) (*vars.Context, error) {
	if b.GitName == "" || b.GitEmail == "" {
		return nil, oerrors.NewConfigError(
			"git author name and email are required",
			"", "user.name/user.email",
			"set them with 'git config --global user.name' and 'user.email', or under [git] in the settings file",
		)
	}

	crateType, err := chooseCrateType(ctx, rs, p)
	if err != nil {
		return nil, err
	}

	vc := vars.New()
	vc.Declare(rs.Names()...)

	entries := []struct {
		key   string
		value any
	}{
		{vars.KeyProjectName, b.ProjectName},
		{vars.KeyGitAuthor, fmt.Sprintf("%s <%s>", b.GitName, b.GitEmail)},
		{vars.KeyGitName, b.GitName},
		{vars.KeyGitEmail, b.GitEmail},
		{vars.KeyCrateType, string(crateType)},
		{vars.KeyCrateBin, crateType == CrateBin},
		{vars.KeyCrateLib, crateType == CrateLib},
	}
	for _, e := range entries {
		if err := vc.Insert(e.key, e.value); err != nil {
			return nil, err
		}
	}

	return vc, nil
}

func chooseCrateType(ctx context.Context, rs *RepoSettings, p Prompter) (CrateType, error) {
	if rs.CrateType != nil {
		return *rs.CrateType, nil
	}

	choice, err := p.List(ctx, "what crate type would you like to create?", ListSetting{Values: crateTypes})
	if err != nil {
		return "", err
	}
	return CrateType(choice), nil
}

// FillContext resolves every setting in declaration order and inserts the
// answers into vc. Settings whose condition is falsy are skipped and never
// prompted. The context is frozen afterwards.
func FillContext(
	ctx context.Context,
	vc *vars.Context,
	settings []Setting,
	defaults map[string]DefaultSetting,
	p Prompter,
) error {
	used := make(map[string]bool, len(defaults))

	for _, s := range settings {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", oerrors.ErrCancelled, err)
		}

		if s.Condition != "" {
			active, err := vc.Eval(s.Condition)
			if err != nil {
				return fmt.Errorf("setting `%s`: %w", s.Name, err)
			}
			if !active {
				output.Debug("skipping setting", "name", s.Name, "condition", s.Condition)
				continue
			}
		}

		var def *DefaultSetting
		if d, ok := defaults[s.Name]; ok {
			def = &d
			used[s.Name] = true
		}

		value, err := Resolve(ctx, s, def, p)
		if err != nil {
			return fmt.Errorf("setting `%s`: %w", s.Name, err)
		}

		if err := vc.Insert(s.Name, value); err != nil {
			return err
		}
	}

	for name := range defaults {
		if !used[name] {
			output.Debug("bookmark default not used by template", "name", name)
		}
	}

	vc.Freeze()
	return nil
}
