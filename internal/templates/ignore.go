package templates

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
	"github.com/dnaka91/cargo-hatch/internal/output"
	"github.com/dnaka91/cargo-hatch/internal/settings"
	"github.com/dnaka91/cargo-hatch/internal/vars"
)

// matcher is the union of the glob patterns of all active rules in a scope.
type matcher []string

func (m matcher) Match(name string) bool {
	for _, pattern := range m {
		// patterns are validated when the matcher is built
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// buildMatchers evaluates every rule's condition and groups the patterns of
// the active ones by scope.
func buildMatchers(rules []settings.IgnoreRule, vc *vars.Context) (map[settings.Scope]matcher, error) {
	matchers := make(map[settings.Scope]matcher, 3)

	for i, rule := range rules {
		if rule.Condition != "" {
			active, err := vc.Eval(rule.Condition)
			if err != nil {
				return nil, fmt.Errorf("ignore rule %d: %w", i, err)
			}
			if !active {
				output.Debug("ignore rule inactive", "rule", i, "condition", rule.Condition)
				continue
			}
		}

		for _, p := range rule.Paths {
			pattern := strings.TrimPrefix(p, "./")
			if !doublestar.ValidatePattern(pattern) {
				return nil, oerrors.NewConfigError(
					fmt.Sprintf("ignore rule %d: invalid glob pattern %q", i, p),
					settings.FileName, "ignore", "",
				)
			}
			matchers[rule.Scope] = append(matchers[rule.Scope], pattern)
		}
	}

	return matchers, nil
}

// ApplyIgnoreRules reclassifies files according to the active rules. A match
// in scope "all" skips the file, otherwise "template" forces a verbatim copy
// and "render" forces rendering. Files matching nothing keep their class.
func ApplyIgnoreRules(files []RepoFile, rules []settings.IgnoreRule, vc *vars.Context) ([]RepoFile, error) {
	matchers, err := buildMatchers(rules, vc)
	if err != nil {
		return nil, err
	}

	out := make([]RepoFile, len(files))
	for i, f := range files {
		before := f.Class

		switch {
		case matchers[settings.ScopeAll].Match(f.Name):
			f.Class = Skip
		case matchers[settings.ScopeTemplate].Match(f.Name):
			f.Class = CopyVerbatim
		case matchers[settings.ScopeRender].Match(f.Name):
			f.Class = Template
		}

		if f.Class != before {
			output.Debug("file reclassified", "file", f.Name, "from", before, "to", f.Class)
		}
		out[i] = f
	}

	return out, nil
}
