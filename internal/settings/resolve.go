package settings

import (
	"context"
	"fmt"

	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
)

// Resolve determines the value of s, consulting def and p as needed. The
// result is bool, string, int64, float64 or []string depending on the type.
func Resolve(ctx context.Context, s Setting, def *DefaultSetting, p Prompter) (any, error) {
	switch t := s.Type.(type) {
	case BoolSetting:
		return resolve(t, def, defaultBool,
			func(t BoolSetting, v bool) BoolSetting { t.Default = &v; return t },
			func(t BoolSetting) (bool, error) { return p.Bool(ctx, s.Description, t) },
		)

	case StringSetting:
		return resolve(t, def, defaultString(KindString),
			func(t StringSetting, v string) StringSetting { t.Default = &v; return t },
			func(t StringSetting) (string, error) { return p.String(ctx, s.Description, t) },
		)

	case NumberSetting:
		return resolve(t, def, defaultNumber,
			func(t NumberSetting, v int64) NumberSetting { t.Default = &v; return t },
			func(t NumberSetting) (int64, error) { return p.Number(ctx, s.Description, t) },
		)

	case FloatSetting:
		return resolve(t, def, defaultFloat,
			func(t FloatSetting, v float64) FloatSetting { t.Default = &v; return t },
			func(t FloatSetting) (float64, error) { return p.Float(ctx, s.Description, t) },
		)

	case ListSetting:
		load := func(v any) (string, error) {
			str, err := defaultString(KindList)(v)
			if err != nil {
				return "", err
			}
			if !t.Values.Contains(str) {
				return "", oerrors.Wrap(oerrors.ErrConfig,
					fmt.Sprintf("default value %q isn't part of the possible values", str))
			}
			return str, nil
		}
		return resolve(t, def, load,
			func(t ListSetting, v string) ListSetting { t.Default = &v; return t },
			func(t ListSetting) (string, error) { return p.List(ctx, s.Description, t) },
		)

	case MultiListSetting:
		load := func(v any) ([]string, error) {
			values, err := defaultMultiList(v)
			if err != nil {
				return nil, err
			}
			for _, value := range values {
				if !t.Values.Contains(value) {
					return nil, oerrors.Wrap(oerrors.ErrConfig,
						fmt.Sprintf("default value %q isn't part of the possible values", value))
				}
			}
			return t.Values.Sort(values), nil
		}
		return resolve(t, def, load,
			func(t MultiListSetting, v []string) MultiListSetting { t.Default = v; return t },
			func(t MultiListSetting) ([]string, error) { return p.MultiList(ctx, s.Description, t) },
		)

	default:
		return nil, oerrors.Wrap(oerrors.ErrConfig, fmt.Sprintf("setting %q has no type", s.Name))
	}
}
