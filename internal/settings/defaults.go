package settings

import (
	"fmt"
	"math"
	"reflect"

	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
)

// DefaultSetting is an externally supplied answer for a setting, usually
// from a bookmark in the global configuration.
type DefaultSetting struct {
	// Value must match the setting's type: bool, integer, float, string
	// (string and list settings) or a list of strings (multi_list).
	Value any `mapstructure:"value" json:"value" yaml:"value"`

	// SkipPrompt uses Value without asking. Otherwise Value only pre-fills
	// the prompt.
	SkipPrompt bool `mapstructure:"skip_prompt" json:"skip_prompt,omitempty" yaml:"skip_prompt,omitempty"`
}

func mismatch(kind Kind, v any) error {
	return oerrors.Wrap(oerrors.ErrConfig,
		fmt.Sprintf("invalid default value for %s setting (%v of type %T)", kind, v, v))
}

func defaultBool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, mismatch(KindBool, v)
	}
	return b, nil
}

func defaultString(kind Kind) func(any) (string, error) {
	return func(v any) (string, error) {
		s, ok := v.(string)
		if !ok {
			return "", mismatch(kind, v)
		}
		return s, nil
	}
}

func defaultNumber(v any) (int64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, mismatch(KindNumber, v)
		}
		return int64(u), nil
	default:
		return 0, mismatch(KindNumber, v)
	}
}

func defaultFloat(v any) (float64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	default:
		return 0, mismatch(KindFloat, v)
	}
}

func defaultMultiList(v any) ([]string, error) {
	switch val := v.(type) {
	case []string:
		return val, nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, mismatch(KindMultiList, v)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, mismatch(KindMultiList, v)
	}
}

// resolve applies the default policy: without a default, prompt with the
// declared default; with skip_prompt, use the default as is; otherwise seed
// the declared default with it and prompt.
func resolve[S any, R any](
	setting S,
	def *DefaultSetting,
	load func(any) (R, error),
	seed func(S, R) S,
	prompt func(S) (R, error),
) (R, error) {
	if def == nil {
		return prompt(setting)
	}

	value, err := load(def.Value)
	if err != nil {
		var zero R
		return zero, err
	}

	if def.SkipPrompt {
		return value, nil
	}
	return prompt(seed(setting, value))
}
