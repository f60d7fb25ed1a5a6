package settings

import (
	"cmp"
	"errors"
)

// Validate checks the structural invariants of the setting's type.
func (s Setting) Validate() error {
	switch t := s.Type.(type) {
	case BoolSetting, StringSetting:
		return nil
	case NumberSetting:
		return validateRange(t.Min, t.Max, t.Default)
	case FloatSetting:
		return validateRange(t.Min, t.Max, t.Default)
	case ListSetting:
		if t.Default != nil && !t.Values.Contains(*t.Default) {
			return errors.New("default value isn't part of the possible values")
		}
		return nil
	case MultiListSetting:
		for _, d := range t.Default {
			if !t.Values.Contains(d) {
				return errors.New("one of the default values isn't part of the possible values")
			}
		}
		return nil
	case nil:
		return errors.New("missing setting type")
	default:
		return errors.New("unknown setting type")
	}
}

// validateRange requires min < max and a default within [min, max). The
// upper bound is exclusive here, unlike the inclusive check on user input.
func validateRange[T cmp.Ordered](min, max T, def *T) error {
	if min >= max {
		return errors.New("minimum is greater or equal the maximum value")
	}
	if def != nil && (*def < min || *def >= max) {
		return errors.New("default value is not within the min/max range")
	}
	return nil
}
