// Package prompt asks the operator for setting values, either through
// interactive terminal forms or line by line from any reader.
package prompt

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dnaka91/cargo-hatch/internal/settings"
)

// ParseBool accepts y/yes/true and n/no/false in any case. Empty input yields
// def, or an error without one.
func ParseBool(input string, def *bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		if def != nil {
			return *def, nil
		}
		return false, errors.New("please answer yes or no")
	case "y", "yes", "true":
		return true, nil
	case "n", "no", "false":
		return false, nil
	default:
		return false, fmt.Errorf("%q is not a valid answer, use yes or no", input)
	}
}

// ParseString returns def for empty input when present, otherwise the input
// after checking it with the setting's validator.
func ParseString(input string, s settings.StringSetting) (string, error) {
	if input == "" && s.Default != nil {
		return *s.Default, nil
	}
	if err := s.Validator.Validate(input); err != nil {
		return "", err
	}
	return input, nil
}

// ParseNumber parses an integer within [min, max].
func ParseNumber(input string, s settings.NumberSetting) (int64, error) {
	return parseRanged(input, s.Min, s.Max, s.Default, func(v string) (int64, error) {
		return strconv.ParseInt(v, 10, 64)
	})
}

// ParseFloat parses a float within [min, max].
func ParseFloat(input string, s settings.FloatSetting) (float64, error) {
	return parseRanged(input, s.Min, s.Max, s.Default, func(v string) (float64, error) {
		return strconv.ParseFloat(v, 64)
	})
}

// parseRanged checks inclusively on both ends, unlike load-time validation.
func parseRanged[T cmp.Ordered](input string, min, max T, def *T, parse func(string) (T, error)) (T, error) {
	var zero T

	input = strings.TrimSpace(input)
	if input == "" {
		if def != nil {
			return *def, nil
		}
		return zero, errors.New("a value is required")
	}

	v, err := parse(input)
	if err != nil {
		return zero, fmt.Errorf("%q is not a valid number", input)
	}
	if !(v >= min && v <= max) {
		return zero, fmt.Errorf("value must be between %v and %v", min, max)
	}
	return v, nil
}

// ParseChoice picks one of values by 1-based index or by name. Empty input
// picks def, or the first value without one.
func ParseChoice(input string, values settings.OrderedSet, def *string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		if def != nil {
			return *def, nil
		}
		if values.Len() > 0 {
			return values.Values()[0], nil
		}
		return "", errors.New("no values to choose from")
	}
	return lookupChoice(input, values)
}

// ParseChoices picks any subset of values from a comma separated list of
// indices or names. Empty input keeps def and "-" selects nothing. The result
// follows the declared order.
func ParseChoices(input string, values settings.OrderedSet, def []string) ([]string, error) {
	input = strings.TrimSpace(input)
	switch input {
	case "":
		return values.Sort(def), nil
	case "-":
		return []string{}, nil
	}

	var chosen []string
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := lookupChoice(part, values)
		if err != nil {
			return nil, err
		}
		chosen = append(chosen, v)
	}
	return values.Sort(chosen), nil
}

func lookupChoice(input string, values settings.OrderedSet) (string, error) {
	if values.Contains(input) {
		return input, nil
	}
	if i, err := strconv.Atoi(input); err == nil && i >= 1 && i <= values.Len() {
		return values.Values()[i-1], nil
	}
	return "", fmt.Errorf("%q is not one of the available options", input)
}
