package settings

import (
	"errors"
	"fmt"
	"regexp"
	"unicode"

	"github.com/Masterminds/semver/v3"
)

// ValidatorKind selects the rule a StringValidator applies.
type ValidatorKind int

const (
	// ValidateRequired accepts any non-empty string.
	ValidateRequired ValidatorKind = iota

	// ValidateCrate accepts crates.io package names.
	ValidateCrate

	// ValidateIdent accepts Rust identifiers.
	ValidateIdent

	// ValidateSemVer accepts semantic versions.
	ValidateSemVer

	// ValidateSemVerReq accepts semantic version requirements.
	ValidateSemVerReq

	// ValidateRegex accepts strings matching Pattern.
	ValidateRegex
)

const maxCrateNameLength = 64

// StringValidator describes which strings a StringSetting accepts. The zero
// value is ValidateRequired.
type StringValidator struct {
	Kind    ValidatorKind
	Pattern *regexp.Regexp
}

// RegexValidator compiles pattern into a StringValidator.
func RegexValidator(pattern string) (StringValidator, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return StringValidator{}, err
	}
	return StringValidator{Kind: ValidateRegex, Pattern: re}, nil
}

// String returns a short description shown next to prompts.
func (v StringValidator) String() string {
	switch v.Kind {
	case ValidateCrate:
		return "crate name"
	case ValidateIdent:
		return "identifier"
	case ValidateSemVer:
		return "semantic version"
	case ValidateSemVerReq:
		return "version requirement"
	case ValidateRegex:
		return fmt.Sprintf("matching `%s`", v.Pattern)
	default:
		return "required"
	}
}

// Validate returns nil if input is acceptable, otherwise the reason.
func (v StringValidator) Validate(input string) error {
	switch v.Kind {
	case ValidateCrate:
		if !isCrateName(input) {
			return errors.New("value must be a valid crate name")
		}
	case ValidateIdent:
		if !isIdent(input) {
			return errors.New("value must be a valid Rust identifier")
		}
	case ValidateSemVer:
		if _, err := semver.StrictNewVersion(input); err != nil {
			return fmt.Errorf("value is not a valid semantic version: %w", err)
		}
	case ValidateSemVerReq:
		if input == "" {
			return errors.New("value is not a valid semantic version requirement: empty")
		}
		if _, err := semver.NewConstraint(input); err != nil {
			return fmt.Errorf("value is not a valid semantic version requirement: %w", err)
		}
	case ValidateRegex:
		if v.Pattern == nil || !v.Pattern.MatchString(input) {
			return fmt.Errorf("value must match regex pattern `%s`", v.Pattern)
		}
	default:
		if input == "" {
			return errors.New("a response is required")
		}
	}
	return nil
}

func isCrateName(input string) bool {
	runes := []rune(input)
	if len(runes) == 0 || len(runes) > maxCrateNameLength {
		return false
	}
	if !unicode.IsLetter(runes[0]) {
		return false
	}
	for _, r := range runes {
		if !(isASCIIAlnum(r) || r == '_' || r == '-') {
			return false
		}
	}
	return true
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// isIdent approximates XID_Start/XID_Continue with the Unicode letter and
// digit classes. A leading underscore needs at least one more character.
func isIdent(input string) bool {
	runes := []rune(input)
	if len(runes) == 0 || rustKeywords[input] {
		return false
	}

	first := runes[0]
	switch {
	case first == '_':
		if len(runes) < 2 {
			return false
		}
	case !unicode.IsLetter(first):
		return false
	}

	for _, r := range runes[1:] {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Pc, r)) {
			return false
		}
	}
	return true
}

var rustKeywords = map[string]bool{
	"as": true, "break": true, "const": true, "continue": true, "crate": true,
	"else": true, "enum": true, "extern": true, "false": true, "fn": true,
	"for": true, "if": true, "impl": true, "in": true, "let": true,
	"loop": true, "match": true, "mod": true, "move": true, "mut": true,
	"pub": true, "ref": true, "return": true, "self": true, "Self": true,
	"static": true, "struct": true, "super": true, "trait": true, "true": true,
	"type": true, "unsafe": true, "use": true, "where": true, "while": true,
	"async": true, "await": true, "dyn": true, "abstract": true, "become": true,
	"box": true, "do": true, "final": true, "macro": true, "override": true,
	"priv": true, "typeof": true, "unsized": true, "virtual": true, "yield": true,
	"try": true,
}
