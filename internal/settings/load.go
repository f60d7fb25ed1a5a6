package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
	"github.com/samber/lo"

	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
	"github.com/dnaka91/cargo-hatch/internal/output"
	"github.com/dnaka91/cargo-hatch/internal/vars"
)

const (
	keyCrateType = "crate_type"
	keyIgnore    = "ignore"
)

// Load reads and validates the .hatch.toml in dir.
func Load(dir string) (*RepoSettings, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError(
				"template has no "+FileName,
				path,
				"run 'cargo-hatch init' in the template directory to create one",
			)
		}
		return nil, oerrors.WrapIO(err, "reading "+path)
	}

	settings, err := Parse(data, path)
	if err != nil {
		return nil, err
	}

	output.Debug("loaded template settings",
		"path", path,
		"settings", len(settings.Settings),
		"ignore_rules", len(settings.Ignore),
	)
	return settings, nil
}

// Parse decodes .hatch.toml content. location is only used in errors.
// Every setting is validated; the first invalid one fails the whole load.
func Parse(data []byte, location string) (*RepoSettings, error) {
	order, err := topLevelOrder(data)
	if err != nil {
		return nil, oerrors.NewConfigError(err.Error(), location, "", "check the TOML syntax")
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, oerrors.NewConfigError(err.Error(), location, "", "check the TOML syntax")
	}

	rs := &RepoSettings{}

	if v, ok := raw[keyCrateType]; ok {
		ct, err := parseCrateType(v)
		if err != nil {
			return nil, oerrors.NewConfigError(err.Error(), location, keyCrateType, `use "bin" or "lib"`)
		}
		rs.CrateType = &ct
	}

	if v, ok := raw[keyIgnore]; ok {
		rules, err := parseIgnoreRules(v)
		if err != nil {
			return nil, oerrors.NewConfigError(err.Error(), location, keyIgnore, "")
		}
		rs.Ignore = rules
	}

	for _, name := range order {
		if name == keyCrateType || name == keyIgnore {
			continue
		}
		if vars.IsBuiltin(name) {
			return nil, oerrors.NewConfigError(
				fmt.Sprintf("invalid setting `%s`: name is reserved for a builtin value", name),
				location, name, "rename the setting",
			)
		}
		if vars.IsFuncName(name) {
			return nil, oerrors.NewConfigError(
				fmt.Sprintf("invalid setting `%s`: name is reserved for a template function", name),
				location, name, "rename the setting",
			)
		}

		table, ok := raw[name].(map[string]any)
		if !ok {
			return nil, oerrors.NewConfigError(
				fmt.Sprintf("invalid setting `%s`: expected a table, got %T", name, raw[name]),
				location, name, "",
			)
		}

		setting, err := parseSetting(name, table)
		if err != nil {
			return nil, oerrors.NewConfigError(
				fmt.Sprintf("invalid setting `%s`: %v", name, err), location, name, "",
			)
		}

		if err := setting.Validate(); err != nil {
			return nil, oerrors.NewConfigError(
				fmt.Sprintf("invalid setting `%s`: %v", name, err), location, name, "",
			)
		}

		rs.Settings = append(rs.Settings, setting)
	}

	return rs, nil
}

// topLevelOrder returns the top-level keys in the order they first appear.
// Plain map decoding loses that order, and it is the prompt order.
func topLevelOrder(data []byte) ([]string, error) {
	var (
		p       unstable.Parser
		order   []string
		inTable bool
	)

	p.Reset(data)
	for p.NextExpression() {
		e := p.Expression()

		switch e.Kind {
		case unstable.Table, unstable.ArrayTable:
			inTable = true
		case unstable.KeyValue:
			if inTable {
				continue
			}
		default:
			continue
		}

		it := e.Key()
		if it.Next() {
			order = append(order, string(it.Node().Data))
		}
	}
	if err := p.Error(); err != nil {
		return nil, err
	}

	return lo.Uniq(order), nil
}

func parseCrateType(v any) (CrateType, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("crate_type must be a string, got %T", v)
	}
	switch ct := CrateType(strings.ToLower(s)); ct {
	case CrateBin, CrateLib:
		return ct, nil
	default:
		return "", fmt.Errorf("unknown crate_type %q", s)
	}
}

type rawIgnore struct {
	Paths     []string `mapstructure:"paths"`
	Condition string   `mapstructure:"condition"`
	Scope     string   `mapstructure:"scope"`
}

func parseIgnoreRules(v any) ([]IgnoreRule, error) {
	var raws []rawIgnore
	if err := decode(v, &raws); err != nil {
		return nil, err
	}

	rules := make([]IgnoreRule, 0, len(raws))
	for i, r := range raws {
		scope := Scope(strings.ToLower(r.Scope))
		switch scope {
		case "":
			scope = ScopeAll
		case ScopeAll, ScopeTemplate, ScopeRender:
		default:
			return nil, fmt.Errorf("ignore rule %d: unknown scope %q", i, r.Scope)
		}

		if len(r.Paths) == 0 {
			return nil, fmt.Errorf("ignore rule %d: no paths", i)
		}

		rules = append(rules, IgnoreRule{
			Paths:     r.Paths,
			Condition: r.Condition,
			Scope:     scope,
		})
	}
	return rules, nil
}

type (
	boolFields struct {
		Default *bool `mapstructure:"default"`
	}
	stringFields struct {
		Default   *string `mapstructure:"default"`
		Validator any     `mapstructure:"validator"`
	}
	numberFields struct {
		Min     *int64 `mapstructure:"min"`
		Max     *int64 `mapstructure:"max"`
		Default *int64 `mapstructure:"default"`
	}
	floatFields struct {
		Min     *float64 `mapstructure:"min"`
		Max     *float64 `mapstructure:"max"`
		Default *float64 `mapstructure:"default"`
	}
	listFields struct {
		Values  []string `mapstructure:"values"`
		Default *string  `mapstructure:"default"`
	}
	multiListFields struct {
		Values  []string `mapstructure:"values"`
		Default []string `mapstructure:"default"`
	}
)

func parseSetting(name string, table map[string]any) (Setting, error) {
	fields := make(map[string]any, len(table))
	for k, v := range table {
		fields[k] = v
	}

	description, err := takeString(fields, "description", true)
	if err != nil {
		return Setting{}, err
	}
	condition, err := takeString(fields, "condition", false)
	if err != nil {
		return Setting{}, err
	}
	kind, err := takeString(fields, "type", true)
	if err != nil {
		return Setting{}, err
	}

	setting := Setting{Name: name, Description: description, Condition: condition}

	switch Kind(kind) {
	case KindBool:
		var f boolFields
		if err := decode(fields, &f); err != nil {
			return Setting{}, err
		}
		setting.Type = BoolSetting{Default: f.Default}

	case KindString:
		var f stringFields
		if err := decode(fields, &f); err != nil {
			return Setting{}, err
		}
		validator, err := parseValidator(f.Validator)
		if err != nil {
			return Setting{}, err
		}
		setting.Type = StringSetting{Default: f.Default, Validator: validator}

	case KindNumber:
		var f numberFields
		if err := decode(fields, &f); err != nil {
			return Setting{}, err
		}
		if f.Min == nil || f.Max == nil {
			return Setting{}, fmt.Errorf("number settings need both min and max")
		}
		setting.Type = NumberSetting{Min: *f.Min, Max: *f.Max, Default: f.Default}

	case KindFloat:
		var f floatFields
		if err := decode(fields, &f); err != nil {
			return Setting{}, err
		}
		if f.Min == nil || f.Max == nil {
			return Setting{}, fmt.Errorf("float settings need both min and max")
		}
		setting.Type = FloatSetting{Min: *f.Min, Max: *f.Max, Default: f.Default}

	case KindList:
		var f listFields
		if err := decode(fields, &f); err != nil {
			return Setting{}, err
		}
		values, err := NewOrderedSet(f.Values...)
		if err != nil {
			return Setting{}, err
		}
		if values.Len() == 0 {
			return Setting{}, fmt.Errorf("list settings need at least one value")
		}
		setting.Type = ListSetting{Values: values, Default: f.Default}

	case KindMultiList:
		var f multiListFields
		if err := decode(fields, &f); err != nil {
			return Setting{}, err
		}
		values, err := NewOrderedSet(f.Values...)
		if err != nil {
			return Setting{}, err
		}
		if values.Len() == 0 {
			return Setting{}, fmt.Errorf("multi_list settings need at least one value")
		}
		setting.Type = MultiListSetting{Values: values, Default: lo.Uniq(f.Default)}

	default:
		return Setting{}, fmt.Errorf("unknown type %q", kind)
	}

	return setting, nil
}

// parseValidator accepts "crate", "ident", "semver", "semver_req" or a
// table {regex = "<pattern>"}.
func parseValidator(v any) (StringValidator, error) {
	switch val := v.(type) {
	case nil:
		return StringValidator{}, nil
	case string:
		switch val {
		case "crate":
			return StringValidator{Kind: ValidateCrate}, nil
		case "ident":
			return StringValidator{Kind: ValidateIdent}, nil
		case "semver":
			return StringValidator{Kind: ValidateSemVer}, nil
		case "semver_req":
			return StringValidator{Kind: ValidateSemVerReq}, nil
		case "required":
			return StringValidator{}, nil
		default:
			return StringValidator{}, fmt.Errorf("unknown validator %q", val)
		}
	case map[string]any:
		pattern, ok := val["regex"].(string)
		if !ok || len(val) != 1 {
			return StringValidator{}, fmt.Errorf("validator table must contain exactly a `regex` string")
		}
		sv, err := RegexValidator(pattern)
		if err != nil {
			return StringValidator{}, fmt.Errorf("invalid validator regex: %w", err)
		}
		return sv, nil
	default:
		return StringValidator{}, fmt.Errorf("invalid validator of type %T", v)
	}
}

func takeString(fields map[string]any, key string, required bool) (string, error) {
	v, ok := fields[key]
	if !ok {
		if required {
			return "", fmt.Errorf("missing field `%s`", key)
		}
		return "", nil
	}
	delete(fields, key)

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field `%s` must be a string, got %T", key, v)
	}
	return s, nil
}

func decode(input, result any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      result,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}
