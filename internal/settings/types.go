// Package settings loads and validates the settings a template declares in its
// .hatch.toml and resolves them into a rendering context.
package settings

// FileName is the template-local configuration file.
const FileName = ".hatch.toml"

// Kind names a setting variant as written in the `type` field.
type Kind string

const (
	KindBool      Kind = "bool"
	KindString    Kind = "string"
	KindNumber    Kind = "number"
	KindFloat     Kind = "float"
	KindList      Kind = "list"
	KindMultiList Kind = "multi_list"
)

// Setting is a single named question a template asks.
type Setting struct {
	// Name is the context key the answer is stored under.
	Name string

	// Description is shown as the prompt.
	Description string

	// Condition, when non-empty, must evaluate truthy for the setting to be
	// asked at all.
	Condition string

	Type SettingType
}

// SettingType is the closed set of setting variants: BoolSetting,
// StringSetting, NumberSetting, FloatSetting, ListSetting and
// MultiListSetting.
type SettingType interface {
	Kind() Kind
	settingType()
}

// BoolSetting is a yes/no question.
type BoolSetting struct {
	Default *bool
}

// StringSetting is a free text question checked by Validator.
type StringSetting struct {
	Default   *string
	Validator StringValidator
}

// NumberSetting asks for an integer within Min and Max.
type NumberSetting struct {
	Min     int64
	Max     int64
	Default *int64
}

// FloatSetting asks for a float within Min and Max.
type FloatSetting struct {
	Min     float64
	Max     float64
	Default *float64
}

// ListSetting asks for exactly one of Values.
type ListSetting struct {
	Values  OrderedSet
	Default *string
}

// MultiListSetting asks for any subset of Values.
type MultiListSetting struct {
	Values  OrderedSet
	Default []string
}

func (BoolSetting) Kind() Kind      { return KindBool }
func (StringSetting) Kind() Kind    { return KindString }
func (NumberSetting) Kind() Kind    { return KindNumber }
func (FloatSetting) Kind() Kind     { return KindFloat }
func (ListSetting) Kind() Kind      { return KindList }
func (MultiListSetting) Kind() Kind { return KindMultiList }

func (BoolSetting) settingType()      {}
func (StringSetting) settingType()    {}
func (NumberSetting) settingType()    {}
func (FloatSetting) settingType()     {}
func (ListSetting) settingType()      {}
func (MultiListSetting) settingType() {}

// CrateType is the kind of crate a template produces.
type CrateType string

const (
	CrateBin CrateType = "bin"
	CrateLib CrateType = "lib"
)

// Scope selects which stage an ignore rule affects.
type Scope string

const (
	// ScopeAll removes matching files from the output entirely.
	ScopeAll Scope = "all"

	// ScopeTemplate copies matching files verbatim instead of rendering them.
	ScopeTemplate Scope = "template"

	// ScopeRender renders matching files even if they look binary.
	ScopeRender Scope = "render"
)

// IgnoreRule is an entry of the `ignore` list in .hatch.toml.
type IgnoreRule struct {
	Paths     []string
	Condition string
	Scope     Scope
}

// RepoSettings is the parsed .hatch.toml of a template.
type RepoSettings struct {
	// CrateType is nil when the template leaves the choice to the user.
	CrateType *CrateType

	Ignore []IgnoreRule

	// Settings in declaration order, which is also the prompt order.
	Settings []Setting
}

// Names returns the setting names in declaration order.
func (r *RepoSettings) Names() []string {
	names := make([]string, len(r.Settings))
	for i, s := range r.Settings {
		names[i] = s.Name
	}
	return names
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
