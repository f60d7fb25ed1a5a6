package prompt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnaka91/cargo-hatch/internal/settings"
)

func TestParseBool(t *testing.T) {
	yes := true

	tests := []struct {
		input   string
		def     *bool
		want    bool
		wantErr bool
	}{
		{"", &yes, true, false},
		{"", nil, false, true},
		{"y", nil, true, false},
		{"YES", nil, true, false},
		{"True", nil, true, false},
		{"n", &yes, false, false},
		{"No", nil, false, false},
		{"FALSE", nil, false, false},
		{"maybe", nil, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBool(tt.input, tt.def)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseString(t *testing.T) {
	plain := settings.StringSetting{}
	withDefault := settings.StringSetting{Default: settings.Ptr("fallback")}
	crate := settings.StringSetting{Validator: settings.StringValidator{Kind: settings.ValidateCrate}}

	got, err := ParseString("", withDefault)
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)

	_, err = ParseString("", plain)
	assert.Error(t, err)

	got, err = ParseString("tower-http", crate)
	require.NoError(t, err)
	assert.Equal(t, "tower-http", got)

	_, err = ParseString("?", crate)
	assert.Error(t, err)
}

func TestParseNumber_InclusiveRange(t *testing.T) {
	s := settings.NumberSetting{Min: 1, Max: 10, Default: settings.Ptr[int64](5)}

	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"", 5, false},
		{"1", 1, false},
		{"10", 10, false},
		{" 7 ", 7, false},
		{"0", 0, true},
		{"11", 0, true},
		{"abc", 0, true},
		{"1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseNumber(tt.input, s)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFloat(t *testing.T) {
	s := settings.FloatSetting{Min: 0, Max: 1}

	got, err := ParseFloat("1", s)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	_, err = ParseFloat("", s)
	assert.Error(t, err)

	_, err = ParseFloat("1.01", s)
	assert.Error(t, err)
}

func TestParseFloat_NonFinite(t *testing.T) {
	wide := settings.FloatSetting{Min: -math.MaxFloat64, Max: math.MaxFloat64}

	for _, input := range []string{"NaN", "nan", "+Inf", "-Inf", "inf"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseFloat(input, wide)
			assert.Error(t, err)
		})
	}
}

func TestParseChoice(t *testing.T) {
	values := settings.MustOrderedSet("MIT", "Apache-2.0", "GPL-3.0")

	tests := []struct {
		name    string
		input   string
		def     *string
		want    string
		wantErr bool
	}{
		{"empty uses default", "", settings.Ptr("GPL-3.0"), "GPL-3.0", false},
		{"empty uses first", "", nil, "MIT", false},
		{"by name", "Apache-2.0", nil, "Apache-2.0", false},
		{"by index", "3", nil, "GPL-3.0", false},
		{"index out of range", "4", nil, "", true},
		{"unknown", "BSD", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseChoice(tt.input, values, tt.def)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChoices_DeclaredOrder(t *testing.T) {
	values := settings.MustOrderedSet("linux", "macos", "windows")

	tests := []struct {
		name    string
		input   string
		def     []string
		want    []string
		wantErr bool
	}{
		{"empty keeps defaults", "", []string{"windows", "linux"}, []string{"linux", "windows"}, false},
		{"dash selects none", "-", []string{"linux"}, []string{}, false},
		{"selection order ignored", "windows, 1", nil, []string{"linux", "windows"}, false},
		{"duplicates collapse", "2,macos", nil, []string{"macos"}, false},
		{"unknown entry", "linux,bsd", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseChoices(tt.input, values, tt.def)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
