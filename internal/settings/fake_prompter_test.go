package settings

import (
	"context"
	"fmt"
)

// fakePrompter answers prompts from a queue and records what it was asked.
type fakePrompter struct {
	answers map[string]any
	asked   []string
	seen    map[string]SettingType
}

func newFakePrompter(answers map[string]any) *fakePrompter {
	return &fakePrompter{answers: answers, seen: map[string]SettingType{}}
}

func (f *fakePrompter) answer(description string, s SettingType) (any, error) {
	f.asked = append(f.asked, description)
	f.seen[description] = s
	v, ok := f.answers[description]
	if !ok {
		return nil, fmt.Errorf("unexpected prompt %q", description)
	}
	if err, ok := v.(error); ok {
		return nil, err
	}
	return v, nil
}

func (f *fakePrompter) Bool(_ context.Context, d string, s BoolSetting) (bool, error) {
	v, err := f.answer(d, s)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func (f *fakePrompter) String(_ context.Context, d string, s StringSetting) (string, error) {
	v, err := f.answer(d, s)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (f *fakePrompter) Number(_ context.Context, d string, s NumberSetting) (int64, error) {
	v, err := f.answer(d, s)
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}

func (f *fakePrompter) Float(_ context.Context, d string, s FloatSetting) (float64, error) {
	v, err := f.answer(d, s)
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

func (f *fakePrompter) List(_ context.Context, d string, s ListSetting) (string, error) {
	v, err := f.answer(d, s)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (f *fakePrompter) MultiList(_ context.Context, d string, s MultiListSetting) ([]string, error) {
	v, err := f.answer(d, s)
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}
