package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/dnaka91/cargo-hatch/internal/settings"
)

func (p *Prompter) runForm(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithInput(p.in).
		WithOutput(p.out).
		WithShowHelp(true)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) ||
			errors.Is(err, context.DeadlineExceeded) || errors.Is(err, huh.ErrTimeout) {
			return cancelled(err)
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

// formInput shows a text input that only accepts answers parse agrees with.
func formInput[T any](
	ctx context.Context,
	p *Prompter,
	description, hint, def string,
	parse func(string) (T, error),
) (T, error) {
	var (
		zero  T
		value string
	)

	input := huh.NewInput().
		Title(description).
		Description(hint).
		Placeholder(def).
		Value(&value).
		Validate(func(s string) error {
			_, err := parse(s)
			return err
		})

	if err := p.runForm(ctx, input); err != nil {
		return zero, err
	}
	return parse(value)
}

// formSelect places the cursor on the default, or the first entry.
func (p *Prompter) formSelect(ctx context.Context, description string, s settings.ListSetting) (string, error) {
	values := s.Values.Values()
	if len(values) == 0 {
		return "", errors.New("no values to choose from")
	}

	choice := values[0]
	if s.Default != nil {
		choice = *s.Default
	}

	sel := huh.NewSelect[string]().
		Title(description).
		Options(huh.NewOptions(values...)...).
		Value(&choice)

	if err := p.runForm(ctx, sel); err != nil {
		return "", err
	}
	return choice, nil
}

func (p *Prompter) formMultiSelect(ctx context.Context, description string, s settings.MultiListSetting) ([]string, error) {
	preselected := make(map[string]bool, len(s.Default))
	for _, d := range s.Default {
		preselected[d] = true
	}

	options := make([]huh.Option[string], 0, s.Values.Len())
	for _, v := range s.Values.Values() {
		options = append(options, huh.NewOption(v, v).Selected(preselected[v]))
	}

	var chosen []string
	sel := huh.NewMultiSelect[string]().
		Title(description).
		Options(options...).
		Value(&chosen)

	if err := p.runForm(ctx, sel); err != nil {
		return nil, err
	}
	return s.Values.Sort(chosen), nil
}

func (p *Prompter) formConfirm(ctx context.Context, question string, def bool) (bool, error) {
	confirmed := def
	confirm := huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	if err := p.runForm(ctx, confirm); err != nil {
		return false, err
	}
	return confirmed, nil
}
