package settings

import "context"

// Prompter asks the operator for the value of one setting. Implementations
// loop on invalid input and return an error wrapping errors.ErrCancelled when
// the operator aborts.
type Prompter interface {
	Bool(ctx context.Context, description string, s BoolSetting) (bool, error)
	String(ctx context.Context, description string, s StringSetting) (string, error)
	Number(ctx context.Context, description string, s NumberSetting) (int64, error)
	Float(ctx context.Context, description string, s FloatSetting) (float64, error)
	List(ctx context.Context, description string, s ListSetting) (string, error)
	MultiList(ctx context.Context, description string, s MultiListSetting) ([]string, error)
}

// Confirmer asks a yes/no question outside of template settings.
type Confirmer interface {
	Confirm(ctx context.Context, question string, def bool) (bool, error)
}
