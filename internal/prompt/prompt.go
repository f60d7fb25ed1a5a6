package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
	"github.com/dnaka91/cargo-hatch/internal/output"
	"github.com/dnaka91/cargo-hatch/internal/settings"
)

// Prompter implements settings.Prompter and settings.Confirmer. With a
// terminal on both ends it shows interactive forms, otherwise it reads one
// answer per line.
//
// Line answers come from a single reader goroutine that lives until the input
// ends, so a read abandoned by cancellation hands its line to the next one.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
	tty    bool

	readOnce sync.Once
	lines    chan lineResult
}

type lineResult struct {
	line string
	err  error
}

var (
	_ settings.Prompter  = (*Prompter)(nil)
	_ settings.Confirmer = (*Prompter)(nil)
)

// New creates a Prompter that uses forms when in and out are terminals.
func New(in io.Reader, out io.Writer) *Prompter {
	p := NewLine(in, out)

	inFile, inOK := in.(*os.File)
	outFile, outOK := out.(*os.File)
	p.tty = inOK && outOK && output.IsTerminal(inFile) && output.IsTerminal(outFile)

	output.Debug("prompt mode", "interactive", p.tty)
	return p
}

// NewLine creates a Prompter that always reads answers line by line.
func NewLine(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
		lines:  make(chan lineResult),
	}
}

// Interactive reports whether terminal forms are used.
func (p *Prompter) Interactive() bool {
	return p.tty
}

// Bool asks a yes/no question.
func (p *Prompter) Bool(ctx context.Context, description string, s settings.BoolSetting) (bool, error) {
	def := ""
	if s.Default != nil {
		def = "no"
		if *s.Default {
			def = "yes"
		}
	}
	parse := func(in string) (bool, error) { return ParseBool(in, s.Default) }

	if p.tty {
		return formInput(ctx, p, description, "yes/no", def, parse)
	}
	return lineInput(ctx, p, description, "yes/no", def, parse)
}

// String asks for text accepted by the setting's validator.
func (p *Prompter) String(ctx context.Context, description string, s settings.StringSetting) (string, error) {
	def := ""
	if s.Default != nil {
		def = *s.Default
	}
	parse := func(in string) (string, error) { return ParseString(in, s) }

	if p.tty {
		return formInput(ctx, p, description, s.Validator.String(), def, parse)
	}
	return lineInput(ctx, p, description, s.Validator.String(), def, parse)
}

// Number asks for an integer.
func (p *Prompter) Number(ctx context.Context, description string, s settings.NumberSetting) (int64, error) {
	def := ""
	if s.Default != nil {
		def = fmt.Sprint(*s.Default)
	}
	hint := fmt.Sprintf("%d..%d", s.Min, s.Max)
	parse := func(in string) (int64, error) { return ParseNumber(in, s) }

	if p.tty {
		return formInput(ctx, p, description, hint, def, parse)
	}
	return lineInput(ctx, p, description, hint, def, parse)
}

// Float asks for a floating point number.
func (p *Prompter) Float(ctx context.Context, description string, s settings.FloatSetting) (float64, error) {
	def := ""
	if s.Default != nil {
		def = fmt.Sprint(*s.Default)
	}
	hint := fmt.Sprintf("%v..%v", s.Min, s.Max)
	parse := func(in string) (float64, error) { return ParseFloat(in, s) }

	if p.tty {
		return formInput(ctx, p, description, hint, def, parse)
	}
	return lineInput(ctx, p, description, hint, def, parse)
}

// List asks for exactly one value.
func (p *Prompter) List(ctx context.Context, description string, s settings.ListSetting) (string, error) {
	if p.tty {
		return p.formSelect(ctx, description, s)
	}

	p.printOptions(s.Values, func(v string) bool { return s.Default != nil && *s.Default == v })

	def := ""
	if s.Default != nil {
		def = *s.Default
	}
	return lineInput(ctx, p, description, "number or name", def, func(in string) (string, error) {
		return ParseChoice(in, s.Values, s.Default)
	})
}

// MultiList asks for any subset of values. The result keeps the declared
// order of values.
func (p *Prompter) MultiList(ctx context.Context, description string, s settings.MultiListSetting) ([]string, error) {
	if p.tty {
		return p.formMultiSelect(ctx, description, s)
	}

	selected := make(map[string]bool, len(s.Default))
	for _, d := range s.Default {
		selected[d] = true
	}
	p.printOptions(s.Values, func(v string) bool { return selected[v] })

	return lineInput(ctx, p, description, "comma separated, - for none", "", func(in string) ([]string, error) {
		return ParseChoices(in, s.Values, s.Default)
	})
}

// Confirm asks a yes/no question with the given default.
func (p *Prompter) Confirm(ctx context.Context, question string, def bool) (bool, error) {
	if p.tty {
		return p.formConfirm(ctx, question, def)
	}
	return p.Bool(ctx, question, settings.BoolSetting{Default: &def})
}

func (p *Prompter) printOptions(values settings.OrderedSet, marked func(string) bool) {
	for i, v := range values.Values() {
		mark := " "
		if marked(v) {
			mark = output.StyleDefault.Render("*")
		}
		fmt.Fprintf(p.out, "  %s %d) %s\n", mark, i+1, v)
	}
}

// lineInput prints the question, reads a line and parses it, repeating until
// the answer is valid.
func lineInput[T any](
	ctx context.Context,
	p *Prompter,
	description, hint, def string,
	parse func(string) (T, error),
) (T, error) {
	var zero T

	for {
		fmt.Fprintf(p.out, "%s %s", output.StyleNoun.Render("?"), description)
		if hint != "" {
			fmt.Fprintf(p.out, " %s", output.StyleDim.Render("("+hint+")"))
		}
		if def != "" {
			fmt.Fprintf(p.out, " [%s]", output.StyleDefault.Render(def))
		}
		fmt.Fprint(p.out, ": ")

		line, err := p.readLine(ctx)
		if err != nil {
			return zero, err
		}

		v, err := parse(line)
		if err != nil {
			fmt.Fprintln(p.out, "  "+output.FormatCross(err.Error()))
			continue
		}
		return v, nil
	}
}

// readLine returns the next line without its line ending. End of input and
// context cancellation both count as the operator aborting.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", cancelled(err)
	}

	p.readOnce.Do(func() { go p.readLoop() })

	select {
	case <-ctx.Done():
		return "", cancelled(ctx.Err())
	case r, ok := <-p.lines:
		if !ok {
			return "", cancelled(io.EOF)
		}
		if r.err != nil {
			if errors.Is(r.err, io.EOF) && r.line != "" {
				return trimEOL(r.line), nil
			}
			if errors.Is(r.err, io.EOF) {
				return "", cancelled(r.err)
			}
			return "", oerrors.WrapIO(r.err, "reading answer")
		}
		return trimEOL(r.line), nil
	}
}

// readLoop feeds p.lines until the reader fails, then closes it.
func (p *Prompter) readLoop() {
	defer close(p.lines)
	for {
		line, err := p.reader.ReadString('\n')
		p.lines <- lineResult{line, err}
		if err != nil {
			return
		}
	}
}

func trimEOL(line string) string {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	return line
}

func cancelled(cause error) error {
	return fmt.Errorf("%w: %w", oerrors.ErrCancelled, cause)
}
