package vars

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"

	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
)

// Eval evaluates a condition against the context.
//
// Conditions containing template actions are rendered and the trimmed output
// parsed as a bool; empty output is false. Anything else is a boolean
// expression where unknown and unset names evaluate to false.
func (c *Context) Eval(condition string) (bool, error) {
	condition = strings.TrimSpace(condition)
	if condition == "" {
		return true, nil
	}

	if strings.Contains(condition, "{{") {
		return c.evalTemplate(condition)
	}
	return c.evalExpr(condition)
}

func (c *Context) evalTemplate(condition string) (bool, error) {
	tmpl, err := template.New("condition").Funcs(c.FuncMap()).Parse(condition)
	if err != nil {
		return false, oerrors.WrapConfig(err, fmt.Sprintf("parsing condition %q", condition))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, c.Map()); err != nil {
		return false, oerrors.WrapConfig(err, fmt.Sprintf("rendering condition %q", condition))
	}

	out := strings.TrimSpace(buf.String())
	if out == "" {
		return false, nil
	}

	b, err := strconv.ParseBool(out)
	if err != nil {
		return false, oerrors.WrapConfig(err, fmt.Sprintf("condition %q rendered %q, not a bool", condition, out))
	}
	return b, nil
}

func (c *Context) evalExpr(condition string) (bool, error) {
	tree, err := parser.Parse(condition)
	if err != nil {
		return false, oerrors.WrapConfig(err, fmt.Sprintf("compiling condition %q", condition))
	}

	env := c.Map()
	ast.Walk(&tree.Node, absentAsFalse(env))

	program, err := expr.Compile(condition, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return false, oerrors.WrapConfig(err, fmt.Sprintf("compiling condition %q", condition))
	}

	result, err := expr.Run(program, env)
	if err != nil {
		return false, oerrors.WrapConfig(err, fmt.Sprintf("evaluating condition %q", condition))
	}

	switch v := result.(type) {
	case bool:
		return v, nil
	case nil:
		return false, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, oerrors.WrapConfig(err, fmt.Sprintf("condition %q evaluated to %q, not a bool", condition, v))
		}
		return b, nil
	default:
		return false, oerrors.Wrap(oerrors.ErrConfig,
			fmt.Sprintf("condition %q evaluated to %v (%T), not a bool", condition, v, v))
	}
}

// absentAsFalse sets every identifier of an expression that has no value in
// the env to false, so skipped settings type-check in boolean operators.
type absentAsFalse map[string]any

func (env absentAsFalse) Visit(node *ast.Node) {
	id, ok := (*node).(*ast.IdentifierNode)
	if !ok {
		return
	}
	if v, found := env[id.Value]; !found || v == nil {
		env[id.Value] = false
	}
}
