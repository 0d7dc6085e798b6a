package hcl

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/tailgrid/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translate converts the decoded file structure into the agnostic model.
// Diagnostics for every attribute are collected before giving up so one run
// reports all of a file's problems.
func (l *Loader) translate(ctx context.Context, root *fileRoot) (*config.Model, error) {
	m := &config.Model{}
	var diags hcl.Diagnostics
	var dups []error

	content, d := l.stringList(ctx, root.Content, "content")
	diags = append(diags, d...)
	m.Content = content

	if root.Theme != nil && root.Theme.Extend != nil {
		ext := root.Theme.Extend

		colors, dd, d := l.stringMap(ctx, ext.Colors, "theme.extend.colors")
		diags = append(diags, d...)
		dups = append(dups, dd...)
		m.Theme.Extend.Colors = colors

		spacing, dd, d := l.stringMap(ctx, ext.LetterSpacing, "theme.extend.letter_spacing")
		diags = append(diags, d...)
		dups = append(dups, dd...)
		m.Theme.Extend.LetterSpacing = spacing
	}

	plugins, d := l.stringList(ctx, root.Plugins, "plugins")
	diags = append(diags, d...)
	m.Plugins = plugins

	if diags.HasErrors() {
		dups = append(dups, diags)
	}
	if len(dups) > 0 {
		return nil, errors.Join(dups...)
	}

	m.Normalize()
	return m, nil
}

// stringList reads a static list of strings, keeping element order.
func (l *Loader) stringList(ctx context.Context, expr hcl.Expression, name string) ([]string, hcl.Diagnostics) {
	if !isExprDefined(ctx, expr, name) {
		return nil, nil
	}

	exprs, diags := hcl.ExprList(expr)
	if diags.HasErrors() {
		return nil, hcl.Diagnostics{errorDiag("Invalid "+name, fmt.Sprintf("%s must be a list of strings.", name), expr.Range())}
	}
	if exprs == nil && !isCollection(expr, cty.Type.IsTupleType, cty.Type.IsListType) {
		return nil, hcl.Diagnostics{errorDiag("Invalid "+name, fmt.Sprintf("%s must be a list of strings.", name), expr.Range())}
	}

	out := make([]string, 0, len(exprs))
	for i, e := range exprs {
		s, d := stringValue(e, fmt.Sprintf("%s[%d]", name, i))
		if d.HasErrors() {
			diags = append(diags, d...)
			continue
		}
		out = append(out, s)
	}
	return out, diags
}

// stringMap reads a static map of strings. A key that appears twice yields
// a *config.DuplicateKeyError naming both declarations.
func (l *Loader) stringMap(ctx context.Context, expr hcl.Expression, name string) (map[string]string, []error, hcl.Diagnostics) {
	out := make(map[string]string)
	if !isExprDefined(ctx, expr, name) {
		return out, nil, nil
	}

	pairs, diags := hcl.ExprMap(expr)
	if diags.HasErrors() {
		return out, nil, hcl.Diagnostics{errorDiag("Invalid "+name, fmt.Sprintf("%s must be a map of strings.", name), expr.Range())}
	}
	if pairs == nil && !isCollection(expr, cty.Type.IsObjectType, cty.Type.IsMapType) {
		return out, nil, hcl.Diagnostics{errorDiag("Invalid "+name, fmt.Sprintf("%s must be a map of strings.", name), expr.Range())}
	}

	var dups []error
	declaredAt := make(map[string]hcl.Range)
	for _, pair := range pairs {
		key, d := stringValue(pair.Key, name+" key")
		if d.HasErrors() {
			diags = append(diags, d...)
			continue
		}
		if first, seen := declaredAt[key]; seen {
			dups = append(dups, &config.DuplicateKeyError{
				Mapping: name,
				Key:     key,
				First:   position(first),
				Second:  position(pair.Key.Range()),
			})
			continue
		}
		declaredAt[key] = pair.Key.Range()

		val, d := stringValue(pair.Value, name+"."+key)
		if d.HasErrors() {
			diags = append(diags, d...)
			continue
		}
		out[key] = val
	}
	return out, dups, diags
}

// stringValue evaluates a static expression and converts it to a string.
// Numbers and bools are accepted and rendered in their canonical form.
func stringValue(expr hcl.Expression, what string) (string, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() || !val.IsKnown() {
		return "", hcl.Diagnostics{errorDiag("Invalid value", fmt.Sprintf("%s must be a string, not null.", what), expr.Range())}
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", hcl.Diagnostics{errorDiag("Incorrect value type", fmt.Sprintf("%s must be a string: %s.", what, err), expr.Range())}
	}
	return str.AsString(), nil
}

// isCollection evaluates expr and reports whether its type passes any of
// the given predicates. It is used for syntaxes whose expressions do not
// expose their elements statically.
func isCollection(expr hcl.Expression, preds ...func(cty.Type) bool) bool {
	val, diags := expr.Value(nil)
	if diags.HasErrors() || val.IsNull() {
		return false
	}
	for _, pred := range preds {
		if pred(val.Type()) {
			return true
		}
	}
	return false
}
