package mapping

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/BMBF-ARVIDA/arivda-preprocessor/errors"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/graph"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/schema"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/vocabulary"
)

// JoinPath joins two path components with a single separating slash.
// An empty component leaves the other untouched.
func JoinPath(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return strings.TrimSuffix(a, "/") + "/" + strings.TrimPrefix(b, "/")
}

// templatePart is one parsed segment of an inline path template: either
// literal text or a compiled placeholder expression.
type templatePart struct {
	text string
	prog *vm.Program
}

// parseInlineTemplate splits a pattern into text and placeholder segments.
// Placeholders are brace-delimited with backslash escapes; nested braces
// stay inside the placeholder expression.
func parseInlineTemplate(pattern string) ([]string, []bool, error) {
	var (
		segments []string
		isExpr   []bool
		cur      strings.Builder
		depth    int
		escaped  bool
	)
	for _, c := range pattern {
		if escaped {
			cur.WriteRune(c)
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '{':
			depth++
			if depth == 1 {
				if cur.Len() > 0 {
					segments = append(segments, cur.String())
					isExpr = append(isExpr, false)
					cur.Reset()
				}
				continue
			}
			cur.WriteRune(c)
		case '}':
			switch {
			case depth == 1:
				depth = 0
				segments = append(segments, cur.String())
				isExpr = append(isExpr, true)
				cur.Reset()
			case depth > 1:
				depth--
				cur.WriteRune(c)
			default:
				cur.WriteRune(c)
			}
		default:
			cur.WriteRune(c)
		}
	}
	if depth > 0 {
		return nil, nil, fmt.Errorf("unterminated placeholder in %q: %w", pattern, errors.ErrBadTemplate)
	}
	if cur.Len() > 0 {
		segments = append(segments, cur.String())
		isExpr = append(isExpr, false)
	}
	return segments, isExpr, nil
}

// compileTemplate parses a pattern and compiles each placeholder with
// expr. Placeholders reference the class's member accessor identities.
func compileTemplate(class, pattern string) ([]templatePart, error) {
	segments, isExpr, err := parseInlineTemplate(pattern)
	if err != nil {
		return nil, errors.NewSchemaError(class, err)
	}
	parts := make([]templatePart, 0, len(segments))
	for i, seg := range segments {
		if !isExpr[i] {
			parts = append(parts, templatePart{text: seg})
			continue
		}
		prog, err := expr.Compile(seg, expr.AllowUndefinedVariables())
		if err != nil {
			return nil, errors.NewSchemaError(class,
				fmt.Errorf("placeholder %q: %v: %w", seg, err, errors.ErrBadTemplate))
		}
		parts = append(parts, templatePart{prog: prog})
	}
	return parts, nil
}

// compilePathOf builds the pathOf operation for one class.
func compilePathOf(cs *schema.ClassSchema) (func(ctx *graph.Context, v any) (string, error), error) {
	switch cs.Path.Mode {
	case schema.PathUid:
		uid := cs.Path.Uid
		if uid == nil {
			return nil, errors.NewSchemaError(cs.Name,
				fmt.Errorf("uid accessor %q: %w", cs.Path.UidAccessor, errors.ErrMissingAccessor))
		}
		return func(ctx *graph.Context, v any) (string, error) {
			// Uid identity is root-independent: two traversal roots
			// resolve the same object to the same URI.
			return JoinPath(ctx.Base, uid(v)), nil
		}, nil

	case schema.PathTemplate:
		parts, err := compileTemplate(cs.Name, cs.Path.Template)
		if err != nil {
			return nil, err
		}
		bindings := cs.Bindings
		return func(ctx *graph.Context, v any) (string, error) {
			env := map[string]any{"this": v}
			for _, b := range bindings {
				if b.Get != nil {
					env[b.Member] = b.Get(v)
				}
			}
			var sb strings.Builder
			for _, p := range parts {
				if p.prog == nil {
					sb.WriteString(p.text)
					continue
				}
				out, err := expr.Run(p.prog, env)
				if err != nil {
					return "", errors.Wrap(err, "PathResolver", "pathOf", "evaluating placeholder")
				}
				fmt.Fprintf(&sb, "%v", out)
			}
			uri := sb.String()
			if vocabulary.IsAbsolute(uri) {
				return uri, nil
			}
			return JoinPath(ctx.Path, uri), nil
		}, nil

	default: // schema.PathConcat
		sub := cs.Path.SubPath
		absolute := cs.Path.Absolute
		return func(ctx *graph.Context, v any) (string, error) {
			if absolute {
				return sub, nil
			}
			// Root-dependent by design: the URI concatenates sub-paths
			// from the traversal root. Uid mode exists as the
			// root-independent alternative.
			return JoinPath(ctx.Path, sub), nil
		}, nil
	}
}
