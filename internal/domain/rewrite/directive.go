package rewrite

import (
	"strings"

	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

const kindBind = "bind"

// shorthandSigils maps the three normalizable directive kinds to their
// shorthand spelling. Every other directive name passes through
// untouched regardless of configuration.
var shorthandSigils = map[string]string{
	kindBind: ":",
	"on":     "@",
	"slot":   "#",
}

// normalizeDirective rewrites a directive between shorthand and longhand
// spelling and applies the same-name binding policy. Directives of a
// non-normalizable kind, directives without an explicit argument, and
// directives whose source text was not recovered are left untouched.
func normalizeDirective(dir m.Directive, cfg m.ResolvedConfig) (string, bool) {
	sigil, ok := shorthandSigils[dir.Name]
	if !ok {
		return "", false
	}

	if dir.Arg == "" || dir.Text == "" {
		return "", false
	}

	value := valuePart(dir)
	if dir.Name == kindBind {
		value = applySameNamePolicy(dir, value, cfg.SameNameMode)
	}

	arg := dir.Arg
	if dir.DynamicArg {
		arg = "[" + dir.Arg + "]"
	}

	var mods strings.Builder
	for _, mod := range dir.Modifiers {
		mods.WriteByte('.')
		mods.WriteString(mod)
	}

	var text string

	switch cfg.DirectiveStyle {
	case m.DirectiveStyleLong:
		text = "v-" + dir.Name + ":" + arg + mods.String() + value
	default:
		text = sigil + arg + mods.String() + value
	}

	if text == dir.Text {
		return "", false
	}

	return text, true
}

// valuePart returns the directive's original "=..." tail verbatim: the
// equals sign, the quoting, and the expression text exactly as written.
func valuePart(dir m.Directive) string {
	if !dir.HasExpression {
		return ""
	}

	if idx := strings.IndexByte(dir.Text, '='); idx >= 0 {
		return dir.Text[idx:]
	}

	return ""
}

// applySameNamePolicy resolves same-name binding verbosity for bind
// directives that carry an argument. The argument is compared with
// dynamic brackets already stripped; both sides are trimmed.
func applySameNamePolicy(dir m.Directive, value string, mode m.SameNameMode) string {
	switch mode {
	case m.SameNameRemoveValue:
		if dir.HasExpression && strings.TrimSpace(dir.Expression) == strings.TrimSpace(dir.Arg) {
			return ""
		}
	case m.SameNameAddValue:
		if !dir.HasExpression {
			return `="` + dir.Arg + `"`
		}
	case m.SameNameIgnore:
	}

	return value
}
