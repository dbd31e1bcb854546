// Package rewrite implements the deterministic attribute-block
// rebuilder: given one element's ordered prop list and a resolved
// configuration, it computes the minimal replacement that normalizes
// class lists, directive spelling, and prop order without touching any
// surrounding document text. Rebuilding is pure, total, and idempotent:
// an element that needs no change produces no replacement.
package rewrite

import (
	"strings"

	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

// Rebuild runs the normalize/reorder pipeline over one element's prop
// list. When anything changed it returns the single replacement covering
// exactly [firstProp.Start, lastProp.End) of the original list;
// otherwise ok is false and the element is left alone.
func Rebuild(src []byte, el m.Element, cfg m.ResolvedConfig) (m.Replacement, bool) {
	if len(el.Props) == 0 {
		return m.Replacement{}, false
	}

	changed := false
	block := make([]renderedProp, len(el.Props))

	for i, prop := range el.Props {
		rp := renderedProp{prop: prop, text: renderedSource(src, prop)}

		switch p := prop.(type) {
		case m.Attribute:
			if text, ok := normalizeClass(p, cfg); ok {
				rp.text = text
				changed = true
			}
		case m.Directive:
			if cfg.NormalizeDirectives {
				if text, ok := normalizeDirective(p, cfg); ok {
					rp.text = text
					changed = true
				}
			}
		}

		block[i] = rp
	}

	if cfg.OrderDirectives {
		if reordered, moved := orderDirectives(block, cfg.DirectivePriority); moved {
			block = reordered
			changed = true
		}
	}

	if cfg.OrderAttributes {
		if reordered, moved := orderAttributes(block); moved {
			block = reordered
			changed = true
		}
	}

	if !changed {
		return m.Replacement{}, false
	}

	// The separator is measured on the original prop list: reordering
	// changes the block's contents, never its layout.
	sep := blockSeparator(src, el.Props, cfg.AttributeLayout)

	var b strings.Builder

	for i, rp := range block {
		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rp.text)
	}

	first := el.Props[0].Span()
	last := el.Props[len(el.Props)-1].Span()

	return m.Replacement{Start: first.Start, End: last.End, NewText: b.String()}, true
}

// renderedSource returns the prop's source text, recovering it from the
// document bytes when the parsed text is missing but the span is usable.
func renderedSource(src []byte, prop m.Prop) string {
	if text := prop.SourceText(); text != "" {
		return text
	}

	span := prop.Span()
	if span.Start >= 0 && span.End <= len(src) && span.Start < span.End {
		return string(src[span.Start:span.End])
	}

	return ""
}
