package rewrite

import (
	"sort"
	"strings"

	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

const classAttrName = "class"

// normalizeClass rebuilds a class attribute's source text according to
// the sort/dedup toggles. It reports ok=false when the attribute must be
// left untouched.
func normalizeClass(attr m.Attribute, cfg m.ResolvedConfig) (string, bool) {
	if attr.Name != classAttrName || !attr.HasValue || attr.Value == "" {
		return "", false
	}

	// With both toggles off the normalizer is identity: rejoining alone
	// would collapse whitespace and violate the no-op contract.
	if !cfg.SortClasses && !cfg.RemoveDuplicates {
		return "", false
	}

	tokens := strings.Fields(attr.Value)
	if len(tokens) == 0 {
		return "", false
	}

	if cfg.RemoveDuplicates {
		tokens = dedupeFirstWins(tokens)
	}

	if cfg.SortClasses {
		// Byte-wise ordering, never locale-aware.
		sort.Strings(tokens)
	}

	value := joinClassTokens(tokens, attr.Value, cfg.ClassLayout)

	text := attr.Name + "=" + quoteValue(value, attr.Quote)
	if text == attr.Text {
		return "", false
	}

	return text, true
}

// dedupeFirstWins collapses repeated tokens, keeping the first
// occurrence's position. Equality is exact byte equality.
func dedupeFirstWins(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))

	for _, tok := range tokens {
		if _, ok := seen[tok]; ok {
			continue
		}

		seen[tok] = struct{}{}
		out = append(out, tok)
	}

	return out
}

// joinClassTokens rebuilds the attribute value. In preserve mode a value
// that originally spanned lines keeps its first-seen indentation: every
// token after the first is joined with a newline plus that indent.
func joinClassTokens(tokens []string, original string, layout m.ClassLayout) string {
	if layout == m.ClassLayoutPreserve {
		if idx := strings.IndexByte(original, '\n'); idx >= 0 {
			sep := "\n" + leadingIndent(original[idx+1:])

			var b strings.Builder

			b.WriteString(tokens[0])

			for _, tok := range tokens[1:] {
				b.WriteString(sep)
				b.WriteString(tok)
			}

			return b.String()
		}
	}

	return strings.Join(tokens, " ")
}

// leadingIndent returns the run of spaces and tabs at the start of s.
func leadingIndent(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return s[:i]
		}
	}

	return s
}

// quoteValue wraps value in the attribute's original quote character so
// rebuilt text never switches between single and double quoting.
func quoteValue(value string, quote byte) string {
	if quote == 0 {
		return value
	}

	return string(quote) + value + string(quote)
}
