package rewrite

import (
	"strings"

	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

// blockSeparator decides the join separator for a rebuilt attribute
// block purely from original source whitespace. In preserve mode a
// multi-prop block whose original gap between the first and second prop
// contained a newline reuses that gap verbatim for the whole block;
// every other case joins with a single space.
func blockSeparator(src []byte, props []m.Prop, layout m.AttributeLayout) string {
	if layout == m.AttributeLayoutPreserve && len(props) > 1 {
		lo, hi := props[0].Span().End, props[1].Span().Start
		if lo >= 0 && hi <= len(src) && lo < hi {
			gap := string(src[lo:hi])
			if strings.ContainsRune(gap, '\n') {
				return gap
			}
		}
	}

	return " "
}
