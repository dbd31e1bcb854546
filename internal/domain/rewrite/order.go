package rewrite

import (
	"sort"

	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

// renderedProp pairs a prop with its current rendered text while the
// block moves through the rebuild pipeline. The prop itself is never
// mutated; only the rendered text changes.
type renderedProp struct {
	prop m.Prop
	text string
}

// orderDirectives stably reorders the directive subsequence of the block
// by configured priority rank (name as the secondary key), leaving every
// non-directive prop at its exact original position. Directive names
// absent from priority receive a rank strictly greater than any
// configured rank, so unknown directives always sort after known ones.
func orderDirectives(block []renderedProp, priority []string) ([]renderedProp, bool) {
	rank := make(map[string]int, len(priority))

	for i, name := range priority {
		if _, ok := rank[name]; !ok {
			rank[name] = i
		}
	}

	fallback := len(priority)

	rankOf := func(p m.Prop) int {
		if r, ok := rank[p.(m.Directive).Name]; ok {
			return r
		}

		return fallback
	}

	return spliceBack(block, isDirective, func(a, b m.Prop) bool {
		ra, rb := rankOf(a), rankOf(b)
		if ra != rb {
			return ra < rb
		}

		return a.(m.Directive).Name < b.(m.Directive).Name
	})
}

// orderAttributes stably reorders the plain-attribute subsequence:
// valued attributes before boolean ones, byte-wise ascending by name
// within each group. Directive positions are left untouched.
func orderAttributes(block []renderedProp) ([]renderedProp, bool) {
	return spliceBack(block, isAttribute, func(a, b m.Prop) bool {
		aa, ab := a.(m.Attribute), b.(m.Attribute)
		if aa.HasValue != ab.HasValue {
			return aa.HasValue
		}

		return aa.Name < ab.Name
	})
}

func isDirective(p m.Prop) bool {
	_, ok := p.(m.Directive)
	return ok
}

func isAttribute(p m.Prop) bool {
	_, ok := p.(m.Attribute)
	return ok
}

// spliceBack sorts the subsequence of block selected by match and
// reinserts it into the exact index positions it was extracted from,
// leaving every other slot untouched. The sort is stable: props that
// compare equal keep their original relative order. It reports whether
// any prop actually moved.
func spliceBack(block []renderedProp, match func(m.Prop) bool, less func(a, b m.Prop) bool) ([]renderedProp, bool) {
	indices := make([]int, 0, len(block))

	for i, rp := range block {
		if match(rp.prop) {
			indices = append(indices, i)
		}
	}

	if len(indices) < 2 {
		return block, false
	}

	// Sort a permutation of the extracted subsequence rather than the
	// props themselves so movement can be detected positionally.
	order := make([]int, len(indices))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return less(block[indices[order[a]]].prop, block[indices[order[b]]].prop)
	})

	changed := false

	for i, from := range order {
		if from != i {
			changed = true
			break
		}
	}

	if !changed {
		return block, false
	}

	out := make([]renderedProp, len(block))
	copy(out, block)

	for i, from := range order {
		out[indices[i]] = block[indices[from]]
	}

	return out, true
}
