// Package pkg is a package that provides utilities for tidyvue.
package pkg

import (
	"fmt"
	"log/slog"
	"sort"
)

// Edit is a single text replacement over a half-open byte range [Start, End).
type Edit struct {
	Start int
	End   int
	Text  string
}

// ApplyEdits rewrites src by applying every edit. Edits may be given in any
// order but must stay inside src and must not overlap. The input slice is
// left untouched.
func ApplyEdits(src []byte, edits []Edit) ([]byte, error) {
	if len(edits) == 0 {
		return src, nil
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	if err := validateEdits(src, sorted); err != nil {
		slog.Error("rejected edit batch", "edits", len(edits), "error", err)
		return nil, err
	}

	out := make([]byte, 0, len(src))
	cursor := 0

	for _, edit := range sorted {
		out = append(out, src[cursor:edit.Start]...)
		out = append(out, edit.Text...)
		cursor = edit.End
	}

	out = append(out, src[cursor:]...)

	slog.Debug("applied edits", "count", len(edits), "before", len(src), "after", len(out))

	return out, nil
}

// validateEdits expects edits sorted by Start.
func validateEdits(src []byte, edits []Edit) error {
	prevEnd := 0

	for i, edit := range edits {
		if edit.Start < 0 || edit.End > len(src) || edit.Start > edit.End {
			return fmt.Errorf("edit %d out of range: [%d, %d) in %d bytes", i, edit.Start, edit.End, len(src))
		}

		if edit.Start < prevEnd {
			return fmt.Errorf("edit %d overlaps previous edit at offset %d", i, edit.Start)
		}

		prevEnd = edit.End
	}

	return nil
}
