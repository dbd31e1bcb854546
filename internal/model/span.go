package model

import "fmt"

// Span is a half-open [Start, End) byte range, absolute within the
// scanned document. Spans are assigned by the template scanner and never
// change afterwards; rewritten text is tracked separately.
type Span struct {
	Start int
	End   int
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}
