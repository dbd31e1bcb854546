package model

// Replacement substitutes source[Start:End) with NewText. Each
// replacement spans exactly one element's prop block, so replacements
// computed for distinct elements never overlap and can be applied to a
// buffer in descending Start order.
type Replacement struct {
	Start   int
	End     int
	NewText string
}
