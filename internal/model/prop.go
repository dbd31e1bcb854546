// Package model defines the data structures for attribute formatting.
package model

// Prop is a single attribute or binding-directive occurrence on one
// markup element. It is a closed two-variant sum: Attribute and
// Directive are the only implementations, so consumers dispatch with an
// exhaustive type switch.
type Prop interface {
	// Span returns the exact byte range of the prop's source text.
	Span() Span
	// SourceText returns the prop's original source text, verbatim.
	SourceText() string

	isProp()
}

// Attribute is a plain markup attribute, valued or boolean.
type Attribute struct {
	Name     string
	Value    string
	HasValue bool
	Quote    byte // '\'' or '"', zero for unquoted or boolean attributes
	Text     string
	Range    Span
}

// Span returns the attribute's source byte range.
func (a Attribute) Span() Span { return a.Range }

// SourceText returns the attribute's original source text.
func (a Attribute) SourceText() string { return a.Text }

func (a Attribute) isProp() {}

// Directive is a binding construct: a bare name (without the "v-"
// prefix or shorthand sigil), an optional argument, an ordered modifier
// chain, and an optional bound expression.
type Directive struct {
	Name          string // canonical bare name, e.g. "bind", "on", "if"
	Arg           string // argument without dynamic brackets
	DynamicArg    bool
	Modifiers     []string // original order
	HasExpression bool
	Expression    string
	Text          string
	Range         Span
}

// Span returns the directive's source byte range.
func (d Directive) Span() Span { return d.Range }

// SourceText returns the directive's original source text.
func (d Directive) SourceText() string { return d.Text }

func (d Directive) isProp() {}

// Element is one markup element's ordered prop list. The order at input
// time is the authoritative original order and the tie-break baseline
// for every sort performed on it.
type Element struct {
	Props []Prop
}
