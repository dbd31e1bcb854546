package model

// ClassLayout controls how a multi-token class value is rebuilt.
type ClassLayout string

// Available ClassLayout values.
const (
	ClassLayoutInline   ClassLayout = "inline"
	ClassLayoutPreserve ClassLayout = "preserve"
)

// DirectiveStyle is the target spelling for normalizable directives.
type DirectiveStyle string

// Available DirectiveStyle values.
const (
	DirectiveStyleShort DirectiveStyle = "short"
	DirectiveStyleLong  DirectiveStyle = "long"
)

// SameNameMode is the verbosity policy applied to bind directives whose
// bound expression is the argument name itself.
type SameNameMode string

// Available SameNameMode values.
const (
	SameNameIgnore      SameNameMode = "ignore"
	SameNameRemoveValue SameNameMode = "removeValue"
	SameNameAddValue    SameNameMode = "addValue"
)

// AttributeLayout controls the join separator used when a prop block is
// rebuilt.
type AttributeLayout string

// Available AttributeLayout values.
const (
	AttributeLayoutInline   AttributeLayout = "inline"
	AttributeLayoutPreserve AttributeLayout = "preserve"
)

// ResolvedConfig carries every formatting option fully populated. It is
// built once per invocation by merging user overrides onto the fixed
// defaults and is read-only afterwards; the rewrite core never consults
// ambient state.
type ResolvedConfig struct {
	SortClasses         bool
	RemoveDuplicates    bool
	ClassLayout         ClassLayout
	NormalizeDirectives bool
	DirectiveStyle      DirectiveStyle
	SameNameMode        SameNameMode
	OrderDirectives     bool
	DirectivePriority   []string
	OrderAttributes     bool
	AttributeLayout     AttributeLayout
}

// DefaultDirectivePriority is the conventional structural-first rank
// order for directive reordering. Directive names absent from the list
// always sort after every listed name.
func DefaultDirectivePriority() []string {
	return []string{"if", "else-if", "else", "for", "show", "model", "on", "bind", "slot"}
}

// DefaultConfig returns the fixed option defaults that user overrides
// are merged onto.
func DefaultConfig() ResolvedConfig {
	return ResolvedConfig{
		SortClasses:         true,
		RemoveDuplicates:    true,
		ClassLayout:         ClassLayoutPreserve,
		NormalizeDirectives: true,
		DirectiveStyle:      DirectiveStyleShort,
		SameNameMode:        SameNameIgnore,
		OrderDirectives:     true,
		DirectivePriority:   DefaultDirectivePriority(),
		OrderAttributes:     true,
		AttributeLayout:     AttributeLayoutPreserve,
	}
}
