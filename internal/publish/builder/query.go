package builder

// Query is a database query body.
type Query struct {
	Filter      *Filter `json:"filter,omitempty"`
	Sorts       []Sort  `json:"sorts,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
}

// Filter matches pages by property value. Compound filters nest under And/Or.
type Filter struct {
	Property string          `json:"property,omitempty"`
	RichText *TextCondition  `json:"rich_text,omitempty"`
	Select   *EqualCondition `json:"select,omitempty"`
	Checkbox *BoolCondition  `json:"checkbox,omitempty"`
	And      []Filter        `json:"and,omitempty"`
	Or       []Filter        `json:"or,omitempty"`
}

// TextCondition matches rich text properties.
type TextCondition struct {
	Equals   string `json:"equals,omitempty"`
	Contains string `json:"contains,omitempty"`
}

// EqualCondition matches select properties.
type EqualCondition struct {
	Equals string `json:"equals"`
}

// BoolCondition matches checkbox properties.
type BoolCondition struct {
	Equals bool `json:"equals"`
}

// Sort orders results by one property.
type Sort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"` // ascending or descending
}

// TextEquals filters on exact rich text match.
func TextEquals(property, value string) *Filter {
	return &Filter{Property: property, RichText: &TextCondition{Equals: value}}
}

// TextContains filters on rich text substring match.
func TextContains(property, value string) *Filter {
	return &Filter{Property: property, RichText: &TextCondition{Contains: value}}
}

// SelectEquals filters on a select option.
func SelectEquals(property, option string) *Filter {
	return &Filter{Property: property, Select: &EqualCondition{Equals: option}}
}

// CheckboxEquals filters on a checkbox state.
func CheckboxEquals(property string, checked bool) *Filter {
	return &Filter{Property: property, Checkbox: &BoolCondition{Equals: checked}}
}

// All combines filters with AND.
func All(filters ...*Filter) *Filter {
	combined := make([]Filter, len(filters))
	for i, f := range filters {
		combined[i] = *f
	}
	return &Filter{And: combined}
}

// Any combines filters with OR.
func Any(filters ...*Filter) *Filter {
	combined := make([]Filter, len(filters))
	for i, f := range filters {
		combined[i] = *f
	}
	return &Filter{Or: combined}
}
