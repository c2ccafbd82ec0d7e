package builder

// Block is one content block payload. Type selects which content field is
// populated; exactly one is non-nil.
type Block struct {
	Object           string        `json:"object"`
	Type             string        `json:"type"`
	Paragraph        *TextBlock    `json:"paragraph,omitempty"`
	Heading1         *TextBlock    `json:"heading_1,omitempty"`
	Heading2         *TextBlock    `json:"heading_2,omitempty"`
	Heading3         *TextBlock    `json:"heading_3,omitempty"`
	BulletedListItem *TextBlock    `json:"bulleted_list_item,omitempty"`
	NumberedListItem *TextBlock    `json:"numbered_list_item,omitempty"`
	ToDo             *ToDoBlock    `json:"to_do,omitempty"`
	Toggle           *TextBlock    `json:"toggle,omitempty"`
	Quote            *TextBlock    `json:"quote,omitempty"`
	Callout          *CalloutBlock `json:"callout,omitempty"`
	Code             *CodeBlock    `json:"code,omitempty"`
	Divider          *struct{}     `json:"divider,omitempty"`
}

// TextBlock is the content of the plain rich-text block types.
type TextBlock struct {
	RichText []RichText `json:"rich_text"`
	Children []Block    `json:"children,omitempty"`
	Color    string     `json:"color,omitempty"`
}

// ToDoBlock is a checkbox item.
type ToDoBlock struct {
	RichText []RichText `json:"rich_text"`
	Checked  bool       `json:"checked"`
	Children []Block    `json:"children,omitempty"`
}

// CalloutBlock is an icon-decorated aside.
type CalloutBlock struct {
	RichText []RichText `json:"rich_text"`
	Icon     *Icon      `json:"icon,omitempty"`
	Children []Block    `json:"children,omitempty"`
}

// Icon is an emoji icon.
type Icon struct {
	Type  string `json:"type"`
	Emoji string `json:"emoji"`
}

// CodeBlock is a fenced code listing.
type CodeBlock struct {
	RichText []RichText `json:"rich_text"`
	Language string     `json:"language"`
}

// Paragraph creates a paragraph block.
func Paragraph(spans ...RichText) Block {
	return Block{Object: "block", Type: "paragraph", Paragraph: &TextBlock{RichText: spans}}
}

// Heading1 creates a top-level heading.
func Heading1(spans ...RichText) Block {
	return Block{Object: "block", Type: "heading_1", Heading1: &TextBlock{RichText: spans}}
}

// Heading2 creates a second-level heading.
func Heading2(spans ...RichText) Block {
	return Block{Object: "block", Type: "heading_2", Heading2: &TextBlock{RichText: spans}}
}

// Heading3 creates a third-level heading.
func Heading3(spans ...RichText) Block {
	return Block{Object: "block", Type: "heading_3", Heading3: &TextBlock{RichText: spans}}
}

// Bulleted creates a bulleted list item.
func Bulleted(spans ...RichText) Block {
	return Block{Object: "block", Type: "bulleted_list_item", BulletedListItem: &TextBlock{RichText: spans}}
}

// Numbered creates a numbered list item.
func Numbered(spans ...RichText) Block {
	return Block{Object: "block", Type: "numbered_list_item", NumberedListItem: &TextBlock{RichText: spans}}
}

// ToDo creates a checkbox item.
func ToDo(checked bool, spans ...RichText) Block {
	return Block{Object: "block", Type: "to_do", ToDo: &ToDoBlock{RichText: spans, Checked: checked}}
}

// Toggle creates a collapsible block.
func Toggle(spans ...RichText) Block {
	return Block{Object: "block", Type: "toggle", Toggle: &TextBlock{RichText: spans}}
}

// Quote creates a quote block.
func Quote(spans ...RichText) Block {
	return Block{Object: "block", Type: "quote", Quote: &TextBlock{RichText: spans}}
}

// Callout creates an emoji-decorated callout.
func Callout(emoji string, spans ...RichText) Block {
	b := Block{Object: "block", Type: "callout", Callout: &CalloutBlock{RichText: spans}}
	if emoji != "" {
		b.Callout.Icon = &Icon{Type: "emoji", Emoji: emoji}
	}
	return b
}

// Code creates a fenced code block.
func Code(language, content string) Block {
	return Block{Object: "block", Type: "code", Code: &CodeBlock{
		RichText: []RichText{Text(content)},
		Language: language,
	}}
}

// Divider creates a horizontal rule.
func Divider() Block {
	return Block{Object: "block", Type: "divider", Divider: &struct{}{}}
}

// WithChildren returns a copy of the block with nested children attached.
// Blocks whose type cannot nest are returned unchanged.
func (b Block) WithChildren(children ...Block) Block {
	switch {
	case b.Paragraph != nil:
		c := *b.Paragraph
		c.Children = children
		b.Paragraph = &c
	case b.BulletedListItem != nil:
		c := *b.BulletedListItem
		c.Children = children
		b.BulletedListItem = &c
	case b.NumberedListItem != nil:
		c := *b.NumberedListItem
		c.Children = children
		b.NumberedListItem = &c
	case b.ToDo != nil:
		c := *b.ToDo
		c.Children = children
		b.ToDo = &c
	case b.Toggle != nil:
		c := *b.Toggle
		c.Children = children
		b.Toggle = &c
	case b.Quote != nil:
		c := *b.Quote
		c.Children = children
		b.Quote = &c
	case b.Callout != nil:
		c := *b.Callout
		c.Children = children
		b.Callout = &c
	}
	return b
}

// RichTextSpans returns the block's rich text spans, if its type carries any.
func (b Block) RichTextSpans() []RichText {
	switch {
	case b.Paragraph != nil:
		return b.Paragraph.RichText
	case b.Heading1 != nil:
		return b.Heading1.RichText
	case b.Heading2 != nil:
		return b.Heading2.RichText
	case b.Heading3 != nil:
		return b.Heading3.RichText
	case b.BulletedListItem != nil:
		return b.BulletedListItem.RichText
	case b.NumberedListItem != nil:
		return b.NumberedListItem.RichText
	case b.ToDo != nil:
		return b.ToDo.RichText
	case b.Toggle != nil:
		return b.Toggle.RichText
	case b.Quote != nil:
		return b.Quote.RichText
	case b.Callout != nil:
		return b.Callout.RichText
	case b.Code != nil:
		return b.Code.RichText
	}
	return nil
}

// ChildBlocks returns the block's nested children, if any.
func (b Block) ChildBlocks() []Block {
	switch {
	case b.Paragraph != nil:
		return b.Paragraph.Children
	case b.BulletedListItem != nil:
		return b.BulletedListItem.Children
	case b.NumberedListItem != nil:
		return b.NumberedListItem.Children
	case b.ToDo != nil:
		return b.ToDo.Children
	case b.Toggle != nil:
		return b.Toggle.Children
	case b.Callout != nil:
		return b.Callout.Children
	}
	return nil
}
