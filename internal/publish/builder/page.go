package builder

import (
	"fmt"

	"github.com/notionpush/notionpush/internal/core/document"
	"github.com/notionpush/notionpush/internal/infra/notion"
)

// CreatePageParams is the body for page creation.
type CreatePageParams struct {
	Parent     notion.Parent            `json:"parent"`
	Properties map[string]PropertyValue `json:"properties"`
	Children   []Block                  `json:"children,omitempty"`
	Icon       *Icon                    `json:"icon,omitempty"`
}

// UpdatePageParams is the body for page updates.
type UpdatePageParams struct {
	Properties map[string]PropertyValue `json:"properties,omitempty"`
	Archived   *bool                    `json:"archived,omitempty"`
}

// AppendChildrenParams is the body for appending block children.
type AppendChildrenParams struct {
	Children []Block `json:"children"`
}

// PropertyValue is one property in a page body.
type PropertyValue struct {
	Title       []RichText     `json:"title,omitempty"`
	RichText    []RichText     `json:"rich_text,omitempty"`
	Number      *float64       `json:"number,omitempty"`
	Select      *SelectOption  `json:"select,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
	Date        *DateValue     `json:"date,omitempty"`
	Checkbox    *bool          `json:"checkbox,omitempty"`
	URL         string         `json:"url,omitempty"`
}

// SelectOption names a select choice.
type SelectOption struct {
	Name string `json:"name"`
}

// DateValue is a date or date range in ISO 8601.
type DateValue struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// PageBuilder accumulates a page payload. Build returns the finished params;
// the builder itself is single use.
type PageBuilder struct {
	params CreatePageParams
}

// NewPage starts a page under the given parent.
func NewPage(parent notion.Parent) *PageBuilder {
	return &PageBuilder{params: CreatePageParams{
		Parent:     parent,
		Properties: make(map[string]PropertyValue),
	}}
}

// Title sets the page title.
func (b *PageBuilder) Title(title string) *PageBuilder {
	b.params.Properties["title"] = PropertyValue{Title: []RichText{Text(title)}}
	return b
}

// Text sets a rich_text property.
func (b *PageBuilder) Text(name, content string) *PageBuilder {
	b.params.Properties[name] = PropertyValue{RichText: []RichText{Text(content)}}
	return b
}

// Number sets a number property.
func (b *PageBuilder) Number(name string, value float64) *PageBuilder {
	b.params.Properties[name] = PropertyValue{Number: &value}
	return b
}

// Select sets a select property.
func (b *PageBuilder) Select(name, option string) *PageBuilder {
	b.params.Properties[name] = PropertyValue{Select: &SelectOption{Name: option}}
	return b
}

// MultiSelect sets a multi_select property.
func (b *PageBuilder) MultiSelect(name string, options ...string) *PageBuilder {
	opts := make([]SelectOption, len(options))
	for i, o := range options {
		opts[i] = SelectOption{Name: o}
	}
	b.params.Properties[name] = PropertyValue{MultiSelect: opts}
	return b
}

// Date sets a date property from an ISO 8601 string.
func (b *PageBuilder) Date(name, start string) *PageBuilder {
	b.params.Properties[name] = PropertyValue{Date: &DateValue{Start: start}}
	return b
}

// Checkbox sets a checkbox property.
func (b *PageBuilder) Checkbox(name string, checked bool) *PageBuilder {
	b.params.Properties[name] = PropertyValue{Checkbox: &checked}
	return b
}

// URL sets a url property.
func (b *PageBuilder) URL(name, u string) *PageBuilder {
	b.params.Properties[name] = PropertyValue{URL: u}
	return b
}

// Children appends content blocks to the page body.
func (b *PageBuilder) Children(blocks ...Block) *PageBuilder {
	b.params.Children = append(b.params.Children, blocks...)
	return b
}

// EmojiIcon sets the page icon.
func (b *PageBuilder) EmojiIcon(emoji string) *PageBuilder {
	b.params.Icon = &Icon{Type: "emoji", Emoji: emoji}
	return b
}

// Build returns the finished payload.
func (b *PageBuilder) Build() *CreatePageParams {
	p := b.params
	return &p
}

// Archive builds an update payload that archives or restores a page.
func Archive(archived bool) *UpdatePageParams {
	return &UpdatePageParams{Archived: &archived}
}

// FromDocument converts a source document into a page creation payload.
func FromDocument(doc *document.Document) (*CreatePageParams, error) {
	parent := notion.Parent{}
	switch {
	case doc.Parent.PageID != "":
		parent.Type = "page_id"
		parent.PageID = doc.Parent.PageID
	case doc.Parent.DatabaseID != "":
		parent.Type = "database_id"
		parent.DatabaseID = doc.Parent.DatabaseID
	default:
		return nil, fmt.Errorf("document has no parent page_id or database_id")
	}

	pb := NewPage(parent).Title(doc.Title)

	for name, prop := range doc.Properties {
		switch prop.Type {
		case "rich_text":
			pb.Text(name, prop.Text)
		case "number":
			pb.Number(name, prop.Number)
		case "select":
			pb.Select(name, prop.Select)
		case "multi_select":
			pb.MultiSelect(name, prop.Options...)
		case "date":
			pb.Date(name, prop.Date)
		case "checkbox":
			pb.Checkbox(name, prop.Checked)
		case "url":
			pb.URL(name, prop.URL)
		default:
			return nil, fmt.Errorf("property %q: unknown type %q", name, prop.Type)
		}
	}

	blocks, err := blocksFromDocument(doc.Blocks)
	if err != nil {
		return nil, err
	}
	pb.Children(blocks...)

	return pb.Build(), nil
}

func blocksFromDocument(srcs []document.Block) ([]Block, error) {
	blocks := make([]Block, 0, len(srcs))
	for _, src := range srcs {
		b, err := blockFromSource(src)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func blockFromSource(src document.Block) (Block, error) {
	var b Block
	switch src.Type {
	case "paragraph":
		b = Paragraph(Text(src.Text))
	case "heading_1":
		b = Heading1(Text(src.Text))
	case "heading_2":
		b = Heading2(Text(src.Text))
	case "heading_3":
		b = Heading3(Text(src.Text))
	case "bulleted":
		b = Bulleted(Text(src.Text))
	case "numbered":
		b = Numbered(Text(src.Text))
	case "to_do":
		b = ToDo(src.Checked, Text(src.Text))
	case "toggle":
		b = Toggle(Text(src.Text))
	case "quote":
		b = Quote(Text(src.Text))
	case "callout":
		b = Callout(src.Emoji, Text(src.Text))
	case "code":
		b = Code(src.Language, src.Text)
	case "divider":
		b = Divider()
	default:
		return Block{}, fmt.Errorf("unknown block type %q", src.Type)
	}

	if len(src.Children) > 0 {
		children, err := blocksFromDocument(src.Children)
		if err != nil {
			return Block{}, err
		}
		b = b.WithChildren(children...)
	}
	return b, nil
}
