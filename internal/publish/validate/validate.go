// Package validate enforces the service's documented payload limits before
// anything reaches the transport. The API layer itself does not re-validate;
// it only checks response object kinds.
package validate

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/notionpush/notionpush/internal/publish/builder"
)

// Service payload limits.
const (
	MaxRichTextLength     = 2000
	MaxChildrenPerRequest = 100
	MaxNestingDepth       = 2
)

var knownBlockTypes = []interface{}{
	"paragraph", "heading_1", "heading_2", "heading_3",
	"bulleted_list_item", "numbered_list_item", "to_do", "toggle",
	"quote", "callout", "code", "divider",
}

// Page checks a page creation payload: a non-empty title property and a
// valid block tree.
func Page(p *builder.CreatePageParams) error {
	title, ok := p.Properties["title"]
	if !ok || len(title.Title) == 0 {
		return fmt.Errorf("page: missing title property")
	}
	if err := validation.Validate(title.Title[0].Text.Content,
		validation.Required,
		validation.RuneLength(1, MaxRichTextLength),
	); err != nil {
		return fmt.Errorf("page title: %w", err)
	}

	return Blocks(p.Children)
}

// Blocks checks a block tree against the service limits. The tree may be
// longer than one request allows; the publisher chunks it at transport time.
func Blocks(blocks []builder.Block) error {
	for i, b := range blocks {
		if err := block(b, 0); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}

// Append checks a single append request body, which unlike a full tree is
// bounded at MaxChildrenPerRequest.
func Append(p *builder.AppendChildrenParams) error {
	if err := validation.Validate(p.Children,
		validation.Required,
		validation.Length(1, MaxChildrenPerRequest),
	); err != nil {
		return fmt.Errorf("append children: %w", err)
	}
	return Blocks(p.Children)
}

func block(b builder.Block, depth int) error {
	if depth > MaxNestingDepth {
		return fmt.Errorf("nesting exceeds %d levels", MaxNestingDepth)
	}

	if err := validation.Validate(b.Type,
		validation.Required,
		validation.In(knownBlockTypes...),
	); err != nil {
		return fmt.Errorf("type %q: %w", b.Type, err)
	}

	for _, span := range b.RichTextSpans() {
		if span.Text == nil {
			continue
		}
		if err := validation.Validate(span.Text.Content,
			validation.RuneLength(0, MaxRichTextLength),
		); err != nil {
			return fmt.Errorf("rich text: %w", err)
		}
	}

	children := b.ChildBlocks()
	if err := validation.Validate(children,
		validation.Length(0, MaxChildrenPerRequest),
	); err != nil {
		return fmt.Errorf("children: %w", err)
	}
	for i, child := range children {
		if err := block(child, depth+1); err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
	}
	return nil
}
