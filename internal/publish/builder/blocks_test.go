package builder

import (
	"encoding/json"
	"testing"
)

func TestParagraph_JSONShape(t *testing.T) {
	b := Paragraph(Text("hello "), Text("world").Bold())

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["object"] != "block" || decoded["type"] != "paragraph" {
		t.Errorf("envelope = %v", decoded)
	}

	para, ok := decoded["paragraph"].(map[string]any)
	if !ok {
		t.Fatal("missing paragraph content")
	}
	spans, ok := para["rich_text"].([]any)
	if !ok || len(spans) != 2 {
		t.Fatalf("rich_text = %v, want 2 spans", para["rich_text"])
	}

	second := spans[1].(map[string]any)
	ann, ok := second["annotations"].(map[string]any)
	if !ok || ann["bold"] != true {
		t.Errorf("second span annotations = %v, want bold", second["annotations"])
	}
}

func TestCode_Language(t *testing.T) {
	b := Code("go", "fmt.Println()")
	if b.Type != "code" || b.Code == nil {
		t.Fatalf("block = %+v", b)
	}
	if b.Code.Language != "go" {
		t.Errorf("language = %q", b.Code.Language)
	}
	if len(b.Code.RichText) != 1 || b.Code.RichText[0].Text.Content != "fmt.Println()" {
		t.Errorf("content = %+v", b.Code.RichText)
	}
}

func TestWithChildren(t *testing.T) {
	child := Paragraph(Text("nested"))
	b := Bulleted(Text("item")).WithChildren(child)

	children := b.ChildBlocks()
	if len(children) != 1 || children[0].Type != "paragraph" {
		t.Fatalf("children = %+v", children)
	}

	// The original is a separate value and stays unmodified.
	orig := Bulleted(Text("item"))
	if len(orig.ChildBlocks()) != 0 {
		t.Error("constructor result should have no children")
	}
}

func TestWithChildren_NonNestingType(t *testing.T) {
	b := Divider().WithChildren(Paragraph(Text("x")))
	if len(b.ChildBlocks()) != 0 {
		t.Error("divider cannot nest children")
	}
}

func TestRichText_AnnotationsDoNotAlias(t *testing.T) {
	base := Text("x").Bold()
	italic := base.Italic()

	if base.Annotations.Italic {
		t.Error("italic leaked into the base span")
	}
	if !italic.Annotations.Bold || !italic.Annotations.Italic {
		t.Errorf("derived span annotations = %+v", italic.Annotations)
	}
}

func TestCallout_Icon(t *testing.T) {
	b := Callout("🚀", Text("ship it"))
	if b.Callout.Icon == nil || b.Callout.Icon.Emoji != "🚀" {
		t.Errorf("icon = %+v", b.Callout.Icon)
	}

	plain := Callout("", Text("no icon"))
	if plain.Callout.Icon != nil {
		t.Error("empty emoji should not set an icon")
	}
}
