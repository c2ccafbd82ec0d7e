package builder

import (
	"encoding/json"
	"testing"

	"github.com/notionpush/notionpush/internal/core/document"
	"github.com/notionpush/notionpush/internal/infra/notion"
)

func TestPageBuilder(t *testing.T) {
	params := NewPage(notion.Parent{Type: "database_id", DatabaseID: "db1"}).
		Title("Weekly report").
		Select("Status", "Draft").
		Number("Week", 34).
		Checkbox("Reviewed", false).
		Children(Heading1(Text("Summary")), Paragraph(Text("All good."))).
		Build()

	if params.Parent.DatabaseID != "db1" {
		t.Errorf("parent = %+v", params.Parent)
	}
	title := params.Properties["title"]
	if len(title.Title) != 1 || title.Title[0].Text.Content != "Weekly report" {
		t.Errorf("title = %+v", title)
	}
	if params.Properties["Status"].Select.Name != "Draft" {
		t.Errorf("status = %+v", params.Properties["Status"])
	}
	if *params.Properties["Week"].Number != 34 {
		t.Errorf("week = %+v", params.Properties["Week"])
	}
	if len(params.Children) != 2 {
		t.Errorf("children = %d, want 2", len(params.Children))
	}
}

func TestFromDocument(t *testing.T) {
	doc := &document.Document{
		Title:  "Doc",
		Parent: document.Parent{PageID: "root"},
		Properties: map[string]document.Property{
			"Tags": {Type: "multi_select", Options: []string{"a", "b"}},
		},
		Blocks: []document.Block{
			{Type: "heading_1", Text: "Intro"},
			{Type: "to_do", Text: "task", Checked: true},
			{Type: "code", Text: "x := 1", Language: "go"},
			{Type: "bulleted", Text: "outer", Children: []document.Block{
				{Type: "paragraph", Text: "inner"},
			}},
		},
	}

	params, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("from document: %v", err)
	}

	if params.Parent.PageID != "root" || params.Parent.Type != "page_id" {
		t.Errorf("parent = %+v", params.Parent)
	}
	if len(params.Properties["Tags"].MultiSelect) != 2 {
		t.Errorf("tags = %+v", params.Properties["Tags"])
	}
	if len(params.Children) != 4 {
		t.Fatalf("children = %d, want 4", len(params.Children))
	}
	if !params.Children[1].ToDo.Checked {
		t.Error("to_do should be checked")
	}
	if nested := params.Children[3].ChildBlocks(); len(nested) != 1 {
		t.Errorf("nested = %d, want 1", len(nested))
	}
}

func TestFromDocument_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  *document.Document
	}{
		{"no parent", &document.Document{Title: "x"}},
		{"unknown block", &document.Document{
			Title:  "x",
			Parent: document.Parent{PageID: "root"},
			Blocks: []document.Block{{Type: "hologram"}},
		}},
		{"unknown property", &document.Document{
			Title:      "x",
			Parent:     document.Parent{PageID: "root"},
			Properties: map[string]document.Property{"P": {Type: "telepathy"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromDocument(tt.doc); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestArchive(t *testing.T) {
	p := Archive(true)
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"archived":true}` {
		t.Errorf("payload = %s", data)
	}
}
