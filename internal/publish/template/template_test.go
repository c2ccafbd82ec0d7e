package template

import (
	"testing"
	"time"

	"github.com/notionpush/notionpush/internal/core/document"
	"github.com/notionpush/notionpush/internal/publish/builder"
	"github.com/notionpush/notionpush/internal/publish/validate"
)

var testParent = document.Parent{PageID: "parent-page"}

func validateTemplate(t *testing.T, doc *document.Document) {
	t.Helper()
	params, err := builder.FromDocument(doc)
	if err != nil {
		t.Fatalf("build %q: %v", doc.Title, err)
	}
	if err := validate.Page(params); err != nil {
		t.Fatalf("validate %q: %v", doc.Title, err)
	}
}

func TestChangelog(t *testing.T) {
	doc := Changelog(testParent, ChangelogParams{
		Version: "1.4.0",
		Date:    time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Added:   []string{"bulk export", "keyboard shortcuts"},
		Fixed:   []string{"crash on empty query"},
		Notes:   "Rollout is staged over the week.",
	})

	if doc.Title != "Release 1.4.0" {
		t.Errorf("title = %q", doc.Title)
	}
	if doc.Parent != testParent {
		t.Errorf("parent = %+v", doc.Parent)
	}

	// heading + Added section (1+2) + Fixed section (1+1) + divider + callout
	if len(doc.Blocks) != 8 {
		t.Fatalf("blocks = %d, want 8", len(doc.Blocks))
	}
	if doc.Blocks[0].Type != "heading_1" {
		t.Errorf("first block = %q", doc.Blocks[0].Type)
	}
	last := doc.Blocks[len(doc.Blocks)-1]
	if last.Type != "callout" || last.Text != "Rollout is staged over the week." {
		t.Errorf("notes block = %+v", last)
	}

	validateTemplate(t, doc)
}

func TestChangelog_OmitsEmptySections(t *testing.T) {
	doc := Changelog(testParent, ChangelogParams{
		Version: "1.4.1",
		Date:    time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Fixed:   []string{"regression in 1.4.0"},
	})

	for _, b := range doc.Blocks {
		if b.Text == "Added" {
			t.Error("empty Added section should be omitted")
		}
		if b.Type == "divider" || b.Type == "callout" {
			t.Errorf("empty notes should omit %q block", b.Type)
		}
	}
}

func TestMeetingNotes(t *testing.T) {
	doc := MeetingNotes(testParent, MeetingNotesParams{
		Topic:     "Planning",
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Attendees: []string{"ana", "tomas"},
		Agenda:    []string{"roadmap", "oncall"},
	})

	if doc.Title != "Planning — 2026-09-01" {
		t.Errorf("title = %q", doc.Title)
	}
	last := doc.Blocks[len(doc.Blocks)-1]
	if last.Type != "to_do" {
		t.Errorf("last block = %q, want to_do", last.Type)
	}

	validateTemplate(t, doc)
}

func TestStatusReport(t *testing.T) {
	tests := []struct {
		status string
		emoji  string
	}{
		{"on_track", "🟢"},
		{"at_risk", "🟡"},
		{"blocked", "🔴"},
		{"unknown", "⚪"},
	}
	for _, tc := range tests {
		t.Run(tc.status, func(t *testing.T) {
			doc := StatusReport(testParent, StatusReportParams{
				Project:  "Importer",
				Date:     time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
				Status:   tc.status,
				Summary:  "All milestones on schedule.",
				Done:     []string{"shipped v2 schema"},
				Upcoming: []string{"backfill"},
			})

			if doc.Blocks[0].Type != "callout" || doc.Blocks[0].Emoji != tc.emoji {
				t.Errorf("summary block = %+v, want emoji %q", doc.Blocks[0], tc.emoji)
			}
			validateTemplate(t, doc)
		})
	}
}
