// Package template provides prebuilt document shapes for common publishing
// flows. Templates produce the same document model that YAML files load
// into, so the CLI treats both sources identically.
package template

import (
	"fmt"
	"time"

	"github.com/notionpush/notionpush/internal/core/document"
)

// ChangelogParams fills the changelog entry template.
type ChangelogParams struct {
	Version string
	Date    time.Time
	Added   []string
	Fixed   []string
	Notes   string
}

// Changelog builds a changelog entry document.
func Changelog(parent document.Parent, p ChangelogParams) *document.Document {
	doc := &document.Document{
		Title:  fmt.Sprintf("Release %s", p.Version),
		Parent: parent,
		Blocks: []document.Block{
			{Type: "heading_1", Text: fmt.Sprintf("Release %s — %s", p.Version, p.Date.Format("2006-01-02"))},
		},
	}

	if len(p.Added) > 0 {
		doc.Blocks = append(doc.Blocks, document.Block{Type: "heading_2", Text: "Added"})
		for _, item := range p.Added {
			doc.Blocks = append(doc.Blocks, document.Block{Type: "bulleted", Text: item})
		}
	}
	if len(p.Fixed) > 0 {
		doc.Blocks = append(doc.Blocks, document.Block{Type: "heading_2", Text: "Fixed"})
		for _, item := range p.Fixed {
			doc.Blocks = append(doc.Blocks, document.Block{Type: "bulleted", Text: item})
		}
	}
	if p.Notes != "" {
		doc.Blocks = append(doc.Blocks,
			document.Block{Type: "divider"},
			document.Block{Type: "callout", Emoji: "📝", Text: p.Notes},
		)
	}
	return doc
}

// MeetingNotesParams fills the meeting notes template.
type MeetingNotesParams struct {
	Topic     string
	Date      time.Time
	Attendees []string
	Agenda    []string
}

// MeetingNotes builds a meeting notes document with an empty action item
// list ready to fill in.
func MeetingNotes(parent document.Parent, p MeetingNotesParams) *document.Document {
	doc := &document.Document{
		Title:  fmt.Sprintf("%s — %s", p.Topic, p.Date.Format("2006-01-02")),
		Parent: parent,
		Blocks: []document.Block{
			{Type: "heading_2", Text: "Attendees"},
		},
	}
	for _, a := range p.Attendees {
		doc.Blocks = append(doc.Blocks, document.Block{Type: "bulleted", Text: a})
	}
	doc.Blocks = append(doc.Blocks, document.Block{Type: "heading_2", Text: "Agenda"})
	for _, item := range p.Agenda {
		doc.Blocks = append(doc.Blocks, document.Block{Type: "numbered", Text: item})
	}
	doc.Blocks = append(doc.Blocks,
		document.Block{Type: "heading_2", Text: "Action items"},
		document.Block{Type: "to_do", Text: "..."},
	)
	return doc
}

// StatusReportParams fills the status report template.
type StatusReportParams struct {
	Project  string
	Date     time.Time
	Status   string // on_track, at_risk, blocked
	Summary  string
	Done     []string
	Upcoming []string
}

// StatusReport builds a weekly status report document.
func StatusReport(parent document.Parent, p StatusReportParams) *document.Document {
	emoji := map[string]string{
		"on_track": "🟢",
		"at_risk":  "🟡",
		"blocked":  "🔴",
	}[p.Status]
	if emoji == "" {
		emoji = "⚪"
	}

	doc := &document.Document{
		Title:  fmt.Sprintf("%s status — %s", p.Project, p.Date.Format("2006-01-02")),
		Parent: parent,
		Blocks: []document.Block{
			{Type: "callout", Emoji: emoji, Text: p.Summary},
			{Type: "heading_2", Text: "Done"},
		},
	}
	for _, item := range p.Done {
		doc.Blocks = append(doc.Blocks, document.Block{Type: "bulleted", Text: item})
	}
	doc.Blocks = append(doc.Blocks, document.Block{Type: "heading_2", Text: "Upcoming"})
	for _, item := range p.Upcoming {
		doc.Blocks = append(doc.Blocks, document.Block{Type: "bulleted", Text: item})
	}
	return doc
}
