// Package builder assembles API payloads for pages, properties and block
// trees. Builders only shape data; they never talk to the network. The
// resulting payload objects marshal directly into the service's JSON schema.
package builder

// RichText is one rich text span.
type RichText struct {
	Type        string       `json:"type"`
	Text        *TextContent `json:"text,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
}

// TextContent is the literal content of a text span.
type TextContent struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// Link is an inline URL.
type Link struct {
	URL string `json:"url"`
}

// Annotations are the style flags on a span.
type Annotations struct {
	Bold          bool   `json:"bold,omitempty"`
	Italic        bool   `json:"italic,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
	Underline     bool   `json:"underline,omitempty"`
	Code          bool   `json:"code,omitempty"`
	Color         string `json:"color,omitempty"`
}

// Text creates a plain text span.
func Text(content string) RichText {
	return RichText{
		Type: "text",
		Text: &TextContent{Content: content},
	}
}

// TextLink creates a text span linking to url.
func TextLink(content, url string) RichText {
	return RichText{
		Type: "text",
		Text: &TextContent{Content: content, Link: &Link{URL: url}},
	}
}

func (r RichText) annotate(f func(*Annotations)) RichText {
	a := Annotations{}
	if r.Annotations != nil {
		a = *r.Annotations
	}
	f(&a)
	r.Annotations = &a
	return r
}

// Bold returns a copy of the span with bold set.
func (r RichText) Bold() RichText {
	return r.annotate(func(a *Annotations) { a.Bold = true })
}

// Italic returns a copy of the span with italic set.
func (r RichText) Italic() RichText {
	return r.annotate(func(a *Annotations) { a.Italic = true })
}

// Code returns a copy of the span with inline code set.
func (r RichText) Code() RichText {
	return r.annotate(func(a *Annotations) { a.Code = true })
}

// Color returns a copy of the span with the given color.
func (r RichText) Color(color string) RichText {
	return r.annotate(func(a *Annotations) { a.Color = color })
}

// ContentLength is the literal length of the span, used for limit checks.
func (r RichText) ContentLength() int {
	if r.Text == nil {
		return 0
	}
	return len(r.Text.Content)
}
