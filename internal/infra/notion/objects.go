package notion

import (
	"encoding/json"
	"fmt"
	"time"
)

// ObjectKind is the discriminator every API response carries in its "object"
// field.
type ObjectKind string

const (
	KindPage        ObjectKind = "page"
	KindDatabase    ObjectKind = "database"
	KindBlock       ObjectKind = "block"
	KindList        ObjectKind = "list"
	KindErrorObject ObjectKind = "error"
)

// Parent locates a page or block in the workspace hierarchy.
type Parent struct {
	Type       string `json:"type,omitempty"`
	PageID     string `json:"page_id,omitempty"`
	DatabaseID string `json:"database_id,omitempty"`
	BlockID    string `json:"block_id,omitempty"`
	Workspace  bool   `json:"workspace,omitempty"`
}

// Page is a page object.
type Page struct {
	Object         ObjectKind      `json:"object"`
	ID             string          `json:"id"`
	CreatedTime    time.Time       `json:"created_time"`
	LastEditedTime time.Time       `json:"last_edited_time"`
	Archived       bool            `json:"archived"`
	Parent         Parent          `json:"parent"`
	Properties     json.RawMessage `json:"properties"`
	URL            string          `json:"url"`
}

// Database is a database object. Title and Properties stay raw: the schema is
// service-defined and the caller decides how deep to decode.
type Database struct {
	Object         ObjectKind      `json:"object"`
	ID             string          `json:"id"`
	CreatedTime    time.Time       `json:"created_time"`
	LastEditedTime time.Time       `json:"last_edited_time"`
	Title          json.RawMessage `json:"title"`
	Parent         Parent          `json:"parent"`
	Properties     json.RawMessage `json:"properties"`
	URL            string          `json:"url"`
}

// Block is a block object. Content stays raw for the same reason as database
// properties; Type tells the caller which key of Content to look at.
type Block struct {
	Object         ObjectKind `json:"object"`
	ID             string     `json:"id"`
	Type           string     `json:"type"`
	CreatedTime    time.Time  `json:"created_time"`
	LastEditedTime time.Time  `json:"last_edited_time"`
	HasChildren    bool       `json:"has_children"`
	Archived       bool       `json:"archived"`
	Parent         Parent     `json:"parent"`
}

// List is a paginated result envelope.
type List struct {
	Object     ObjectKind        `json:"object"`
	Results    []json.RawMessage `json:"results"`
	NextCursor string            `json:"next_cursor"`
	HasMore    bool              `json:"has_more"`
}

type envelope struct {
	Object ObjectKind `json:"object"`
}

// DecodeObject decodes a raw response into its declared kind. The switch is
// exhaustive over the kinds the service emits; anything else fails.
func DecodeObject(data []byte) (any, ObjectKind, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, "", fmt.Errorf("decode object envelope: %w", err)
	}

	switch env.Object {
	case KindPage:
		var p Page
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, env.Object, fmt.Errorf("decode page: %w", err)
		}
		return &p, env.Object, nil
	case KindDatabase:
		var d Database
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, env.Object, fmt.Errorf("decode database: %w", err)
		}
		return &d, env.Object, nil
	case KindBlock:
		var b Block
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, env.Object, fmt.Errorf("decode block: %w", err)
		}
		return &b, env.Object, nil
	case KindList:
		var l List
		if err := json.Unmarshal(data, &l); err != nil {
			return nil, env.Object, fmt.Errorf("decode list: %w", err)
		}
		return &l, env.Object, nil
	case KindErrorObject:
		var e Error
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, env.Object, fmt.Errorf("decode error object: %w", err)
		}
		return &e, env.Object, nil
	default:
		return nil, env.Object, fmt.Errorf("decode object: unknown kind %q", env.Object)
	}
}

// DecodePage narrows data to a page object.
func DecodePage(data []byte) (*Page, error) {
	v, kind, err := DecodeObject(data)
	if err != nil {
		return nil, err
	}
	p, ok := v.(*Page)
	if !ok {
		return nil, &KindError{Want: KindPage, Got: kind}
	}
	return p, nil
}

// DecodeDatabase narrows data to a database object.
func DecodeDatabase(data []byte) (*Database, error) {
	v, kind, err := DecodeObject(data)
	if err != nil {
		return nil, err
	}
	d, ok := v.(*Database)
	if !ok {
		return nil, &KindError{Want: KindDatabase, Got: kind}
	}
	return d, nil
}

// DecodeBlock narrows data to a block object.
func DecodeBlock(data []byte) (*Block, error) {
	v, kind, err := DecodeObject(data)
	if err != nil {
		return nil, err
	}
	b, ok := v.(*Block)
	if !ok {
		return nil, &KindError{Want: KindBlock, Got: kind}
	}
	return b, nil
}

// DecodeList narrows data to a list envelope.
func DecodeList(data []byte) (*List, error) {
	v, kind, err := DecodeObject(data)
	if err != nil {
		return nil, err
	}
	l, ok := v.(*List)
	if !ok {
		return nil, &KindError{Want: KindList, Got: kind}
	}
	return l, nil
}

// FilterPages decodes the list entries that declare themselves pages and
// silently drops everything else. Mixed result sets are normal for search.
func FilterPages(l *List) []*Page {
	pages := make([]*Page, 0, len(l.Results))
	for _, raw := range l.Results {
		v, _, err := DecodeObject(raw)
		if err != nil {
			continue
		}
		if p, ok := v.(*Page); ok {
			pages = append(pages, p)
		}
	}
	return pages
}

// FilterDatabases decodes the list entries that declare themselves databases.
func FilterDatabases(l *List) []*Database {
	dbs := make([]*Database, 0, len(l.Results))
	for _, raw := range l.Results {
		v, _, err := DecodeObject(raw)
		if err != nil {
			continue
		}
		if d, ok := v.(*Database); ok {
			dbs = append(dbs, d)
		}
	}
	return dbs
}

// FilterBlocks decodes the list entries that declare themselves blocks.
func FilterBlocks(l *List) []*Block {
	blocks := make([]*Block, 0, len(l.Results))
	for _, raw := range l.Results {
		v, _, err := DecodeObject(raw)
		if err != nil {
			continue
		}
		if b, ok := v.(*Block); ok {
			blocks = append(blocks, b)
		}
	}
	return blocks
}
