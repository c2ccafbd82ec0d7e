// Package document defines the source-side model of a document to publish:
// a title, a destination parent, optional database properties, and a tree of
// content blocks. Documents come from YAML files or from templates; builders
// turn them into API payloads.
package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Document is one publishable document.
type Document struct {
	Title      string              `yaml:"title"`
	Parent     Parent              `yaml:"parent"`
	Properties map[string]Property `yaml:"properties"`
	Blocks     []Block             `yaml:"blocks"`
}

// Parent names the destination. Exactly one of PageID or DatabaseID is set.
type Parent struct {
	PageID     string `yaml:"page_id"`
	DatabaseID string `yaml:"database_id"`
}

// Property is one database property value. Type selects which field applies.
type Property struct {
	Type     string   `yaml:"type"` // rich_text, number, select, multi_select, date, checkbox, url
	Text     string   `yaml:"text"`
	Number   float64  `yaml:"number"`
	Select   string   `yaml:"select"`
	Options  []string `yaml:"options"`
	Date     string   `yaml:"date"` // ISO 8601
	Checked  bool     `yaml:"checked"`
	URL      string   `yaml:"url"`
}

// Block is one content block. Type selects the shape; Children nest.
type Block struct {
	Type     string  `yaml:"type"` // paragraph, heading_1..heading_3, bulleted, numbered, to_do, toggle, quote, callout, code, divider
	Text     string  `yaml:"text"`
	Checked  bool    `yaml:"checked"`  // to_do
	Language string  `yaml:"language"` // code
	Emoji    string  `yaml:"emoji"`    // callout icon
	Children []Block `yaml:"children"`
}

// Load reads a document from a YAML file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document file: %w", err)
	}
	return &doc, nil
}
