// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RichText is a long-form body. Content stores hand it back either as an
// array of Portable Text blocks or as a plain Markdown string.
type RichText struct {
	Blocks   []Block
	Markdown string
}

// Block is one Portable Text block. Only the fields the site renders are
// decoded; unknown block types are skipped at render time.
type Block struct {
	Type     string    `json:"_type"`
	Key      string    `json:"_key,omitempty"`
	Style    string    `json:"style,omitempty"`
	ListItem string    `json:"listItem,omitempty"`
	Level    int       `json:"level,omitempty"`
	Children []Span    `json:"children,omitempty"`
	MarkDefs []MarkDef `json:"markDefs,omitempty"`
	Asset    *AssetRef `json:"asset,omitempty"`
	Alt      string    `json:"alt,omitempty"`
}

// Span is an inline run of text with decorator and annotation marks.
type Span struct {
	Type  string   `json:"_type"`
	Key   string   `json:"_key,omitempty"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// MarkDef defines an annotation referenced from Span.Marks by key.
type MarkDef struct {
	Type string `json:"_type"`
	Key  string `json:"_key"`
	Href string `json:"href,omitempty"`
}

// IsEmpty reports whether there is nothing to render.
func (r RichText) IsEmpty() bool {
	return len(r.Blocks) == 0 && len(bytes.TrimSpace([]byte(r.Markdown))) == 0
}

// UnmarshalJSON accepts a block array, a string, or null.
func (r *RichText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = RichText{}
		return nil
	}
	switch data[0] {
	case '[':
		var blocks []Block
		if err := json.Unmarshal(data, &blocks); err != nil {
			return fmt.Errorf("decoding rich text blocks: %w", err)
		}
		*r = RichText{Blocks: blocks}
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding rich text string: %w", err)
		}
		*r = RichText{Markdown: s}
		return nil
	default:
		return fmt.Errorf("rich text: unsupported JSON value starting with %q", data[0])
	}
}

// MarshalJSON writes the form the value was decoded from.
func (r RichText) MarshalJSON() ([]byte, error) {
	if len(r.Blocks) > 0 {
		return json.Marshal(r.Blocks)
	}
	if r.Markdown != "" {
		return json.Marshal(r.Markdown)
	}
	return []byte("null"), nil
}
