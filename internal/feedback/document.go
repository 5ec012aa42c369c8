// Package feedback models the JSON feedback document exchanged between the
// producer command, the session cache, and the hosting launcher, and
// implements query filtering over its items.
//
// A document is a JSON object with an "items" array and an optional
// "variables" string map. Items carry a display "title", an optional
// "match" text override used for scoring, and arbitrary passthrough fields
// the engine never inspects. The document is kept as raw JSON and edited in
// place so every opaque field — on items and at the top level — survives
// byte-for-byte.
package feedback

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrMalformedDocument indicates the input is not a valid feedback
// document: either not JSON at all or missing the items array.
var ErrMalformedDocument = errors.New("malformed feedback document")

// Item is one candidate row of a feedback document.
type Item struct {
	// Title is the display title.
	Title string

	// Match is the optional text override used for scoring.
	Match string

	hasMatch bool
	raw      string
}

// MatchText returns the text the item should be scored on: the match
// override when present, the title otherwise.
func (it Item) MatchText() string {
	if it.hasMatch {
		return it.Match
	}
	return it.Title
}

// JSON returns the item's original JSON object, passthrough fields intact.
func (it Item) JSON() string {
	return it.raw
}

// Document is a parsed feedback document.
type Document struct {
	raw   []byte
	items []Item
}

// Parse validates and parses a feedback document.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrMalformedDocument)
	}
	arr := gjson.GetBytes(data, "items")
	if !arr.Exists() || !arr.IsArray() {
		return nil, fmt.Errorf("%w: no items array", ErrMalformedDocument)
	}

	doc := &Document{raw: data}
	arr.ForEach(func(_, value gjson.Result) bool {
		item := Item{
			Title: value.Get("title").String(),
			raw:   value.Raw,
		}
		if m := value.Get("match"); m.Exists() {
			item.Match = m.String()
			item.hasMatch = true
		}
		doc.items = append(doc.items, item)
		return true
	})
	return doc, nil
}

// Items returns the document's items in order.
func (d *Document) Items() []Item {
	return d.items
}

// Len returns the number of items.
func (d *Document) Len() int {
	return len(d.items)
}

// Variables returns the document's variable map. Never nil.
func (d *Document) Variables() map[string]string {
	vars := make(map[string]string)
	gjson.GetBytes(d.raw, "variables").ForEach(func(key, value gjson.Result) bool {
		vars[key.String()] = value.String()
		return true
	})
	return vars
}

// SetVariable sets a variable on the document, creating the variables map
// if absent.
func (d *Document) SetVariable(name, value string) error {
	raw, err := sjson.SetBytes(d.raw, "variables."+escapePath(name), value)
	if err != nil {
		return fmt.Errorf("setting variable %q: %w", name, err)
	}
	d.raw = raw
	return nil
}

// SetItems replaces the document's items, preserving each item's original
// JSON and every other document field.
func (d *Document) SetItems(items []Item) error {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, it := range items {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(it.raw)
	}
	sb.WriteByte(']')

	raw, err := sjson.SetRawBytes(d.raw, "items", []byte(sb.String()))
	if err != nil {
		return fmt.Errorf("replacing items: %w", err)
	}
	d.raw = raw
	d.items = items
	return nil
}

// JSON returns the document as raw JSON.
func (d *Document) JSON() []byte {
	return d.raw
}

// escapePath escapes a key for use as a single sjson path component.
func escapePath(key string) string {
	var sb strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
