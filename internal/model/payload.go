package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// ValueKind tags the shape of a free-form payload value
type ValueKind int

const (
	KindText ValueKind = iota
	KindList
	KindObject
)

// Value is one free-form value: text, a list of text, or a nested object
type Value struct {
	Kind   ValueKind
	Text   string
	List   []string
	Object Payload
}

// Field is a named value inside a Payload
type Field struct {
	Name  string
	Value Value
}

// Payload is a generated document (design brief, listing copy, analysis)
// whose fields are not known ahead of time. Field order follows the JSON
// document.
type Payload []Field

// UnmarshalJSON decodes a JSON object keeping its key order
func (p *Payload) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, jsonNull) {
		*p = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("payload: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("payload: expected object, got %v", tok)
	}

	fields := Payload{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("payload: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("payload: unexpected key %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("payload field %q: %w", key, err)
		}
		value, err := decodeValue(raw)
		if err != nil {
			return fmt.Errorf("payload field %q: %w", key, err)
		}
		fields = append(fields, Field{Name: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("payload: %w", err)
	}
	*p = fields
	return nil
}

// MarshalJSON writes the payload back as an object in field order
func (p Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		var val []byte
		switch f.Value.Kind {
		case KindList:
			val, err = json.Marshal(f.Value.List)
		case KindObject:
			val, err = f.Value.Object.MarshalJSON()
		default:
			val, err = json.Marshal(f.Value.Text)
		}
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func decodeValue(raw json.RawMessage) (Value, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Value{Kind: KindText}, nil
	}
	switch raw[0] {
	case '{':
		var obj Payload
		if err := obj.UnmarshalJSON(raw); err != nil {
			return Value{}, err
		}
		return Value{Kind: KindObject, Object: obj}, nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return Value{}, err
		}
		list := make([]string, 0, len(items))
		for _, item := range items {
			v, err := decodeValue(item)
			if err != nil {
				return Value{}, err
			}
			list = append(list, v.String())
		}
		return Value{Kind: KindList, List: list}, nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Value{}, err
		}
		return Value{Kind: KindText, Text: s}, nil
	default:
		if bytes.Equal(raw, jsonNull) {
			return Value{Kind: KindText}, nil
		}
		return Value{Kind: KindText, Text: string(raw)}, nil
	}
}

// String flattens the value into a single line of text
func (v Value) String() string {
	switch v.Kind {
	case KindList:
		return strings.Join(v.List, ", ")
	case KindObject:
		parts := make([]string, 0, len(v.Object))
		for _, f := range v.Object {
			parts = append(parts, f.Name+": "+f.Value.String())
		}
		return strings.Join(parts, "; ")
	default:
		return v.Text
	}
}

// IsEmpty reports whether the value carries no content
func (v Value) IsEmpty() bool {
	switch v.Kind {
	case KindList:
		return len(v.List) == 0
	case KindObject:
		return len(v.Object) == 0
	default:
		return strings.TrimSpace(v.Text) == ""
	}
}

// Get returns the value of the first field whose normalized name matches
// any of names. Matching ignores case, spaces, dashes and underscores.
func (p Payload) Get(names ...string) (Value, bool) {
	for _, name := range names {
		want := normalizeKey(name)
		for _, f := range p {
			if normalizeKey(f.Name) == want {
				return f.Value, true
			}
		}
	}
	return Value{}, false
}

// Text returns the flattened text of a field, or "" when absent
func (p Payload) Text(names ...string) string {
	v, ok := p.Get(names...)
	if !ok {
		return ""
	}
	return v.String()
}

// List returns a field as a list. Text values are split on commas.
func (p Payload) List(names ...string) []string {
	v, ok := p.Get(names...)
	if !ok {
		return nil
	}
	switch v.Kind {
	case KindList:
		return v.List
	case KindText:
		var out []string
		for _, part := range strings.Split(v.Text, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	default:
		return []string{v.String()}
	}
}

// Without returns a copy of the payload minus the named fields
func (p Payload) Without(names ...string) Payload {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[normalizeKey(n)] = true
	}
	out := make(Payload, 0, len(p))
	for _, f := range p {
		if !drop[normalizeKey(f.Name)] {
			out = append(out, f)
		}
	}
	return out
}

func normalizeKey(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// HumanizeKey turns a field name like "color_palette" into "Color Palette"
func HumanizeKey(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
