// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.

// Package profile loads a flat JSON profile document into an ordered list of
// fields. Every value is stringified once at load time; the rest of the
// program only ever sees the string form.
package profile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrMalformed is returned when the document is not valid JSON.
	ErrMalformed = errors.New("malformed JSON")
	// ErrNotObject is returned when the top-level JSON value is not an object.
	ErrNotObject = errors.New("JSON must be an object (key/value pairs)")
)

// Kind tags the JSON type a field value was loaded from.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindNull
	// KindOther covers nested objects and arrays. Their value is the
	// compact JSON encoding of the sub-document.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	default:
		return "other"
	}
}

// Field is a single top-level key/value pair of a profile document.
type Field struct {
	Key   string
	Value string
	Kind  Kind
}

// Display renders the field the way the lists show it.
func (f Field) Display() string {
	return f.Key + ": " + f.Value
}

//go:embed sample.json
var sampleJSON []byte

// Sample returns the built-in sample profile shown when no file is given.
func Sample() []Field {
	fields, err := Parse(sampleJSON)
	if err != nil {
		return nil
	}
	return fields
}

// Parse decodes a JSON object into fields, preserving the document's key
// order. A repeated key keeps the position of its first occurrence and the
// value of its last.
func Parse(data []byte) ([]Field, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrNotObject
	}

	var fields []Field
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected token %v", ErrMalformed, tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: value of %q: %v", ErrMalformed, key, err)
		}
		f, err := newField(key, raw)
		if err != nil {
			return nil, err
		}
		if i, dup := index[key]; dup {
			fields[i] = f
			continue
		}
		index[key] = len(fields)
		fields = append(fields, f)
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after object", ErrMalformed)
	}
	return fields, nil
}

func newField(key string, raw json.RawMessage) (Field, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Field{}, fmt.Errorf("%w: empty value for %q", ErrMalformed, key)
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Field{}, fmt.Errorf("%w: value of %q: %v", ErrMalformed, key, err)
		}
		return Field{Key: key, Value: s, Kind: KindString}, nil
	case 't', 'f':
		return Field{Key: key, Value: string(raw), Kind: KindBool}, nil
	case 'n':
		return Field{Key: key, Value: "", Kind: KindNull}, nil
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return Field{}, fmt.Errorf("%w: value of %q: %v", ErrMalformed, key, err)
		}
		return Field{Key: key, Value: buf.String(), Kind: KindOther}, nil
	default:
		// Numbers keep their literal text so 4.50 does not become 4.5.
		return Field{Key: key, Value: string(raw), Kind: KindNumber}, nil
	}
}
