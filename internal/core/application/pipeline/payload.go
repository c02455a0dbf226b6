package pipeline

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"grubdash/internal/pkg/errs"
)

// Payload is the "data" object of a { "data": { ... } } request envelope. Field
// values stay as raw JSON until a stage or a terminal handler asks for them with
// the typed accessors.
type Payload struct {
	fields map[string]json.RawMessage
}

// ParseEnvelope decodes a request body. An empty body, a body without "data" or a
// "data" that is not an object all produce an empty payload; only malformed JSON
// is rejected.
func ParseEnvelope(body []byte) (Payload, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Payload{}, nil
	}
	if !json.Valid(body) {
		return Payload{}, BadRequest("Invalid request body", errs.NewValueIsInvalidError("body"))
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return Payload{}, nil
	}
	return parseObject(envelope["data"]), nil
}

func parseObject(raw json.RawMessage) Payload {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Payload{}
	}
	return Payload{fields: fields}
}

// Has reports whether field holds a truthy value: anything but an absent key,
// null, false, 0 or "".
func (p Payload) Has(field string) bool {
	raw, ok := p.fields[field]
	if !ok {
		return false
	}
	return truthy(raw)
}

// Defined reports whether field is present with a value other than null.
func (p Payload) Defined(field string) bool {
	raw, ok := p.fields[field]
	if !ok {
		return false
	}
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

// String returns the value of field when it is a JSON string.
func (p Payload) String(field string) (string, bool) {
	raw, ok := p.fields[field]
	if !ok || len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Integer returns the value of field when it is a JSON number without a
// fractional part. 5 and 5.0 are integers; 5.5 and "5" are not.
func (p Payload) Integer(field string) (int, bool) {
	raw, ok := p.fields[field]
	if !ok {
		return 0, false
	}
	return integer(raw)
}

// Text renders field for use in messages: strings without quotes, anything else
// as its JSON text.
func (p Payload) Text(field string) string {
	if s, ok := p.String(field); ok {
		return s
	}
	return string(p.fields[field])
}

// Items returns the elements of the array held by field. Elements that are not
// objects become empty payloads.
func (p Payload) Items(field string) ([]Payload, bool) {
	raw, ok := p.fields[field]
	if !ok {
		return nil, false
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil || elems == nil {
		return nil, false
	}

	items := make([]Payload, 0, len(elems))
	for _, elem := range elems {
		items = append(items, parseObject(elem))
	}
	return items, true
}

func truthy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	switch raw[0] {
	case 'n', 'f':
		return false
	case 't', '{', '[':
		return true
	case '"':
		return len(raw) > 2
	default:
		f, _ := strconv.ParseFloat(string(raw), 64)
		return f != 0
	}
}

func integer(raw json.RawMessage) (int, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
		return 0, false
	}
	if n, err := strconv.ParseInt(string(raw), 10, 64); err == nil {
		return int(n), true
	}

	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int(f), true
}
