package cover

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// Kind discriminates the representations a cover payload can take.
type Kind int

const (
	KindAbsent Kind = iota
	KindBytes
	KindBase64
	KindURL
)

// Payload is a book cover in exactly one of its wire representations:
// raw bytes, base64 text, or a URL (absolute or server-relative).
// The zero value is Absent.
type Payload struct {
	kind Kind
	data []byte
	str  string
}

// Bytes wraps a raw byte sequence. An empty slice is Absent.
func Bytes(b []byte) Payload {
	if len(b) == 0 {
		return Payload{}
	}
	return Payload{kind: KindBytes, data: b}
}

// Base64 wraps base64 text, with or without a data: prefix.
func Base64(s string) Payload {
	if s == "" {
		return Payload{}
	}
	return Payload{kind: KindBase64, str: s}
}

// URL wraps an absolute or server-relative image URL.
func URL(s string) Payload {
	if s == "" {
		return Payload{}
	}
	return Payload{kind: KindURL, str: s}
}

// Absent is the empty payload.
func Absent() Payload { return Payload{} }

func (p Payload) Kind() Kind     { return p.kind }
func (p Payload) IsAbsent() bool { return p.kind == KindAbsent }

// Raw returns the byte sequence for a KindBytes payload, nil otherwise.
func (p Payload) Raw() []byte {
	if p.kind != KindBytes {
		return nil
	}
	return p.data
}

// Text returns the string form for KindBase64 and KindURL payloads.
func (p Payload) Text() string { return p.str }

// UnmarshalJSON is the single place the server's loosely shaped cover
// field is interpreted. A JSON array of numbers is a byte sequence; a
// string is classified by prefix, falling back to base64 detection for
// bare encodings and to a server-relative URL for anything else.
func (p *Payload) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == `""` {
		*p = Payload{}
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var nums []byte
		// json decodes numeric arrays into []uint8 only via an
		// intermediate; decode as []int to accept both shapes.
		var ints []int
		if err := json.Unmarshal(data, &ints); err != nil {
			return err
		}
		nums = make([]byte, len(ints))
		for i, n := range ints {
			nums[i] = byte(n)
		}
		*p = Bytes(nums)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = classify(s)
	return nil
}

// MarshalJSON writes the canonical submission form: byte sequences are
// encoded as plain base64 text, strings pass through, absent is null.
func (p Payload) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case KindAbsent:
		return []byte("null"), nil
	case KindBytes:
		return json.Marshal(base64.StdEncoding.EncodeToString(p.data))
	default:
		return json.Marshal(p.str)
	}
}

// classify maps a non-empty cover string onto a payload kind.
func classify(s string) Payload {
	if s == "" {
		return Payload{}
	}
	if strings.HasPrefix(s, "data:") {
		return Base64(s)
	}
	if strings.HasPrefix(s, "http") {
		return URL(s)
	}
	// A bare base64 blob and a relative cover path are both plain
	// strings; anything that round-trips through the decoder and is
	// long enough to be an image is treated as base64.
	if len(s) >= 64 && len(s)%4 == 0 {
		if _, err := base64.StdEncoding.DecodeString(s); err == nil {
			return Base64(s)
		}
	}
	return URL(s)
}
