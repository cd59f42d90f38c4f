package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// Body is a request payload that knows its own content type.
type Body interface {
	Encode() (contentType string, r io.Reader, err error)
}

type jsonBody struct {
	v any
}

// JSON wraps v as an application/json body.
func JSON(v any) Body {
	return jsonBody{v: v}
}

func (b jsonBody) Encode() (string, io.Reader, error) {
	data, err := json.Marshal(b.v)
	if err != nil {
		return "", nil, err
	}
	return "application/json", bytes.NewReader(data), nil
}

// FilePart is a file attached to a multipart body.
type FilePart struct {
	Filename    string
	ContentType string
	Data        []byte
}

type part struct {
	name  string
	value string
	file  *FilePart
}

// Multipart is an ordered multipart/form-data body. It is built up with
// Field and File and encoded only when sent, so it can be inspected in tests.
type Multipart struct {
	parts []part
}

// NewMultipart returns an empty multipart body.
func NewMultipart() *Multipart {
	return &Multipart{}
}

// Field appends a text field.
func (m *Multipart) Field(name, value string) *Multipart {
	m.parts = append(m.parts, part{name: name, value: value})
	return m
}

// JSONField appends a field whose value is v encoded as JSON.
func (m *Multipart) JSONField(name string, v any) *Multipart {
	data, err := json.Marshal(v)
	if err != nil {
		data = []byte("null")
	}
	return m.Field(name, string(data))
}

// File appends a file part.
func (m *Multipart) File(name string, f FilePart) *Multipart {
	m.parts = append(m.parts, part{name: name, file: &f})
	return m
}

// Names lists the part names in insertion order.
func (m *Multipart) Names() []string {
	names := make([]string, 0, len(m.parts))
	for _, p := range m.parts {
		names = append(names, p.name)
	}
	return names
}

// Has reports whether a part called name exists.
func (m *Multipart) Has(name string) bool {
	for _, p := range m.parts {
		if p.name == name {
			return true
		}
	}
	return false
}

// Value returns the first text field called name.
func (m *Multipart) Value(name string) (string, bool) {
	for _, p := range m.parts {
		if p.name == name && p.file == nil {
			return p.value, true
		}
	}
	return "", false
}

// FileOf returns the first file part called name.
func (m *Multipart) FileOf(name string) (FilePart, bool) {
	for _, p := range m.parts {
		if p.name == name && p.file != nil {
			return *p.file, true
		}
	}
	return FilePart{}, false
}

// Encode implements Body.
func (m *Multipart) Encode() (string, io.Reader, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range m.parts {
		if p.file == nil {
			if err := w.WriteField(p.name, p.value); err != nil {
				return "", nil, fmt.Errorf("write field %s: %w", p.name, err)
			}
			continue
		}
		ct := p.file.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			escapeQuotes(p.name), escapeQuotes(p.file.Filename)))
		h.Set("Content-Type", ct)
		fw, err := w.CreatePart(h)
		if err != nil {
			return "", nil, fmt.Errorf("create file part %s: %w", p.name, err)
		}
		if _, err := fw.Write(p.file.Data); err != nil {
			return "", nil, fmt.Errorf("write file part %s: %w", p.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return "", nil, err
	}
	return w.FormDataContentType(), &buf, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
