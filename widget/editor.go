package widget

import "github.com/eringen/cmsconsole/richtext"

// RichTextEditor holds the HTML of a rich-text field.
type RichTextEditor struct {
	Name        string
	Label       string
	Placeholder string
	Disabled    bool

	// OnChange receives the document after every user edit.
	OnChange func(string)

	content string
}

// NewRichTextEditor returns an editor showing value.
func NewRichTextEditor(name, value string) *RichTextEditor {
	return &RichTextEditor{Name: name, content: value, Placeholder: "Start writing..."}
}

// Edit applies a user edit.
func (e *RichTextEditor) Edit(html string) {
	if e.Disabled {
		return
	}
	e.content = html
	if e.OnChange != nil {
		e.OnChange(html)
	}
}

// SetValue replaces the document from outside, for example when a modal is
// reopened on another record. The document is only reset when the new value
// differs structurally; echoes of the editor's own output are ignored so the
// caret is not lost. OnChange is not called.
func (e *RichTextEditor) SetValue(html string) bool {
	if richtext.Equal(e.content, html) {
		return false
	}
	e.content = html
	return true
}

// HTML returns the current document.
func (e *RichTextEditor) HTML() string {
	return e.content
}

// Empty reports whether the document has no visible content.
func (e *RichTextEditor) Empty() bool {
	return richtext.Normalize(e.content) == ""
}
