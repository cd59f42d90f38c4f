package views

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/cmsconsole/richtext"
	"github.com/eringen/cmsconsole/widget"
)

// MultiSelect renders a multi-select. The hidden inputs carry the selection
// with the enclosing form; the data attributes let console.js replay events
// against the fragment endpoint.
func MultiSelect(m *widget.MultiSelect) templ.Component {
	return component(func(p *writer) {
		p.f(`<div class="multiselect" id="ms-%s" data-widget="/widgets/multiselect/%s" data-open="%t"%s>`,
			m.Name, PathEscape(m.Name), m.IsOpen(), attrIf(m.Listening(), `data-outside`))
		if m.Label != "" {
			p.f(`<span class="label">%s</span>`, m.Label)
		}
		for _, v := range m.Selected {
			p.f(`<input type="hidden" name="%s" value="%s"/>`, m.Name, v)
		}
		p.f(`<div class="multiselect-control%s" data-event="click">`, attrClass(m.Disabled, " disabled"))
		selected := m.SelectedOptions()
		if len(selected) == 0 {
			p.f(`<span class="placeholder">%s</span>`, m.Placeholder)
		}
		for _, o := range selected {
			p.f(`<span class="tag">%s<button type="button" class="tag-remove" data-event="remove" data-value="%s" aria-label="Remove %s">×</button></span>`,
				o.Label, o.Value, o.Label)
		}
		p.raw(`<span class="chevron">▾</span></div>`)
		if m.IsOpen() {
			p.raw(`<div class="dropdown-menu">`)
			p.f(`<input type="search" class="input dropdown-search" data-event="search" value="%s" placeholder="Search..." autofocus/>`, m.Search)
			opts := m.Filtered()
			if len(opts) == 0 {
				p.raw(`<div class="dropdown-empty">No options found</div>`)
			}
			for _, o := range opts {
				p.f(`<button type="button" class="dropdown-option%s" data-event="toggle" data-value="%s">`,
					attrClass(m.IsSelected(o.Value), " selected"), o.Value)
				p.f(`<span class="checkbox">%s</span>%s</button>`, checkMark(m.IsSelected(o.Value)), o.Label)
			}
			p.raw(`</div>`)
		}
		p.raw(`</div>`)
	})
}

// CustomSelect renders a searchable single select.
func CustomSelect(s *widget.CustomSelect) templ.Component {
	return component(func(p *writer) {
		p.f(`<div class="customselect" id="cs-%s" data-widget="/widgets/select/%s" data-open="%t"%s>`,
			s.Name, PathEscape(s.Name), s.IsOpen(), attrIf(s.Listening(), `data-outside`))
		if s.Label != "" {
			p.f(`<span class="label">%s%s</span>`, s.Label, safeIf(s.Required, ` <span class="required">*</span>`))
		}
		p.f(`<input type="hidden" name="%s" value="%s"/>`, s.Name, s.Value)
		p.f(`<div class="customselect-control%s%s" data-event="click">`,
			attrClass(s.Disabled, " disabled"), attrClass(s.Error != "", " invalid"))
		if opt, ok := s.Selected(); ok {
			p.f(`<span class="value">%s</span>`, opt.Label)
		} else {
			p.f(`<span class="placeholder">%s</span>`, s.Placeholder)
		}
		if s.ShowClear() {
			p.raw(`<button type="button" class="clear" data-event="clear" aria-label="Clear">×</button>`)
		}
		p.raw(`<span class="chevron">▾</span></div>`)
		if s.IsOpen() {
			p.raw(`<div class="dropdown-menu">`)
			p.f(`<input type="search" class="input dropdown-search" data-event="search" value="%s" placeholder="Search..." autofocus/>`, s.Search)
			opts := s.Filtered()
			if len(opts) == 0 {
				p.raw(`<div class="dropdown-empty">No options found</div>`)
			}
			for _, o := range opts {
				p.f(`<button type="button" class="dropdown-option%s" data-event="select" data-value="%s"><span>%s</span>`,
					attrClass(o.Value == s.Value, " selected"), o.Value, o.Label)
				if o.Description != "" {
					p.f(`<small>%s</small>`, o.Description)
				}
				p.raw(`</button>`)
			}
			p.raw(`</div>`)
		}
		if s.Error != "" {
			p.f(`<p class="field-error">%s</p>`, s.Error)
		}
		p.raw(`</div>`)
	})
}

// ImageUpload renders the file picker and its preview slot.
func ImageUpload(u *widget.ImageUpload) templ.Component {
	return component(func(p *writer) {
		p.f(`<div class="imageupload" data-preview="/widgets/image-preview?field=%s">`, u.Name)
		if u.Label != "" {
			p.f(`<span class="label">%s</span>`, u.Label)
		}
		p.f(`<input type="file" name="%s" accept="image/*" class="input"%s/>`, u.Name, attrIf(u.Disabled, "disabled"))
		p.raw(`<input type="hidden" name="removeImage" value="" data-remove-flag/>`)
		p.render(ImagePreview(u, ""))
		p.raw(`</div>`)
	})
}

// ImagePreview is the swappable part of ImageUpload.
func ImagePreview(u *widget.ImageUpload, errMsg string) templ.Component {
	return component(func(p *writer) {
		p.f(`<div class="image-preview" id="preview-%s" data-current="%s">`, u.Name, richtext.SafeURL(u.Current))
		if src := u.Shown(); src != "" {
			p.f(`<img src="%s" alt="Preview" class="max-h-48 rounded"/>`, previewSrc(src))
			p.raw(`<button type="button" class="btn btn-outline" data-event="remove-image">Remove image</button>`)
		}
		if errMsg != "" {
			p.f(`<p class="field-error">%s</p>`, errMsg)
		}
		p.raw(`</div>`)
	})
}

// Editor renders the rich-text field. The hidden textarea is what the form
// submits; console.js mirrors the editable area into it.
func Editor(e *widget.RichTextEditor) templ.Component {
	return component(func(p *writer) {
		p.f(`<div class="editor" id="editor-%s" data-editor="%s">`, e.Name, e.Name)
		if e.Label != "" {
			p.f(`<span class="label">%s</span>`, e.Label)
		}
		p.raw(`<div class="editor-toolbar">`)
		for _, b := range editorButtons {
			p.f(`<button type="button" data-cmd="%s" data-arg="%s" title="%s">%s</button>`, b.cmd, b.arg, b.title, b.label)
		}
		p.raw(`</div>`)
		p.f(`<div class="editor-area prose" contenteditable="%t" data-placeholder="%s">%s</div>`,
			!e.Disabled, e.Placeholder, safe(richtext.Sanitize(e.HTML())))
		p.f(`<textarea name="%s" hidden>%s</textarea></div>`, e.Name, e.HTML())
	})
}

var editorButtons = []struct{ cmd, arg, title, label string }{
	{"formatBlock", "h2", "Heading", "H2"},
	{"formatBlock", "h3", "Subheading", "H3"},
	{"bold", "", "Bold", "B"},
	{"italic", "", "Italic", "I"},
	{"underline", "", "Underline", "U"},
	{"insertUnorderedList", "", "Bullet list", "•"},
	{"insertOrderedList", "", "Numbered list", "1."},
	{"createLink", "", "Link", "🔗"},
	{"removeFormat", "", "Clear formatting", "⌫"},
}

func attrClass(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

func safeIf(cond bool, markup string) safe {
	if cond {
		return safe(markup)
	}
	return ""
}

func checkMark(on bool) string {
	if on {
		return "✓"
	}
	return ""
}

// previewSrc allows data URLs produced by the upload widget alongside the
// regular URL schemes.
func previewSrc(src string) string {
	if strings.HasPrefix(src, "data:image/") {
		return src
	}
	return richtext.SafeURL(src)
}
