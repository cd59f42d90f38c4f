// Package widget implements the state of the console's interactive form
// controls. Each widget is a plain value mutated by the events the browser
// reports; the views package renders it and the fragment endpoints replay
// the events.
package widget

import "strings"

// Option is one choice offered by a select widget.
type Option struct {
	Value       string
	Label       string
	Description string
}

// Dropdown is the open/close and search state shared by the select widgets.
// The outside-pointer subscription exists only while the menu is open.
type Dropdown struct {
	Search   string
	Disabled bool

	open      bool
	listening bool
}

// IsOpen reports whether the menu is shown.
func (d *Dropdown) IsOpen() bool { return d.open }

// Listening reports whether outside pointer events are being watched.
func (d *Dropdown) Listening() bool { return d.listening }

// Click toggles the menu. Disabled widgets ignore it.
func (d *Dropdown) Click() {
	if d.Disabled {
		return
	}
	if d.open {
		d.hide()
		return
	}
	d.open = true
	d.listening = true
}

// SetSearch updates the filter text.
func (d *Dropdown) SetSearch(s string) {
	d.Search = s
}

// PointerDown handles a pointer press anywhere in the document. Presses
// outside the widget close it.
func (d *Dropdown) PointerDown(inside bool) {
	if !d.listening || inside {
		return
	}
	d.hide()
}

// Close tears the widget down, dropping the outside-pointer subscription.
func (d *Dropdown) Close() {
	d.hide()
}

func (d *Dropdown) hide() {
	d.open = false
	d.listening = false
}

func filterOptions(options []Option, search string) []Option {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return options
	}
	var out []Option
	for _, o := range options {
		if strings.Contains(strings.ToLower(o.Label), q) {
			out = append(out, o)
		}
	}
	return out
}

func findOption(options []Option, value string) (Option, bool) {
	for _, o := range options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}
