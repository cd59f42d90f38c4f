package widget

import "slices"

// MultiSelect picks any number of options, shown as removable tags.
type MultiSelect struct {
	Dropdown
	Name        string
	Label       string
	Placeholder string
	Options     []Option
	Selected    []string

	// OnChange receives the new selection, never containing duplicates.
	OnChange func([]string)
}

// NewMultiSelect returns a closed multi-select with the given selection.
// Duplicate ids in selected are dropped.
func NewMultiSelect(name string, options []Option, selected []string) *MultiSelect {
	m := &MultiSelect{Name: name, Options: options, Placeholder: "Select options..."}
	m.Selected = dedupe(selected)
	return m
}

// IsSelected reports whether value is part of the selection.
func (m *MultiSelect) IsSelected(value string) bool {
	return slices.Contains(m.Selected, value)
}

// Toggle adds value to the selection, or removes it if already selected.
func (m *MultiSelect) Toggle(value string) {
	if m.Disabled {
		return
	}
	if m.IsSelected(value) {
		m.set(slices.DeleteFunc(slices.Clone(m.Selected), func(v string) bool { return v == value }))
		return
	}
	m.set(append(slices.Clone(m.Selected), value))
}

// Remove drops value from the selection.
func (m *MultiSelect) Remove(value string) {
	if m.Disabled || !m.IsSelected(value) {
		return
	}
	m.set(slices.DeleteFunc(slices.Clone(m.Selected), func(v string) bool { return v == value }))
}

// Filtered returns the options whose label contains the search text.
func (m *MultiSelect) Filtered() []Option {
	return filterOptions(m.Options, m.Search)
}

// SelectedLabels returns the labels of the selection in selection order.
// Ids without a matching option are skipped.
func (m *MultiSelect) SelectedLabels() []string {
	var out []string
	for _, v := range m.Selected {
		if o, ok := findOption(m.Options, v); ok {
			out = append(out, o.Label)
		}
	}
	return out
}

// SelectedOptions is SelectedLabels with the values attached.
func (m *MultiSelect) SelectedOptions() []Option {
	var out []Option
	for _, v := range m.Selected {
		if o, ok := findOption(m.Options, v); ok {
			out = append(out, o)
		}
	}
	return out
}

func (m *MultiSelect) set(selected []string) {
	m.Selected = dedupe(selected)
	if m.OnChange != nil {
		m.OnChange(slices.Clone(m.Selected))
	}
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
