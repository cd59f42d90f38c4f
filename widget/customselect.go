package widget

// CustomSelect picks a single option from a searchable menu.
type CustomSelect struct {
	Dropdown
	Name        string
	Label       string
	Placeholder string
	Options     []Option
	Value       string
	Required    bool
	Clearable   bool
	Error       string

	OnChange func(string)
}

// NewCustomSelect returns a closed, clearable select holding value.
func NewCustomSelect(name string, options []Option, value string) *CustomSelect {
	return &CustomSelect{
		Name:        name,
		Options:     options,
		Value:       value,
		Placeholder: "Select an option",
		Clearable:   true,
	}
}

// Selected returns the option matching Value.
func (s *CustomSelect) Selected() (Option, bool) {
	return findOption(s.Options, s.Value)
}

// Filtered returns the options whose label contains the search text.
func (s *CustomSelect) Filtered() []Option {
	return filterOptions(s.Options, s.Search)
}

// Select chooses value, closes the menu and clears the search.
func (s *CustomSelect) Select(value string) {
	if s.Disabled {
		return
	}
	s.Value = value
	s.hide()
	s.Search = ""
	if s.OnChange != nil {
		s.OnChange(value)
	}
}

// Clear empties the selection.
func (s *CustomSelect) Clear() {
	if s.Disabled || !s.Clearable {
		return
	}
	s.Value = ""
	s.Search = ""
	if s.OnChange != nil {
		s.OnChange("")
	}
}

// ShowClear reports whether the clear button is rendered.
func (s *CustomSelect) ShowClear() bool {
	return s.Clearable && s.Value != "" && !s.Disabled
}

// Click toggles the menu, clearing the search when it closes.
func (s *CustomSelect) Click() {
	s.Dropdown.Click()
	if !s.open {
		s.Search = ""
	}
}

// PointerDown closes the menu on outside presses and clears the search.
func (s *CustomSelect) PointerDown(inside bool) {
	if !s.listening || inside {
		return
	}
	s.hide()
	s.Search = ""
}
