// Package view holds the small state machines behind detail modals and image
// galleries.
package view

// DetailState tracks a detail modal and its nested delete confirmation. The
// confirmation is a separate flag from the modal itself, so canceling it
// returns to the detail view instead of closing everything.
type DetailState struct {
	open          bool
	confirmDelete bool
	selectedID    string
}

// Open shows the detail view for one record, with any previous confirmation
// dismissed.
func (s *DetailState) Open(id string) {
	s.open = true
	s.confirmDelete = false
	s.selectedID = id
}

// Close dismisses the modal and the confirmation together and clears the
// selection.
func (s *DetailState) Close() {
	s.open = false
	s.confirmDelete = false
	s.selectedID = ""
}

// RequestDelete raises the confirmation step; no-op unless the modal is open.
func (s *DetailState) RequestDelete() {
	if s.open {
		s.confirmDelete = true
	}
}

// CancelDelete drops back to the detail view.
func (s *DetailState) CancelDelete() {
	s.confirmDelete = false
}

func (s *DetailState) IsOpen() bool           { return s.open }
func (s *DetailState) ConfirmingDelete() bool { return s.open && s.confirmDelete }
func (s *DetailState) SelectedID() string     { return s.selectedID }

// StatusPicker backs the status dropdown inside an order detail modal: the
// update action stays disabled until the selection differs from the record's
// current status.
type StatusPicker struct {
	current  string
	selected string
}

func NewStatusPicker(current string) *StatusPicker {
	return &StatusPicker{current: current, selected: current}
}

func (p *StatusPicker) Select(status string) { p.selected = status }
func (p *StatusPicker) Selected() string     { return p.selected }

// CanApply reports whether the selection is an actual change.
func (p *StatusPicker) CanApply() bool { return p.selected != p.current }

// Applied records a confirmed transition so the picker disables again.
func (p *StatusPicker) Applied() { p.current = p.selected }
