package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"plantstore-admin/internal/view"
)

func TestDetailState(t *testing.T) {
	var s view.DetailState

	s.Open("o1")
	assert.True(t, s.IsOpen())
	assert.Equal(t, "o1", s.SelectedID())
	assert.False(t, s.ConfirmingDelete())

	// canceling the confirmation returns to the detail view, not all the
	// way out
	s.RequestDelete()
	assert.True(t, s.ConfirmingDelete())
	s.CancelDelete()
	assert.True(t, s.IsOpen())
	assert.False(t, s.ConfirmingDelete())

	s.Close()
	assert.False(t, s.IsOpen())
	assert.Empty(t, s.SelectedID())
}

func TestStatusPicker(t *testing.T) {
	p := view.NewStatusPicker("pending")
	assert.False(t, p.CanApply())

	p.Select("shipped")
	assert.True(t, p.CanApply())

	p.Applied()
	assert.False(t, p.CanApply())
}

func TestGalleryWrapAround(t *testing.T) {
	g := view.NewGallery(3)

	g.PrevCurrent()
	assert.Equal(t, 2, g.Current())
	g.NextCurrent()
	assert.Equal(t, 0, g.Current())

	// modal index moves independently of the inline index
	g.NextCurrent()
	g.OpenModal()
	assert.Equal(t, 1, g.Modal())
	g.NextModal()
	g.NextModal()
	assert.Equal(t, 0, g.Modal())
	assert.Equal(t, 1, g.Current())
}

func TestGalleryEmpty(t *testing.T) {
	g := view.NewGallery(0)
	g.NextCurrent()
	g.PrevModal()
	assert.Equal(t, 0, g.Current())
	assert.Equal(t, 0, g.Modal())
}
