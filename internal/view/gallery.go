package view

// Gallery tracks two independent positions over one image list: the inline
// preview index and the full-screen modal index. Both wrap at the bounds.
type Gallery struct {
	size    int
	current int
	modal   int
}

func NewGallery(size int) *Gallery {
	return &Gallery{size: size}
}

func (g *Gallery) Current() int { return g.current }
func (g *Gallery) Modal() int   { return g.modal }

func (g *Gallery) NextCurrent() { g.current = g.step(g.current, 1) }
func (g *Gallery) PrevCurrent() { g.current = g.step(g.current, -1) }
func (g *Gallery) NextModal()   { g.modal = g.step(g.modal, 1) }
func (g *Gallery) PrevModal()   { g.modal = g.step(g.modal, -1) }

// OpenModal starts full-screen viewing at the inline position without
// linking the two indexes afterwards.
func (g *Gallery) OpenModal() { g.modal = g.current }

func (g *Gallery) step(idx, delta int) int {
	if g.size == 0 {
		return 0
	}
	idx += delta
	if idx < 0 {
		return g.size - 1
	}
	if idx >= g.size {
		return 0
	}
	return idx
}
