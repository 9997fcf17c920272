// Package selection tracks which single product is open for detailed
// inspection, the modal state of the storefront pages.
package selection

import (
	"sync"

	"marketplace-catalog/internal/models"
)

// Selector holds the currently selected product and the active image index of
// its gallery. Closing the selection never touches the underlying catalog.
type Selector struct {
	mu       sync.Mutex
	current  *models.Product
	imageIdx int
}

// Select opens the given product for inspection, resetting the gallery to the
// main image.
func (s *Selector) Select(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := p
	s.current = &clone
	s.imageIdx = 0
}

// Close clears the selection.
func (s *Selector) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.imageIdx = 0
}

// Current returns the selected product, if any.
func (s *Selector) Current() (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.Product{}, false
	}
	return *s.current, true
}

// ActiveImage returns the currently displayed gallery image and its index.
// An empty selection or empty gallery yields "" and -1.
func (s *Selector) ActiveImage() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return "", -1
	}
	gallery := s.current.Gallery()
	if len(gallery) == 0 {
		return "", -1
	}
	return gallery[s.imageIdx], s.imageIdx
}

// NextImage advances the gallery, wrapping past the last image.
func (s *Selector) NextImage() {
	s.step(1)
}

// PrevImage steps the gallery back, wrapping before the first image.
func (s *Selector) PrevImage() {
	s.step(-1)
}

func (s *Selector) step(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	n := len(s.current.Gallery())
	if n == 0 {
		return
	}
	s.imageIdx = ((s.imageIdx+delta)%n + n) % n
}
