package sprite

import (
	"fmt"
	"image"
)

// Releasable is an uploaded image that must be freed explicitly.
type Releasable interface {
	Deallocate()
}

// Sheet owns at most one uploaded sprite sheet.
type Sheet[T Releasable] struct {
	img    T
	loaded bool
	upload func(image.Image) T
}

// NewSheet returns an empty sheet that uploads decoded images with upload.
func NewSheet[T Releasable](upload func(image.Image) T) *Sheet[T] {
	return &Sheet[T]{upload: upload}
}

// Load decodes the sheet at path, checks that it holds every clip and
// uploads it. A previously loaded sheet is released first, and stays
// released if the new one fails.
func (s *Sheet[T]) Load(path string, clips []image.Rectangle) error {
	s.Free()

	src, err := Decode(path)
	if err != nil {
		return err
	}
	if err := CheckSheet(src.Bounds(), clips); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	s.img = s.upload(src)
	s.loaded = true
	return nil
}

// Image returns the uploaded sheet, or false if none is held.
func (s *Sheet[T]) Image() (T, bool) { return s.img, s.loaded }

// Free releases the sheet. Calling it on an empty sheet does nothing.
func (s *Sheet[T]) Free() {
	if !s.loaded {
		return
	}
	s.img.Deallocate()
	var zero T
	s.img = zero
	s.loaded = false
}
