package sprite

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

type fakeImage struct {
	src   image.Image
	freed int
}

func (f *fakeImage) Deallocate() { f.freed++ }

func writeSheet(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return path
}

func newFakeSheet(uploads *[]*fakeImage) *Sheet[*fakeImage] {
	return NewSheet(func(img image.Image) *fakeImage {
		f := &fakeImage{src: img}
		*uploads = append(*uploads, f)
		return f
	})
}

func TestSheetReloadFreesPrevious(t *testing.T) {
	var uploads []*fakeImage
	s := newFakeSheet(&uploads)
	clips := []image.Rectangle{image.Rect(0, 0, 2, 2)}
	path := writeSheet(t, 4, 4)

	if err := s.Load(path, clips); err != nil {
		t.Fatal(err)
	}
	if err := s.Load(path, clips); err != nil {
		t.Fatal(err)
	}
	if len(uploads) != 2 {
		t.Fatalf("uploads = %d, want 2", len(uploads))
	}
	if uploads[0].freed != 1 || uploads[1].freed != 0 {
		t.Fatalf("freed counts %d,%d, want 1,0", uploads[0].freed, uploads[1].freed)
	}
	img, ok := s.Image()
	if !ok || img != uploads[1] {
		t.Fatal("sheet does not hold the latest upload")
	}
	if img.src.Bounds().Dx() != 4 {
		t.Errorf("uploaded image is %v", img.src.Bounds())
	}
}

func TestSheetFailedLoadStaysReleased(t *testing.T) {
	var uploads []*fakeImage
	s := newFakeSheet(&uploads)
	path := writeSheet(t, 4, 4)
	if err := s.Load(path, []image.Rectangle{image.Rect(0, 0, 2, 2)}); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name  string
		path  string
		clips []image.Rectangle
	}{
		{"clip outside sheet", path, []image.Rectangle{image.Rect(0, 0, 8, 8)}},
		{"missing file", filepath.Join(t.TempDir(), "none.png"), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := s.Load(tc.path, tc.clips); err == nil {
				t.Fatal("expected an error")
			}
			if _, ok := s.Image(); ok {
				t.Fatal("failed load left a sheet loaded")
			}
		})
	}
	if len(uploads) != 1 || uploads[0].freed != 1 {
		t.Fatalf("uploads=%d freed=%d, want one upload freed once", len(uploads), uploads[0].freed)
	}
}

func TestSheetFreeIsIdempotent(t *testing.T) {
	var uploads []*fakeImage
	s := newFakeSheet(&uploads)
	s.Free() // empty sheet

	if err := s.Load(writeSheet(t, 4, 4), nil); err != nil {
		t.Fatal(err)
	}
	s.Free()
	s.Free()
	if uploads[0].freed != 1 {
		t.Fatalf("freed %d times, want 1", uploads[0].freed)
	}
	if _, ok := s.Image(); ok {
		t.Fatal("sheet still loaded after Free")
	}
}
