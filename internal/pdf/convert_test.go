package pdf

import "testing"

func TestFitz_FirstPagePNG_RejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := (Fitz{}).FirstPagePNG([]byte("not a pdf")); err == nil {
		t.Error("garbage input should fail to open")
	}
	if _, err := (Fitz{}).FirstPagePNG(nil); err == nil {
		t.Error("empty input should fail to open")
	}
}
