package assets

import (
	"io/fs"
	"testing"

	"github.com/golang/freetype/truetype"
)

func TestDefaultIcon(t *testing.T) {
	tests := []struct {
		width      int
		wantWidth  int
		wantHeight int
	}{
		{50, 50, 70},
		{32, 32, 45},
		{1, 4, 5},
	}
	for _, tt := range tests {
		b := DefaultIcon(tt.width).Bounds()
		if b.Dx() != tt.wantWidth || b.Dy() != tt.wantHeight {
			t.Errorf("DefaultIcon(%d) = %dx%d, want %dx%d", tt.width, b.Dx(), b.Dy(), tt.wantWidth, tt.wantHeight)
		}
	}

	icon := DefaultIcon(50)
	if _, _, _, a := icon.At(25, 26).RGBA(); a == 0 {
		t.Errorf("keyhole should be opaque")
	}
	if _, _, _, a := icon.At(0, 69).RGBA(); a != 0 {
		t.Errorf("corner outside the shield should be transparent")
	}
}

func TestDefaultFontParses(t *testing.T) {
	if _, err := truetype.Parse(DefaultFont); err != nil {
		t.Fatalf("default font: %v", err)
	}
}

func TestWebUI(t *testing.T) {
	data, err := fs.ReadFile(WebUI, "index.html")
	if err != nil {
		t.Fatalf("index.html: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("index.html is empty")
	}
}
