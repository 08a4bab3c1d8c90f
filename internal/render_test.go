package internal

import (
	"image"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	testCases := []struct {
		spec    string
		want    color.NRGBA
		wantErr bool
	}{
		{spec: "white", want: color.NRGBA{255, 255, 255, 255}},
		{spec: "Black", want: color.NRGBA{0, 0, 0, 255}},
		{spec: " orange ", want: color.NRGBA{255, 165, 0, 255}},
		{spec: "#fff", want: color.NRGBA{255, 255, 255, 255}},
		{spec: "#FF0000", want: color.NRGBA{255, 0, 0, 255}},
		{spec: "#1a2b3c", want: color.NRGBA{0x1a, 0x2b, 0x3c, 255}},
		{spec: "rgba(255,255,255,128)", want: color.NRGBA{255, 255, 255, 128}},
		{spec: "rgba(10, 20, 30, 40)", want: color.NRGBA{10, 20, 30, 40}},
		{spec: "", wantErr: true},
		{spec: "notacolor", wantErr: true},
		{spec: "#ff", wantErr: true},
		{spec: "#ggg", wantErr: true},
		{spec: "rgba(1,2,3)", wantErr: true},
		{spec: "rgba(300,0,0,0)", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.spec, func(t *testing.T) {
			got, err := ParseColor(tc.spec)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tc.spec, err)
			}
			if got != tc.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tc.spec, got, tc.want)
			}
		})
	}
}

func TestNewRenderer_RejectsBadInput(t *testing.T) {
	if _, err := NewRenderer(0, "white"); err == nil {
		t.Error("expected error for font size 0")
	}
	if _, err := NewRenderer(-12, "white"); err == nil {
		t.Error("expected error for negative font size")
	}
	if _, err := NewRenderer(36, "chartreuse-ish"); err == nil {
		t.Error("expected error for unknown color")
	}
}

func TestRenderer_Measure(t *testing.T) {
	r, err := NewRenderer(36, "white")
	if err != nil {
		t.Fatal(err)
	}

	w, h := r.Measure("2023-07-04")
	if w <= 0 || h <= 0 {
		t.Fatalf("expected positive text box, got %dx%d", w, h)
	}

	big, err := NewRenderer(72, "white")
	if err != nil {
		t.Fatal(err)
	}
	bw, bh := big.Measure("2023-07-04")
	if bw <= w || bh <= h {
		t.Errorf("expected larger font to measure larger, got %dx%d vs %dx%d", bw, bh, w, h)
	}
}

func TestRenderer_StampDrawsPixels(t *testing.T) {
	r, err := NewRenderer(24, "white")
	if err != nil {
		t.Fatal(err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, 300, 100))
	for i := range img.Pix {
		if i%4 == 3 {
			img.Pix[i] = 255 // opaque black
		}
	}

	r.Stamp(img, "2023-07-04", 10, 10)

	w, h := r.Measure("2023-07-04")
	touched := false
	for y := 10; y < 10+h+2 && !touched; y++ {
		for x := 10; x < 10+w+2; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			if cr != 0 || cg != 0 || cb != 0 {
				touched = true
				break
			}
		}
	}
	if !touched {
		t.Error("expected stamped text to change pixels inside its box")
	}
}
