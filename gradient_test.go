package appicon

import (
	"image/color"
	"testing"
)

func TestBackgroundTopLeft(t *testing.T) {
	for _, size := range GenerateSizes {
		if got := Background(size).RGBAAt(0, 0); got != GradientFrom {
			t.Errorf("size %d: (0,0) = %+v, want %+v", size, got, GradientFrom)
		}
	}
}

func TestBackgroundBottomRight(t *testing.T) {
	tests := []struct {
		size int
		want color.RGBA
	}{
		// ratio 1022/1024
		{512, color.RGBA{R: 117, G: 75, B: 162, A: 255}},
		// ratio 62/64
		{32, color.RGBA{R: 117, G: 76, B: 164, A: 255}},
	}
	for _, tt := range tests {
		got := Background(tt.size).RGBAAt(tt.size-1, tt.size-1)
		if got != tt.want {
			t.Errorf("size %d: bottom-right = %+v, want %+v", tt.size, got, tt.want)
		}
	}
}

func TestBackgroundApproachesEndColor(t *testing.T) {
	dist := func(c color.RGBA) int {
		d := 0
		for _, v := range [][2]uint8{{c.R, GradientTo.R}, {c.G, GradientTo.G}, {c.B, GradientTo.B}} {
			diff := int(v[0]) - int(v[1])
			if diff < 0 {
				diff = -diff
			}
			d += diff
		}
		return d
	}
	prev := -1
	for _, size := range []int{32, 64, 128, 256, 512} {
		d := dist(Background(size).RGBAAt(size-1, size-1))
		if prev >= 0 && d > prev {
			t.Errorf("size %d: distance to end color %d grew from %d", size, d, prev)
		}
		prev = d
	}
	if prev > 2 {
		t.Errorf("at 512 the bottom-right is %d away from the end color, want <= 2", prev)
	}
}

func TestBackgroundOpaque(t *testing.T) {
	if !Background(64).Opaque() {
		t.Error("background should be opaque")
	}
}

func TestBackgroundDiagonalSymmetry(t *testing.T) {
	img := Background(128)
	for _, p := range [][2]int{{10, 90}, {0, 127}, {64, 3}} {
		a := img.RGBAAt(p[0], p[1])
		b := img.RGBAAt(p[1], p[0])
		if a != b {
			t.Errorf("(%d,%d)=%+v differs from mirrored %+v", p[0], p[1], a, b)
		}
	}
}

func TestBackgroundZeroSize(t *testing.T) {
	if img := Background(0); !img.Bounds().Empty() {
		t.Errorf("Background(0) bounds = %v, want empty", img.Bounds())
	}
}
