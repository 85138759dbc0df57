package terrain

import (
	"testing"

	"golang.org/x/image/colornames"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		height float64
		want   Color
	}{
		{-5.0, Water},
		{0, Water},
		{0.29, Water},
		{0.3, Sand},
		{0.39999, Sand},
		{0.4, Grass},
		{0.74, Grass},
		{0.75, Rock},
		{1.0, Rock},
		{10.0, Rock},
	}

	for _, tt := range tests {
		if got := Classify(tt.height); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.height, got, tt.want)
		}
	}
}

func TestColorString(t *testing.T) {
	want := []string{"water", "sand", "grass", "rock"}
	for i, c := range Colors {
		if c.String() != want[i] {
			t.Errorf("Color(%d).String() = %q, want %q", i, c.String(), want[i])
		}
	}
	if got := Color(9).String(); got != "Color(9)" {
		t.Errorf("unknown Color.String() = %q, want %q", got, "Color(9)")
	}
}

func TestColorRGBA(t *testing.T) {
	if Water.RGBA() != colornames.Blue {
		t.Errorf("Water.RGBA() = %v, want blue", Water.RGBA())
	}
	if Sand.RGBA() != colornames.Sandybrown {
		t.Errorf("Sand.RGBA() = %v, want sandybrown", Sand.RGBA())
	}
	if Grass.RGBA() != colornames.Green {
		t.Errorf("Grass.RGBA() = %v, want green", Grass.RGBA())
	}
	if Rock.RGBA() != colornames.Gray {
		t.Errorf("Rock.RGBA() = %v, want gray", Rock.RGBA())
	}
}

func TestColorFloat(t *testing.T) {
	got := Water.Float()
	want := [4]float32{0, 0, 1, 1}
	if got != want {
		t.Errorf("Water.Float() = %v, want %v", got, want)
	}
}
