package palette

import (
	"errors"
	"image/color"
	"math"
	"regexp"
	"testing"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestLookup_AllNames(t *testing.T) {
	for _, name := range Names() {
		p, err := Lookup(name)
		if err != nil {
			t.Fatalf("lookup %s: %v", name, err)
		}
		for _, pos := range []float64{0, 0.25, 0.5, 1} {
			if got := Hex(p.At(pos)); !hexPattern.MatchString(got) {
				t.Errorf("%s at %v: expected hex color, got %q", name, pos, got)
			}
		}
	}
}

func TestLookup_Default(t *testing.T) {
	p, err := Lookup("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	jet, _ := Lookup("JET")
	if Hex(p.At(0.3)) != Hex(jet.At(0.3)) {
		t.Error("empty name should select jet")
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("nope")
	if !errors.Is(err, ErrUnknownPalette) {
		t.Errorf("expected ErrUnknownPalette, got %v", err)
	}
}

func TestColorMapper_ScaleInvariance(t *testing.T) {
	p, _ := Lookup("viridis")
	got := ColorMapper(5, 0, 10, p)
	want := ColorMapper(0.5, 0, 1, p)
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestColorMapper_DegenerateRange(t *testing.T) {
	p, _ := Lookup("plasma")
	want := Hex(p.At(0))
	for _, v := range []float64{-100, 0, 5, 1e9} {
		if got := ColorMapper(v, 5, 5, p); got != want {
			t.Errorf("value %v: expected %s, got %s", v, want, got)
		}
	}
}

func TestColorMapper_OutOfRange(t *testing.T) {
	g := mustGradient("#000000", "#ffffff")
	if got := ColorMapper(-3, 0, 1, g); got != "#000000" {
		t.Errorf("below range: expected #000000, got %s", got)
	}
	if got := ColorMapper(4, 0, 1, g); got != "#ffffff" {
		t.Errorf("above range: expected #ffffff, got %s", got)
	}
}

func TestColorMapper_UnclampedInput(t *testing.T) {
	var seen []float64
	f := Func(func(t float64) color.Color {
		seen = append(seen, t)
		return color.Black
	})
	ColorMapper(20, 0, 10, f)
	if len(seen) != 1 || seen[0] != 2 {
		t.Errorf("expected palette evaluated at 2, got %v", seen)
	}
}

func TestMoreland_OutOfDomain(t *testing.T) {
	p, _ := Lookup("coolwarm")
	if Hex(p.At(-1)) != Hex(p.At(0)) {
		t.Error("underflow should return the low end color")
	}
	if Hex(p.At(2)) != Hex(p.At(1)) {
		t.Error("overflow should return the high end color")
	}
}

func TestGradient_Endpoints(t *testing.T) {
	g, err := NewGradient("#ff0000", "#0000ff")
	if err != nil {
		t.Fatal(err)
	}
	if got := Hex(g.At(0)); got != "#ff0000" {
		t.Errorf("expected #ff0000, got %s", got)
	}
	if got := Hex(g.At(1)); got != "#0000ff" {
		t.Errorf("expected #0000ff, got %s", got)
	}
	if _, err := NewGradient("nothex"); err == nil {
		t.Error("expected error for invalid stop")
	}
}

func TestColorMap(t *testing.T) {
	g := mustGradient("#000000", "#ffffff")
	cm := NewColorMap(g, 10, 20)

	c, err := cm.At(20)
	if err != nil {
		t.Fatal(err)
	}
	if Hex(c) != "#ffffff" {
		t.Errorf("expected #ffffff at max, got %s", Hex(c))
	}
	if n := len(cm.Palette(5).Colors()); n != 5 {
		t.Errorf("expected 5 colors, got %d", n)
	}
	cm.SetAlpha(0.5)
	c, _ = cm.At(15)
	if nrgba := c.(color.NRGBA); nrgba.A != 128 {
		t.Errorf("expected alpha 128, got %d", nrgba.A)
	}
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(color.RGBA{255, 0, 0, 255}, 2)
	if c.A != 255 || c.R != 255 {
		t.Errorf("unexpected color %+v", c)
	}
}

func TestPalettes_NaNPosition(t *testing.T) {
	want := Hex(BadColor)
	for _, name := range Names() {
		p, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if got := Hex(p.At(math.NaN())); got != want {
			t.Errorf("%s: expected bad color %s, got %s", name, want, got)
		}
		if got := ColorMapper(math.NaN(), 0, 1, p); got != want {
			t.Errorf("%s: expected mapper to give %s for NaN, got %s", name, want, got)
		}
		if got, end := ColorMapper(math.Inf(1), 0, 1, p), Hex(p.At(1)); got != end {
			t.Errorf("%s: expected +Inf to map to the top color %s, got %s", name, end, got)
		}
	}
}
