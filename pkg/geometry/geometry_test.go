package geometry

import (
	"math"
	"testing"
)

func TestSizeDeflateClampsAtZero(t *testing.T) {
	got := Sz(10, 4).Deflate(Thickness{Left: 3, Top: 3, Right: 3, Bottom: 3})
	if got != Sz(4, 0) {
		t.Errorf("Deflate = %v, want 4x0", got)
	}
}

func TestSizeInflate(t *testing.T) {
	got := Sz(10, 20).Inflate(Thickness{Left: 1, Top: 2, Right: 3, Bottom: 4})
	if got != Sz(14, 26) {
		t.Errorf("Inflate = %v, want 14x26", got)
	}
}

func TestSizeConstrain(t *testing.T) {
	tests := []struct {
		name  string
		size  Size
		limit Size
		want  Size
	}{
		{"within", Sz(10, 10), Sz(20, 20), Sz(10, 10)},
		{"width over", Sz(30, 10), Sz(20, 20), Sz(20, 10)},
		{"infinite limit", Sz(30, 40), SizeInfinite, Sz(30, 40)},
		{"infinite size", SizeInfinite, Sz(5, 6), Sz(5, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.size.Constrain(tt.limit); got != tt.want {
				t.Errorf("Constrain = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSizeSentinels(t *testing.T) {
	if !SizeUnspecified.HasNaN() {
		t.Error("SizeUnspecified should have NaN components")
	}
	if !SizeUnspecified.IsValid() {
		t.Error("SizeUnspecified should be a valid size")
	}
	if SizeUnspecified.IsFinite() {
		t.Error("SizeUnspecified should not be finite")
	}
	if !SizeInfinite.HasInf() {
		t.Error("SizeInfinite should have infinite components")
	}
	if !SizeUnspecified.Equal(Sz(math.NaN(), math.NaN())) {
		t.Error("Equal should treat NaN as equal to NaN")
	}
	if Sz(-1, 0).IsValid() {
		t.Error("negative size should be invalid")
	}
}

func TestRectContains(t *testing.T) {
	r := RectFromXYWH(10, 10, 20, 20)
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(10, 10), true},
		{Pt(29.9, 29.9), true},
		{Pt(30, 15), false},
		{Pt(15, 30), false},
		{Pt(9, 15), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectDeflateInflate(t *testing.T) {
	r := RectFromXYWH(0, 0, 100, 50)
	m := Thickness{Left: 5, Top: 10, Right: 15, Bottom: 20}
	d := r.Deflate(m)
	if d != RectFromXYWH(5, 10, 80, 20) {
		t.Errorf("Deflate = %v", d)
	}
	if back := d.Inflate(m); back != r {
		t.Errorf("Inflate(Deflate) = %v, want %v", back, r)
	}
}

func TestRectIsValid(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"ok", RectFromXYWH(1, 2, 3, 4), true},
		{"negative width", RectFromXYWH(0, 0, -1, 4), false},
		{"nan x", RectFromXYWH(math.NaN(), 0, 1, 1), false},
		{"inf height", RectFromXYWH(0, 0, 1, math.Inf(1)), false},
	}
	for _, tt := range tests {
		if got := tt.r.IsValid(); got != tt.want {
			t.Errorf("%s: IsValid = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRectIntersectUnion(t *testing.T) {
	a := RectFromXYWH(0, 0, 10, 10)
	b := RectFromXYWH(5, 5, 10, 10)
	if got := a.Intersect(b); got != RectFromXYWH(5, 5, 5, 5) {
		t.Errorf("Intersect = %v", got)
	}
	if got := a.Union(b); got != RectFromXYWH(0, 0, 15, 15) {
		t.Errorf("Union = %v", got)
	}
	if got := a.Intersect(RectFromXYWH(20, 20, 1, 1)); !got.IsEmpty() {
		t.Errorf("disjoint Intersect = %v, want empty", got)
	}
}

func TestPointOffset(t *testing.T) {
	if got := Pt(1, 2).Offset(Pt(10, 20)); got != Pt(11, 22) {
		t.Errorf("Offset = %v", got)
	}
	if got := Pt(5, 5).Sub(Pt(2, 1)); got != (Vector{X: 3, Y: 4}) {
		t.Errorf("Sub = %v", got)
	}
	if got := (Vector{X: 3, Y: 4}).Length(); got != 5 {
		t.Errorf("Length = %v", got)
	}
}
