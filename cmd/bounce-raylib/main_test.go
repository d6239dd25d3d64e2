package main

import (
	"image/color"
	"testing"
)

func TestToRGBAReusesBuffer(t *testing.T) {
	pix := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	buf := make([]color.RGBA, 0, 2)

	got := toRGBA(buf, pix)

	if len(got) != 2 || got[0] != (color.RGBA{1, 2, 3, 4}) || got[1] != (color.RGBA{5, 6, 7, 8}) {
		t.Fatalf("toRGBA = %v", got)
	}
	if &got[0] != &buf[:1][0] {
		t.Fatal("buffer was reallocated")
	}
}
