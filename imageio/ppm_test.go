package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danielediazp/Lossy-Image-Compression/codec"
)

func TestReadPPMPlain(t *testing.T) {
	input := "P3\n# a comment\n2 2\n255\n" +
		"255 0 0  0 255 0\n" +
		"0 0 255  255 255 255\n"

	img, err := ReadPPM(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadPPM: %v", err)
	}

	if img.Width != 2 || img.Height != 2 || img.Denominator != 255 {
		t.Errorf("header: got %dx%d maxval %d", img.Width, img.Height, img.Denominator)
	}
	want := []Pixel{
		{255, 0, 0}, {0, 255, 0},
		{0, 0, 255}, {255, 255, 255},
	}
	if diff := cmp.Diff(want, img.Pixels); diff != "" {
		t.Errorf("pixels (-want +got):\n%s", diff)
	}
}

func TestPPMRoundTrip(t *testing.T) {
	img := &Image{
		Pixels: []Pixel{
			{10, 20, 30}, {40, 50, 60},
			{70, 80, 90}, {100, 110, 120},
		},
		Width:       2,
		Height:      2,
		Denominator: 255,
	}

	var buf bytes.Buffer
	if err := WritePPM(&buf, img); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}

	decoded, err := ReadPPM(&buf)
	if err != nil {
		t.Fatalf("ReadPPM: %v", err)
	}
	if diff := cmp.Diff(img, decoded); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestPPMRoundTrip16Bit(t *testing.T) {
	img := &Image{
		Pixels:      []Pixel{{1000, 2000, 3000}, {4000, 5000, 6000}},
		Width:       2,
		Height:      1,
		Denominator: 65535,
	}

	var buf bytes.Buffer
	if err := WritePPM(&buf, img); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}
	decoded, err := ReadPPM(&buf)
	if err != nil {
		t.Fatalf("ReadPPM: %v", err)
	}
	if diff := cmp.Diff(img, decoded); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestReadPPMMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad magic", "P9\n2 2\n255\n"},
		{"truncated pixels", "P6\n2 2\n255\nab"},
		{"zero dimensions", "P6\n0 0\n255\n"},
		{"huge dimensions", "P6\n4294967295 4294967295\n255\n"},
		{"dimension product overflows", "P6\n3037000500 3037000500\n255\n"},
		{"plain sample exceeds maxval", "P3\n1 1\n255\n70000 0 0\n"},
		{"plain sample negative", "P3\n1 1\n255\n-1 0 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadPPM(strings.NewReader(tt.input)); !errors.Is(err, codec.ErrMalformedData) {
				t.Errorf("got %v, want ErrMalformedData", err)
			}
		})
	}
}

func TestReadDetectsFormats(t *testing.T) {
	// PNG input goes through the standard decoder.
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.SetRGBA(x, y, color.RGBA{R: uint8(x * 80), G: uint8(y * 100), B: 33, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}

	img, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read png: %v", err)
	}
	if img.Width != 3 || img.Height != 2 || img.Denominator != 255 {
		t.Errorf("png: got %dx%d maxval %d", img.Width, img.Height, img.Denominator)
	}
	if img.Pixels[1] != (Pixel{80, 0, 33}) {
		t.Errorf("png pixel: got %+v", img.Pixels[1])
	}

	// PPM input is detected by magic.
	img, err = Read(strings.NewReader("P3\n1 1\n255\n7 8 9\n"))
	if err != nil {
		t.Fatalf("Read ppm: %v", err)
	}
	if img.Pixels[0] != (Pixel{7, 8, 9}) {
		t.Errorf("ppm pixel: got %+v", img.Pixels[0])
	}
}

func TestDownscale(t *testing.T) {
	img := FromRGBA(image.NewRGBA(image.Rect(0, 0, 8, 4)))

	small := Downscale(img, 4)
	if small.Width != 4 || small.Height != 2 {
		t.Errorf("downscaled: got %dx%d, want 4x2", small.Width, small.Height)
	}

	// No-op cases return the input.
	if got := Downscale(img, 0); got != img {
		t.Error("Downscale(0) should be a no-op")
	}
	if got := Downscale(img, 16); got != img {
		t.Error("Downscale larger than input should be a no-op")
	}
}

func TestGaussianBlur(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.SetRGBA(2, 2, color.RGBA{R: 255, A: 255})
	img := FromRGBA(src)

	blurred := GaussianBlur(img, 1.0)
	if blurred.Width != 4 || blurred.Height != 4 {
		t.Fatalf("blurred: got %dx%d, want 4x4", blurred.Width, blurred.Height)
	}
	// Energy spreads off the single hot pixel.
	if blurred.Pixels[2*4+2].R >= 255 {
		t.Error("center pixel should lose intensity")
	}
	if blurred.Pixels[1*4+2].R == 0 {
		t.Error("neighbor pixel should gain intensity")
	}

	if got := GaussianBlur(img, 0); got != img {
		t.Error("GaussianBlur(0) should be a no-op")
	}
}

func TestBytesRoundTrip(t *testing.T) {
	img := &Image{
		Pixels:      []Pixel{{1, 2, 3}, {4, 5, 6}},
		Width:       2,
		Height:      1,
		Denominator: 255,
	}
	back := FromBytes(img.Bytes(), img.Width, img.Height, img.Denominator)
	if diff := cmp.Diff(img, back); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}
