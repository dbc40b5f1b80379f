package ioutils

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestResize_ScalesDown(t *testing.T) {
	svc := NewImageService()

	out, err := svc.Resize(encodePNG(t, 200, 100), 100, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, format, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if format != "jpeg" {
		t.Errorf("format = %q, want jpeg", format)
	}
	if got := img.Bounds().Dx(); got != 100 {
		t.Errorf("width = %d, want 100", got)
	}
	if got := img.Bounds().Dy(); got != 50 {
		t.Errorf("height = %d, want 50", got)
	}
}

func TestResize_SmallImageKeptAsIs(t *testing.T) {
	svc := NewImageService()

	out, err := svc.Resize(encodePNG(t, 40, 30), 100, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Errorf("bounds = %v, want 40x30", img.Bounds())
	}
}

func TestConvertToJPEG(t *testing.T) {
	svc := NewImageService()

	out, err := svc.ConvertToJPEG(encodePNG(t, 10, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, format, err := image.Decode(bytes.NewReader(out)); err != nil || format != "jpeg" {
		t.Errorf("decode: format=%q err=%v", format, err)
	}
}

func TestConvertToJPEG_GarbageInput(t *testing.T) {
	svc := NewImageService()
	if _, err := svc.ConvertToJPEG([]byte("not an image")); err == nil {
		t.Error("expected decode error")
	}
}
