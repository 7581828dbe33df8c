package debug

import (
	"bytes"
	"testing"

	"github.com/gogpu/minttf/raster"
)

func TestWritePGM_Header(t *testing.T) {
	surf := raster.GraySurface{Pix: []byte{0, 128, 255, 64}, Width: 2, Height: 2}
	var buf bytes.Buffer
	if err := WritePGM(&buf, surf); err != nil {
		t.Fatalf("WritePGM() error = %v", err)
	}

	want := "P5\n2 2\n255\n" + string([]byte{0, 128, 255, 64})
	if buf.String() != want {
		t.Errorf("WritePGM() = %q, want %q", buf.String(), want)
	}
}

func TestWritePGM_EmptySurface(t *testing.T) {
	surf := raster.GraySurface{Width: 0, Height: 0}
	var buf bytes.Buffer
	if err := WritePGM(&buf, surf); err != nil {
		t.Fatalf("WritePGM() error = %v", err)
	}
	if buf.String() != "P5\n0 0\n255\n" {
		t.Errorf("WritePGM() = %q, want header only", buf.String())
	}
}
