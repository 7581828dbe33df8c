// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "image"

// GraySurface is a packed, row-major 8-bit grayscale bitmap: 0 means
// ink, 255 means background. Its byte layout is a valid binary PGM
// (P5) body on its own — see the debug package for a full PGM writer.
type GraySurface struct {
	Pix           []byte
	Width, Height int
}

// Image converts the surface to a standard library *image.Gray. The
// conventional image.Gray sense (0 = transparent/black, 255 = opaque/
// white as far as a grayscale ramp goes — here, 255 = fully "painted
// white") is the inverse of GraySurface's ink/background convention,
// so every byte is flipped during conversion.
func (s GraySurface) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, s.Width, s.Height))
	for i, v := range s.Pix {
		img.Pix[i] = 255 - v
	}
	return img
}
