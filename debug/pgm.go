// Package debug writes rasterized surfaces and glyph outlines to
// human-inspectable formats: a binary PGM image of a rasterized
// surface, and an SVG path document of a glyph's outline. Both are
// plain byte/text writers with no image-codec dependency.
package debug

import (
	"fmt"
	"io"

	"github.com/gogpu/minttf/raster"
)

// WritePGM writes s as a binary PGM (P5) image: a three-line ASCII
// header ("P5\n<width> <height>\n255\n") followed by the surface's
// packed bytes verbatim, since GraySurface's 0=ink/255=background
// convention is already a valid PGM sample range.
func WritePGM(w io.Writer, s raster.GraySurface) error {
	if _, err := fmt.Fprintf(w, "P5\n%d %d\n255\n", s.Width, s.Height); err != nil {
		return err
	}
	_, err := w.Write(s.Pix)
	return err
}
