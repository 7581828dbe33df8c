// Command minttfdemo rasterizes a single character from a TrueType
// font and writes it out as a PGM image, for manual inspection.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/flopp/go-findfont"

	"github.com/gogpu/minttf"
	"github.com/gogpu/minttf/debug"
	"github.com/gogpu/minttf/raster"
)

func main() {
	var (
		fontName = flag.String("family", "", "font family name to resolve via the host font cache")
		fontPath = flag.String("font", "", "path to a .ttf file, used if -family is empty or unresolved")
		char     = flag.String("char", "A", "single character to rasterize")
		heightPx = flag.Int("height", 64, "target glyph height, in pixels")
		output   = flag.String("output", "glyph.pgm", "output PGM file")
	)
	flag.Parse()

	path := *fontPath
	if *fontName != "" {
		found, err := findfont.Find(*fontName)
		if err != nil {
			log.Printf("minttfdemo: could not resolve family %q: %v", *fontName, err)
		} else {
			path = found
		}
	}
	if path == "" {
		log.Fatal("minttfdemo: need -family or -font")
	}

	runes := []rune(*char)
	if len(runes) == 0 {
		log.Fatal("minttfdemo: -char must not be empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("minttfdemo: reading %s: %v", path, err)
	}

	view, err := minttf.Load(data)
	if err != nil {
		log.Fatalf("minttfdemo: loading %s: %v", path, err)
	}

	surf, err := raster.RasterizeGlyph(view, runes[0], int32(*heightPx))
	if err != nil {
		log.Fatalf("minttfdemo: rasterizing %q: %v", runes[0], err)
	}

	out, err := os.Create(*output)
	if err != nil {
		log.Fatalf("minttfdemo: creating %s: %v", *output, err)
	}
	defer out.Close()

	if err := debug.WritePGM(out, surf); err != nil {
		log.Fatalf("minttfdemo: writing %s: %v", *output, err)
	}

	log.Printf("wrote %s (%dx%d)", *output, surf.Width, surf.Height)
}
