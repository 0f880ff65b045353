// Command tedemo lays out a piece of text, prints the result and renders it
// to a PNG with a caret.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/gogpu/textengine"
	"github.com/gogpu/textengine/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const sampleText = "Hello, world! مرحبا بالعالم 123\nSecond paragraph with a long run of words that wraps."

// demo is the state of one run.
type demo struct {
	engine *textengine.TextEngine
	faces  map[font.Face]xfont.Face
	caret  textengine.CPPos
	anchor textengine.CPPos
	lh     float32
}

func main() {
	var (
		fontPaths = flag.String("font", "", "comma-separated font files tried before Go Regular")
		text      = flag.String("text", sampleText, "text to lay out")
		size      = flag.Float64("size", 24, "pixel height")
		wrap      = flag.Float64("wrap", 400, "wrap width, 0 disables wrapping")
		align     = flag.String("align", "auto", "auto, left, center or right")
		caret     = flag.Int("caret", 5, "number of CursorRight steps for the caret")
		selection = flag.Int("select", 4, "number of codepoints selected after the caret")
		output    = flag.String("output", "tedemo.png", "output file")
	)
	flag.Parse()

	a, err := parseAlignment(*align)
	if err != nil {
		log.Fatal(err)
	}

	fonts := font.NewCollection(font.WithPixelHeight(float32(*size)))
	faces := make(map[font.Face]xfont.Face)
	paths := []string{}
	if *fontPaths != "" {
		paths = strings.Split(*fontPaths, ",")
	}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
		if err := addFont(fonts, faces, data, *size); err != nil {
			log.Fatalf("Failed to load %s: %v", p, err)
		}
	}
	if err := addFont(fonts, faces, goregular.TTF, *size); err != nil {
		log.Fatalf("Failed to load Go Regular: %v", err)
	}

	d := &demo{
		engine: textengine.New(fonts,
			textengine.WithWrapWidth(float32(*wrap)),
			textengine.WithAlignment(a),
		),
		faces: faces,
		lh:    fonts.MaxMetrics().Height,
	}
	d.engine.Append(*text)
	for range *caret {
		d.caret = d.engine.CursorRight(d.caret)
	}
	d.anchor = d.caret
	for range *selection {
		d.anchor = d.engine.CursorRight(d.anchor)
	}

	d.dump()

	img := d.render()
	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	b := img.Bounds()
	log.Printf("Demo saved to %s (%dx%d)\n", *output, b.Dx(), b.Dy())
}

var selectColor = color.RGBA{R: 0xb4, G: 0xd5, B: 0xfe, A: 0xff}

func parseAlignment(s string) (textengine.Alignment, error) {
	for _, a := range []textengine.Alignment{
		textengine.AlignAuto, textengine.AlignLeft, textengine.AlignCenter, textengine.AlignRight,
	} {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown alignment %q", s)
}

func addFont(fonts *font.Collection, faces map[font.Face]xfont.Face, data []byte, size float64) error {
	f, err := font.Parse(data)
	if err != nil {
		return err
	}
	sf, err := opentype.Parse(data)
	if err != nil {
		return err
	}
	face, err := opentype.NewFace(sf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return err
	}
	if err := fonts.AddFont(f); err != nil {
		return err
	}
	faces[f] = face
	return nil
}

func (d *demo) dump() {
	e := d.engine
	for p := range e.ParagraphCount() {
		para := e.Paragraph(p)
		fmt.Printf("paragraph %d: %q rtl=%v\n", p, para.Text(), para.RTL())
		for l, line := range para.Lines() {
			maps := make([]string, len(line.Glyphs))
			for i, g := range line.Glyphs {
				maps[i] = fmt.Sprint(g.Map)
			}
			fmt.Printf("  line %d x=%.1f width=%.1f map=[%s]\n",
				l, e.LineOffset(p, l), line.Width, strings.Join(maps, " "))
		}
	}
	x, y, ok := e.ComputeCursorPos(d.caret, d.lh)
	fmt.Printf("caret %s at (%.1f, %.1f) ok=%v, selection to %s\n", d.caret, x, y, ok, d.anchor)
}

func (d *demo) render() *image.RGBA {
	e := d.engine
	width := int(e.WrapWidth())
	for p := range e.ParagraphCount() {
		for _, line := range e.Paragraph(p).Lines() {
			width = max(width, int(line.Width+1))
		}
	}
	height := int(e.Height(d.lh) + 1)

	img := image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	ascent := e.Fonts().MaxMetrics().Ascent
	var top float32
	for p := range e.ParagraphCount() {
		para := e.Paragraph(p)
		for l, line := range para.Lines() {
			x := e.LineOffset(p, l)
			for i, g := range line.Glyphs {
				if e.IsGlyphInRange(textengine.GlyphPos{Paragraph: p, Line: l, Glyph: i}, d.caret, d.anchor) {
					r := image.Rect(int(x), int(top), int(x+g.Glyph.AdvanceX+0.5), int(top+d.lh))
					draw.Draw(img, r, image.NewUniform(selectColor), image.Point{}, draw.Src)
				}
				first := i == 0 || line.Glyphs[i-1].Map != g.Map
				if face, ok := d.faces[g.Glyph.Face]; ok && first {
					dr := &xfont.Drawer{
						Dst:  img,
						Src:  image.Black,
						Face: face,
						Dot:  fixed.P(int(x+g.Glyph.OffsetX), int(top+ascent+g.Glyph.OffsetY)),
					}
					dr.DrawString(string(para.CP(g.Map).Codepoint))
				}
				x += g.Glyph.AdvanceX
			}
			top += d.lh
		}
	}

	if x, y, ok := e.ComputeCursorPos(d.caret, d.lh); ok {
		red := color.RGBA{R: 0xd0, A: 0xff}
		for dy := range int(d.lh) {
			img.Set(int(x), int(y)+dy, red)
		}
	}
	return img
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
