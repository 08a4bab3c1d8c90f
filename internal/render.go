package internal

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	fontOnce   sync.Once
	parsedFont *opentype.Font
	fontErr    error
)

// loadFont parses the embedded Go regular font once.
func loadFont() (*opentype.Font, error) {
	fontOnce.Do(func() {
		parsedFont, fontErr = opentype.Parse(goregular.TTF)
	})
	return parsedFont, fontErr
}

// Renderer stamps a text watermark onto images at a fixed font size and
// color. Measure and Stamp share one face, so the measured box matches
// what gets drawn.
type Renderer struct {
	face   font.Face
	fill   color.Color
	shadow int
}

// NewRenderer builds a renderer for the given font size (points at 72
// DPI) and color spec. The color spec accepts a named color, a #rgb or
// #rrggbb hex string, or an rgba(r,g,b,a) string.
func NewRenderer(fontSize int, colorSpec string) (*Renderer, error) {
	if fontSize <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %d", fontSize)
	}

	fill, err := ParseColor(colorSpec)
	if err != nil {
		return nil, err
	}

	fnt, err := loadFont()
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", err)
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(fontSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	shadow := fontSize / 24
	if shadow < 1 {
		shadow = 1
	}

	return &Renderer{face: face, fill: fill, shadow: shadow}, nil
}

// Measure returns the pixel bounding box of text when rendered.
func (r *Renderer) Measure(text string) (w, h int) {
	d := font.Drawer{Face: r.face}
	w = d.MeasureString(text).Ceil()
	m := r.face.Metrics()
	h = (m.Ascent + m.Descent).Ceil()
	return w, h
}

// Stamp draws text onto img with the top-left of its box at (x, y): a
// black shadow pass first, then the fill color on top.
func (r *Renderer) Stamp(img *image.NRGBA, text string, x, y int) {
	baseline := y + r.face.Metrics().Ascent.Ceil()
	r.drawText(img, text, x+r.shadow, baseline+r.shadow, color.Black)
	r.drawText(img, text, x, baseline, r.fill)
}

func (r *Renderer) drawText(img *image.NRGBA, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// namedColors are the color names the renderer recognizes.
var namedColors = map[string]color.NRGBA{
	"white":  {255, 255, 255, 255},
	"black":  {0, 0, 0, 255},
	"red":    {255, 0, 0, 255},
	"green":  {0, 128, 0, 255},
	"blue":   {0, 0, 255, 255},
	"yellow": {255, 255, 0, 255},
	"orange": {255, 165, 0, 255},
	"gray":   {128, 128, 128, 255},
	"grey":   {128, 128, 128, 255},
}

// ParseColor interprets a color spec: a name, "#rgb", "#rrggbb", or
// "rgba(r,g,b,a)" with channels in 0-255.
func ParseColor(spec string) (color.NRGBA, error) {
	s := strings.ToLower(strings.TrimSpace(spec))

	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}
	if strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")") {
		return parseRGBAColor(s[len("rgba(") : len(s)-1])
	}
	return color.NRGBA{}, fmt.Errorf("unrecognized color %q", spec)
}

func parseHexColor(s string) (color.NRGBA, error) {
	hex := s[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return color.NRGBA{}, fmt.Errorf("hex color %q must have 3 or 6 digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

func parseRGBAColor(s string) (color.NRGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return color.NRGBA{}, fmt.Errorf("rgba color needs 4 channels, got %d", len(parts))
	}
	var ch [4]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid rgba channel %q", strings.TrimSpace(p))
		}
		ch[i] = uint8(v)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}
