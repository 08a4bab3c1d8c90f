package internal

import (
	"fmt"
	"strings"
)

// Anchor names one of the nine watermark positions formed by crossing a
// vertical tier (top, center, bottom) with a horizontal tier (left,
// center, right).
type Anchor string

const (
	TopLeft      Anchor = "top-left"
	TopCenter    Anchor = "top-center"
	TopRight     Anchor = "top-right"
	CenterLeft   Anchor = "center-left"
	Center       Anchor = "center"
	CenterRight  Anchor = "center-right"
	BottomLeft   Anchor = "bottom-left"
	BottomCenter Anchor = "bottom-center"
	BottomRight  Anchor = "bottom-right"
)

// Anchors lists every valid anchor in reading order.
func Anchors() []Anchor {
	return []Anchor{
		TopLeft, TopCenter, TopRight,
		CenterLeft, Center, CenterRight,
		BottomLeft, BottomCenter, BottomRight,
	}
}

// AnchorNames joins all anchor names for use in flag help and errors.
func AnchorNames() string {
	names := make([]string, 0, 9)
	for _, a := range Anchors() {
		names = append(names, string(a))
	}
	return strings.Join(names, ", ")
}

// ParseAnchor validates s against the nine known anchors.
func ParseAnchor(s string) (Anchor, error) {
	for _, a := range Anchors() {
		if s == string(a) {
			return a, nil
		}
	}
	return "", fmt.Errorf("invalid position %q (valid positions: %s)", s, AnchorNames())
}

// Place computes the pixel origin for a text box of textW x textH inside
// an image of imgW x imgH, inset by margin from the edges the anchor
// touches. The horizontal and vertical axes are independent. No clamping
// is done: text wider than the image yields a negative x and it is up to
// the renderer to clip.
func (a Anchor) Place(imgW, imgH, textW, textH, margin int) (x, y int) {
	switch {
	case strings.HasSuffix(string(a), "left"):
		x = margin
	case strings.HasSuffix(string(a), "right"):
		x = imgW - textW - margin
	default:
		x = halve(imgW - textW)
	}

	switch {
	case strings.HasPrefix(string(a), "top"):
		y = margin
	case strings.HasPrefix(string(a), "bottom"):
		y = imgH - textH - margin
	default:
		y = halve(imgH - textH)
	}

	return x, y
}

// halve divides by two rounding toward negative infinity, which only
// matters when the text box is larger than the image.
func halve(n int) int {
	if n < 0 {
		return (n - 1) / 2
	}
	return n / 2
}
