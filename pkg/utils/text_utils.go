package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
//
// Lines break between words. A word wider than maxWidth is split by rune so
// no line overflows, unless a single rune is already too wide.
// Runs of whitespace collapse to one space.
func WrapText(s string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	if maxWidth <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	line := ""
	for _, w := range words {
		candidate := w
		if line != "" {
			candidate = line + " " + w
		}
		if measure(candidate) <= maxWidth {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		if measure(w) <= maxWidth {
			line = w
			continue
		}
		// 单词超宽，按字符强制断行
		pieces := breakWord(w, maxWidth, measure)
		lines = append(lines, pieces[:len(pieces)-1]...)
		line = pieces[len(pieces)-1]
	}
	return append(lines, line)
}

// breakWord splits w into runs that each fit maxWidth. A rune wider than
// maxWidth still gets its own piece.
func breakWord(w string, maxWidth float64, measure func(string) float64) []string {
	var pieces []string
	cur := ""
	for _, r := range w {
		next := cur + string(r)
		if cur != "" && measure(next) > maxWidth {
			pieces = append(pieces, cur)
			next = string(r)
		}
		cur = next
	}
	return append(pieces, cur)
}

// MeasureWidth returns the advance width of s in face.
func MeasureWidth(face text.Face, s string) float64 {
	if s == "" || face == nil {
		return 0
	}
	w, _ := text.Measure(s, face, 0)
	return w
}
