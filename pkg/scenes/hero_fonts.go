package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/decker502/verdant/pkg/config"
)

// heroFonts holds the faces for one title size. Faces are rebuilt when the
// viewport crosses a breakpoint.
type heroFonts struct {
	regular *opentype.Font
	italic  *opentype.Font
	medium  *opentype.Font

	titleSize   float64
	title       text.Face
	titleItalic text.Face
	subtitle    text.Face
	button      text.Face
}

// loadHeroFonts parses the bundled Go fonts.
func loadHeroFonts() (*heroFonts, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	italic, err := opentype.Parse(goitalic.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse italic font: %w", err)
	}
	medium, err := opentype.Parse(gomedium.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse medium font: %w", err)
	}
	return &heroFonts{regular: regular, italic: italic, medium: medium}, nil
}

// resize builds faces for the viewport width if the title size changed.
func (f *heroFonts) resize(width int) error {
	size := config.TitleFontSize(width)
	if size == f.titleSize && f.title != nil {
		return nil
	}

	title, err := newFace(f.regular, size)
	if err != nil {
		return err
	}
	titleItalic, err := newFace(f.italic, size)
	if err != nil {
		return err
	}
	subtitle, err := newFace(f.regular, config.SubtitleFontSize(width))
	if err != nil {
		return err
	}
	button, err := newFace(f.medium, config.ButtonFontSize)
	if err != nil {
		return err
	}

	f.titleSize = size
	f.title = title
	f.titleItalic = titleItalic
	f.subtitle = subtitle
	f.button = button
	log.Printf("[HeroScene] title font size %.0f for width %d", size, width)
	return nil
}

func newFace(tt *opentype.Font, size float64) (text.Face, error) {
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %.0fpt face: %w", size, err)
	}
	return text.NewGoXFace(face), nil
}

// lineHeight returns the line height of face.
func lineHeight(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}
