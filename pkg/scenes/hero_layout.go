package scenes

import (
	"github.com/decker502/verdant/pkg/config"
)

// rect is an axis-aligned box in screen pixels.
type rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside the box.
func (r rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// CenterX returns the horizontal center.
func (r rect) CenterX() float64 {
	return r.X + r.W/2
}

// heroMetrics are the measured text sizes the layout depends on.
type heroMetrics struct {
	TitleLineHeight    float64
	TitleLines         int
	SubtitleLineHeight float64
	SubtitleLines      int
	ButtonLabelW       float64
	ButtonLabelH       float64
}

// heroLayout positions the hero content for one viewport size.
type heroLayout struct {
	Icon        rect
	TitleTop    float64
	SubtitleTop float64
	Button      rect
	Chevron     rect
}

// computeHeroLayout stacks icon, title, subtitle and button and centers the
// stack vertically. The scroll chevron is pinned to the bottom edge.
func computeHeroLayout(width, height float64, m heroMetrics) heroLayout {
	titleH := m.TitleLineHeight * float64(m.TitleLines)
	subtitleH := m.SubtitleLineHeight * float64(m.SubtitleLines)
	buttonW := m.ButtonLabelW + 2*config.ButtonPaddingX
	buttonH := m.ButtonLabelH + 2*config.ButtonPaddingY

	total := config.HeroIconSize + config.HeroIconMarginBottom +
		titleH + config.TitleMarginBottom +
		subtitleH + config.ButtonMarginTop + buttonH

	top := (height - total) / 2
	if top < 0 {
		top = 0
	}
	cx := width / 2

	var l heroLayout
	l.Icon = rect{X: cx - config.HeroIconSize/2, Y: top, W: config.HeroIconSize, H: config.HeroIconSize}
	l.TitleTop = l.Icon.Y + l.Icon.H + config.HeroIconMarginBottom
	l.SubtitleTop = l.TitleTop + titleH + config.TitleMarginBottom
	l.Button = rect{
		X: cx - buttonW/2,
		Y: l.SubtitleTop + subtitleH + config.ButtonMarginTop,
		W: buttonW,
		H: buttonH,
	}
	l.Chevron = rect{
		X: cx - config.ScrollIndicatorSize/2,
		Y: height - config.ScrollIndicatorBottom - config.ScrollIndicatorSize,
		W: config.ScrollIndicatorSize,
		H: config.ScrollIndicatorSize,
	}
	return l
}

// subtitleWidth is the wrap width for a viewport.
func subtitleWidth(width float64) float64 {
	w := width - 2*config.HorizontalPadding
	if w > config.SubtitleMaxWidth {
		w = config.SubtitleMaxWidth
	}
	if w < 1 {
		w = 1
	}
	return w
}
