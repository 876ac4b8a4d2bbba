package scenes

import (
	"testing"

	"github.com/decker502/verdant/pkg/config"
)

func TestComputeHeroLayoutCentersStack(t *testing.T) {
	m := heroMetrics{
		TitleLineHeight:    100,
		TitleLines:         2,
		SubtitleLineHeight: 30,
		SubtitleLines:      2,
		ButtonLabelW:       160,
		ButtonLabelH:       24,
	}
	l := computeHeroLayout(1280, 800, m)

	if l.Icon.CenterX() != 640 || l.Button.CenterX() != 640 {
		t.Errorf("content not centered: icon %.1f, button %.1f", l.Icon.CenterX(), l.Button.CenterX())
	}

	top := l.Icon.Y
	bottom := l.Button.Y + l.Button.H
	if diff := top - (800 - bottom); diff > 1e-9 || diff < -1e-9 {
		t.Errorf("stack not vertically centered: top gap %.1f, bottom gap %.1f", top, 800-bottom)
	}

	if l.SubtitleTop != l.TitleTop+200+config.TitleMarginBottom {
		t.Errorf("SubtitleTop = %.1f, want title block + margin", l.SubtitleTop)
	}
	if l.Button.W != 160+2*config.ButtonPaddingX {
		t.Errorf("Button.W = %.1f, want label + padding", l.Button.W)
	}
	if l.Chevron.Y+l.Chevron.H != 800-config.ScrollIndicatorBottom {
		t.Errorf("chevron bottom = %.1f, want %.1f", l.Chevron.Y+l.Chevron.H, 800-config.ScrollIndicatorBottom)
	}
}

func TestComputeHeroLayoutSmallViewport(t *testing.T) {
	m := heroMetrics{TitleLineHeight: 200, TitleLines: 4, SubtitleLineHeight: 40, SubtitleLines: 5}
	l := computeHeroLayout(320, 300, m)
	if l.Icon.Y != 0 {
		t.Errorf("overflowing stack should start at the top, got %.1f", l.Icon.Y)
	}
}

func TestRectContains(t *testing.T) {
	r := rect{X: 10, Y: 20, W: 100, H: 40}
	if !r.Contains(10, 20) || !r.Contains(110, 60) || !r.Contains(50, 30) {
		t.Error("expected points on and inside the edges to be contained")
	}
	if r.Contains(9, 30) || r.Contains(50, 61) {
		t.Error("expected points outside to be rejected")
	}
}

func TestSubtitleWidth(t *testing.T) {
	if got := subtitleWidth(1920); got != config.SubtitleMaxWidth {
		t.Errorf("subtitleWidth(1920) = %.1f, want %.1f", got, config.SubtitleMaxWidth)
	}
	if got := subtitleWidth(400); got != 400-2*config.HorizontalPadding {
		t.Errorf("subtitleWidth(400) = %.1f", got)
	}
}
