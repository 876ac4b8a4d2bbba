package config

// Hero layout constants, in logical pixels.
const (
	// CursorRadius is the outer radius of the ring cursor (32px diameter).
	CursorRadius = 16.0
	// CursorStrokeWidth is the ring border width.
	CursorStrokeWidth = 2.0
	// CursorInnerInset is the gap between the ring and its tinted fill.
	CursorInnerInset = 4.0
	// CursorInnerAlpha is the opacity of the tinted fill.
	CursorInnerAlpha = 0.2

	// HeroIconSize is the chef hat icon box.
	HeroIconSize = 64.0
	// HeroIconMarginBottom separates the icon from the title.
	HeroIconMarginBottom = 32.0
	// TitleMarginBottom separates the title from the subtitle.
	TitleMarginBottom = 24.0
	// SubtitleMaxWidth wraps the subtitle (max-w-2xl).
	SubtitleMaxWidth = 672.0
	// HorizontalPadding keeps text off the viewport edges.
	HorizontalPadding = 16.0

	// ButtonPaddingX and ButtonPaddingY pad the button label.
	ButtonPaddingX = 32.0
	ButtonPaddingY = 12.0
	// ButtonMarginTop separates the button from the subtitle block.
	ButtonMarginTop = 64.0
	// ButtonHoverScale grows the button under the pointer.
	ButtonHoverScale = 1.05

	// ScrollIndicatorBottom is the chevron's distance from the bottom edge.
	ScrollIndicatorBottom = 48.0
	// ScrollIndicatorSize is the chevron box.
	ScrollIndicatorSize = 32.0
	// ScrollIndicatorBob is the chevron's vertical travel.
	ScrollIndicatorBob = 10.0
	// ScrollIndicatorPeriod is one bob cycle, in seconds.
	ScrollIndicatorPeriod = 2.0
)

// Breakpoints for the responsive title size.
const (
	BreakpointMedium = 768
	BreakpointLarge  = 1024
)

// TitleFontSize returns the title font size for a viewport width.
func TitleFontSize(width int) float64 {
	switch {
	case width >= BreakpointLarge:
		return 96
	case width >= BreakpointMedium:
		return 72
	default:
		return 48
	}
}

// SubtitleFontSize returns the subtitle font size for a viewport width.
func SubtitleFontSize(width int) float64 {
	if width >= BreakpointMedium {
		return 20
	}
	return 18
}

// ButtonFontSize is the button label size.
const ButtonFontSize = 18.0
